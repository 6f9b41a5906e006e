// Package http exposes the persona registry and service supervisor to
// operators over a small JSON API.
package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/infrastructure/monitoring"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/shared/status"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/supervisor"
)

// Handlers bundles the API dependencies. The registry and supervisor
// are single-threaded; the handler mutex serializes every request that
// touches them.
type Handlers struct {
	mu       sync.Mutex
	registry *persona.Registry
	sup      *supervisor.Supervisor
	metrics  *monitoring.Metrics
}

// NewHandlers creates the API handler set.
func NewHandlers(registry *persona.Registry, sup *supervisor.Supervisor, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{registry: registry, sup: sup, metrics: metrics}
}

// Root returns service identification.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "limitless-initd",
		"status":  "running",
	})
}

// Health returns liveness plus a service state summary.
func (h *Handlers) Health(c *gin.Context) {
	h.mu.Lock()
	statuses := h.sup.Status()
	h.mu.Unlock()

	running := 0
	for _, s := range statuses {
		if s.State == supervisor.StateRunning {
			running++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"services": len(statuses),
		"running":  running,
	})
}

// personaView is the wire shape of a registered descriptor.
type personaView struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Extensions []string `json:"extensions,omitempty"`
	MagicLen   int      `json:"magic_len"`
	MIMETypes  []string `json:"mime_types,omitempty"`
}

// ListPersonas returns the registered personas in registration order.
func (h *Handlers) ListPersonas(c *gin.Context) {
	h.mu.Lock()
	descs := h.registry.List()
	h.mu.Unlock()

	views := make([]personaView, len(descs))
	for i, d := range descs {
		views[i] = personaView{
			Name:       d.Name,
			Version:    d.Version,
			Extensions: d.Extensions,
			MagicLen:   len(d.Magic),
			MIMETypes:  d.MIMETypes,
		}
	}
	h.metrics.PersonasRegistered.Set(float64(len(descs)))
	c.JSON(http.StatusOK, gin.H{"personas": views})
}

// ResolvePath maps a path to a persona id.
func (h *Handlers) ResolvePath(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.mu.Lock()
	id, err := h.registry.Resolve(req.Path)
	h.mu.Unlock()

	switch {
	case errors.Is(err, status.ErrInvalidArgument):
		h.metrics.ResolvesTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
	case errors.Is(err, status.ErrNotFound):
		h.metrics.ResolvesTotal.WithLabelValues("miss").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "no persona matches path"})
	default:
		h.metrics.ResolvesTotal.WithLabelValues("hit").Inc()
		c.JSON(http.StatusOK, gin.H{"id": id, "path": req.Path})
	}
}

// ListServices returns the supervisor state snapshot.
func (h *Handlers) ListServices(c *gin.Context) {
	h.mu.Lock()
	statuses := h.sup.Status()
	h.mu.Unlock()

	h.metrics.ObserveServices(statuses)

	body, err := sonic.Marshal(gin.H{"services": statuses})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode status"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// DumpServices returns the plain-text status dump, one line per
// service.
func (h *Handlers) DumpServices(c *gin.Context) {
	var sb strings.Builder
	h.mu.Lock()
	h.sup.StatusDump(&sb)
	h.mu.Unlock()
	c.String(http.StatusOK, sb.String())
}

// StartServices starts all registered services in dependency order.
func (h *Handlers) StartServices(c *gin.Context) {
	h.mu.Lock()
	err := h.sup.StartAll()
	statuses := h.sup.Status()
	h.mu.Unlock()

	h.metrics.ObserveServices(statuses)
	if err != nil {
		h.metrics.LaunchesTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"services": statuses,
		})
		return
	}
	h.metrics.LaunchesTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"services": statuses})
}

// StopServices stops every running service.
func (h *Handlers) StopServices(c *gin.Context) {
	h.mu.Lock()
	h.sup.StopAll()
	statuses := h.sup.Status()
	h.mu.Unlock()

	h.metrics.ObserveServices(statuses)
	c.JSON(http.StatusOK, gin.H{"services": statuses})
}
