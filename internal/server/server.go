// Package server wires the persona registry, the service supervisor,
// and the status API into one process.
package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/LimitlessOS-official/Limitless-sub010/internal/api/http"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/api/middleware"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/infrastructure/config"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/infrastructure/logging"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/infrastructure/monitoring"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/manifest"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/personas/asset"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/personas/elf"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/personas/script"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/supervisor"
)

// Server owns the process-level components.
type Server struct {
	router   *gin.Engine
	registry *persona.Registry
	sup      *supervisor.Supervisor
	handlers *apihttp.Handlers
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a server: registers the built-in personas, loads
// the service manifest, and builds the API router.
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing limitless-initd",
		zap.String("port", cfg.Server.Port),
		zap.String("manifest", cfg.Init.ManifestPath),
	)

	metrics := monitoring.NewMetrics(nil)

	registry := persona.NewRegistry()
	if err := seedPersonas(registry, logger); err != nil {
		return nil, err
	}
	metrics.PersonasRegistered.Set(float64(registry.Count()))

	sup := supervisor.New(registry)
	if err := loadManifest(sup, cfg.Init.ManifestPath, logger); err != nil {
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, sup, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/personas", handlers.ListPersonas)
	router.POST("/resolve", handlers.ResolvePath)

	router.GET("/services", handlers.ListServices)
	router.GET("/services/dump", handlers.DumpServices)
	router.POST("/services/start", handlers.StartServices)
	router.POST("/services/stop", handlers.StopServices)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized",
		zap.Int("personas", registry.Count()),
	)

	return &Server{
		router:   router,
		registry: registry,
		sup:      sup,
		handlers: handlers,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Boot starts every manifest service in dependency order. Started
// services stay up when a later one fails; the caller decides whether
// to keep running or shut down.
func (s *Server) Boot() error {
	s.logger.Info("Starting services")
	if err := s.sup.StartAll(); err != nil {
		s.logger.Error("Service startup failed", zap.Error(err))
		return err
	}
	s.metrics.ObserveServices(s.sup.Status())
	s.logger.Info("All services running")
	return nil
}

// Run starts the HTTP status API.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting status API", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close stops all services and dumps their final state to stderr.
func (s *Server) Close() error {
	s.logger.Info("Stopping services")
	s.sup.StopAll()
	s.metrics.ObserveServices(s.sup.Status())
	s.sup.StatusDump(os.Stderr)
	// Sync on a stdout sink fails on some platforms; shutdown proceeds.
	_ = s.logger.Sync()
	return nil
}

// seedPersonas registers the built-in personas in resolution priority
// order.
func seedPersonas(registry *persona.Registry, logger *logging.Logger) error {
	for _, desc := range []persona.Descriptor{
		elf.Descriptor(),
		script.Descriptor(),
		asset.Descriptor(),
	} {
		id, err := registry.Register(desc)
		if err != nil {
			return fmt.Errorf("failed to register persona %q: %w", desc.Name, err)
		}
		logger.Info("Registered persona",
			zap.String("name", desc.Name),
			zap.Int64("id", id),
		)
	}
	return nil
}

// loadManifest loads the service manifest into the supervisor. A
// missing manifest file is tolerated; the supervisor starts empty.
func loadManifest(sup *supervisor.Supervisor, path string, logger *logging.Logger) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn("Service manifest not found, starting with empty table",
			zap.String("path", path),
		)
		return nil
	}

	m, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load service manifest: %w", err)
	}
	if len(m.Services) > 0 {
		if err := sup.Register(m.Services); err != nil {
			return fmt.Errorf("failed to register services: %w", err)
		}
	}
	logger.Info("Loaded service manifest",
		zap.String("path", path),
		zap.Int("services", len(m.Services)),
	)
	return nil
}
