// Package monitoring exposes Prometheus metrics for the status API and
// the service supervisor.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/supervisor"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Registry metrics
	PersonasRegistered prometheus.Gauge
	ResolvesTotal      *prometheus.CounterVec
	LaunchesTotal      *prometheus.CounterVec

	// Supervisor metrics
	ServicesByState *prometheus.GaugeVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a metrics collector on the given registerer. A nil
// registerer uses the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "initd_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "initd_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		PersonasRegistered: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "initd_personas_registered",
				Help: "Number of personas currently registered",
			},
		),
		ResolvesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "initd_resolves_total",
				Help: "Total path resolutions by outcome",
			},
			[]string{"outcome"},
		),
		LaunchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "initd_launches_total",
				Help: "Total persona launches by outcome",
			},
			[]string{"outcome"},
		),
		ServicesByState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "initd_services",
				Help: "Supervised services by state",
			},
			[]string{"state"},
		),
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "initd_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}
}

// ObserveServices refreshes the per-state service gauges from a
// supervisor snapshot.
func (m *Metrics) ObserveServices(statuses []supervisor.ServiceStatus) {
	counts := map[supervisor.State]int{
		supervisor.StateStopped:  0,
		supervisor.StateStarting: 0,
		supervisor.StateRunning:  0,
		supervisor.StateFailed:   0,
	}
	for _, s := range statuses {
		counts[s.State]++
	}
	for state, n := range counts {
		m.ServicesByState.WithLabelValues(string(state)).Set(float64(n))
	}
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
