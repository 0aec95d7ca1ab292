package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teemow/calbridge/internal/logging"
)

const (
	// DefaultMetricsAddr is the default address for the metrics server.
	DefaultMetricsAddr = ":9090"

	// DefaultMetricsReadTimeout is the default read timeout for the metrics server.
	DefaultMetricsReadTimeout = 10 * time.Second

	// DefaultMetricsWriteTimeout is the default write timeout for the metrics server.
	DefaultMetricsWriteTimeout = 10 * time.Second

	// DefaultMetricsIdleTimeout is the default idle timeout for the metrics server.
	DefaultMetricsIdleTimeout = 60 * time.Second
)

// Metrics records tool-call counts and durations.
type Metrics struct {
	registry      *prometheus.Registry
	toolCalls     *prometheus.CounterVec
	toolDurations *prometheus.HistogramVec
}

// NewMetrics creates a Metrics recorder with its own registry. A private
// registry keeps test instances from colliding on duplicate registration.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	toolCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calbridge_tool_calls_total",
		Help: "Number of MCP tool invocations by tool and status.",
	}, []string{"tool", "status"})

	toolDurations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calbridge_tool_duration_seconds",
		Help:    "Duration of MCP tool invocations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})

	registry.MustRegister(toolCalls, toolDurations)

	return &Metrics{
		registry:      registry,
		toolCalls:     toolCalls,
		toolDurations: toolDurations,
	}
}

// ObserveToolCall records one tool invocation.
func (m *Metrics) ObserveToolCall(tool, status string, start time.Time) {
	m.toolCalls.WithLabelValues(tool, status).Inc()
	m.toolDurations.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}

// Handler returns the Prometheus scrape handler for this recorder.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// MetricsServerConfig holds configuration for the metrics server.
type MetricsServerConfig struct {
	// Addr is the address to bind the metrics server to (e.g., ":9090").
	Addr string

	// Metrics provides the scrape handler.
	Metrics *Metrics
}

// MetricsServer serves Prometheus metrics on a dedicated port, keeping
// operational metrics off the main transport.
type MetricsServer struct {
	httpServer *http.Server
	addr       string
	metrics    *Metrics
}

// NewMetricsServer creates a new metrics server with the given configuration.
// The server exposes /metrics for Prometheus scraping and /healthz.
func NewMetricsServer(config MetricsServerConfig) *MetricsServer {
	if config.Addr == "" {
		config.Addr = DefaultMetricsAddr
	}
	return &MetricsServer{
		addr:    config.Addr,
		metrics: config.Metrics,
	}
}

// Start starts the metrics server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *MetricsServer) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: DefaultMetricsReadTimeout,
		WriteTimeout:      DefaultMetricsWriteTimeout,
		IdleTimeout:       DefaultMetricsIdleTimeout,
	}

	slog.Info("starting metrics server", slog.String("addr", s.addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		slog.Info("shutting down metrics server", logging.Operation("shutdown"))
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured address for the metrics server.
func (s *MetricsServer) Addr() string {
	return s.addr
}
