package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/attrs/internal/config"
	"github.com/vango-dev/attrs/pkg/attr"
)

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	// Address is the host:port to listen on.
	Address string

	// ReadHeaderTimeout, ReadTimeout, WriteTimeout and IdleTimeout are
	// passed to http.Server.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// MaxBodyBytes is the largest accepted request body.
	MaxBodyBytes int64

	// Normalizer flattens attribute values. Default: attr.New().
	Normalizer *attr.Normalizer

	// EnableMetrics registers Prometheus collectors and serves MetricsPath.
	EnableMetrics bool

	// MetricsNamespace prefixes metric names.
	MetricsNamespace string

	// MetricsPath is where the metrics endpoint is mounted.
	MetricsPath string

	// Registry holds the server's collectors. Default: a new registry.
	Registry *prometheus.Registry

	// EnableTracing wraps requests in OpenTelemetry spans.
	EnableTracing bool

	// TracerName names the tracer.
	TracerName string

	// TracerProvider supplies the tracer. Default: the global provider.
	TracerProvider trace.TracerProvider

	// Logger receives request and lifecycle logs.
	// Default: slog.Default().With("component", "server").
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:8080",
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		MaxBodyBytes:      config.DefaultMaxBodyBytes,
		EnableMetrics:     true,
		MetricsNamespace:  config.DefaultMetricsNamespace,
		MetricsPath:       "/metrics",
		EnableTracing:     true,
		TracerName:        config.DefaultTracerName,
	}
}

// FromConfig builds a ServerConfig from an attrs.json configuration.
func FromConfig(cfg *config.Config, logger *slog.Logger) *ServerConfig {
	sc := DefaultServerConfig()
	sc.Address = cfg.Address()
	if d := cfg.ReadTimeout(); d > 0 {
		sc.ReadTimeout = d
	}
	if d := cfg.WriteTimeout(); d > 0 {
		sc.WriteTimeout = d
	}
	if d := cfg.ShutdownTimeout(); d > 0 {
		sc.ShutdownTimeout = d
	}
	if cfg.Server.MaxBodyBytes > 0 {
		sc.MaxBodyBytes = cfg.Server.MaxBodyBytes
	}
	sc.Normalizer = cfg.Normalizer()
	sc.EnableMetrics = cfg.Metrics.Enabled
	sc.MetricsNamespace = cfg.Metrics.Namespace
	sc.MetricsPath = cfg.Metrics.Path
	sc.EnableTracing = cfg.Tracing.Enabled
	sc.TracerName = cfg.Tracing.TracerName
	sc.Logger = logger
	return sc
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	out := *c
	defaults := DefaultServerConfig()
	if out.Address == "" {
		out.Address = defaults.Address
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = defaults.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = defaults.WriteTimeout
	}
	if out.IdleTimeout == 0 {
		out.IdleTimeout = defaults.IdleTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if out.MaxBodyBytes <= 0 {
		out.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if out.Normalizer == nil {
		out.Normalizer = attr.New()
	}
	if out.MetricsNamespace == "" {
		out.MetricsNamespace = defaults.MetricsNamespace
	}
	if out.MetricsPath == "" {
		out.MetricsPath = defaults.MetricsPath
	}
	if out.Registry == nil {
		out.Registry = prometheus.NewRegistry()
	}
	if out.TracerName == "" {
		out.TracerName = defaults.TracerName
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	out.Logger = out.Logger.With("component", "server")
	return &out
}
