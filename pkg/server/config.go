package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/viewy-dev/viewy/internal/logger"
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address (default ":3000").
	Addr string

	// DevMode disables asset caching.
	DevMode bool

	// MetricsPath exposes Prometheus metrics when non-empty.
	MetricsPath string

	// Registry receives the metrics (default prometheus.DefaultRegisterer).
	Registry prometheus.Registerer

	// Tracing enables request spans.
	Tracing bool

	// TracerProvider overrides the global provider for request spans.
	TracerProvider trace.TracerProvider

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration

	// Logger receives request and lifecycle logs (default logger.Default()).
	Logger *logger.Logger
}

// Option configures a Server.
type Option func(*Config)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(c *Config) {
		c.Addr = addr
	}
}

// WithDevMode disables caching of assets and pages.
func WithDevMode(dev bool) Option {
	return func(c *Config) {
		c.DevMode = dev
	}
}

// WithMetrics exposes Prometheus metrics at path.
func WithMetrics(path string) Option {
	return func(c *Config) {
		c.MetricsPath = path
	}
}

// WithRegistry sets the Prometheus registry used for metrics.
func WithRegistry(r prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = r
	}
}

// WithTracing enables OpenTelemetry request spans.
func WithTracing(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.Tracing = true
		c.TracerProvider = tp
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.ShutdownTimeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() *Config {
	return &Config{
		Addr:            ":3000",
		Registry:        prometheus.DefaultRegisterer,
		ShutdownTimeout: 5 * time.Second,
	}
}
