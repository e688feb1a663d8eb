package clp

import (
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// DefaultSymbol is the entry point resolved in the shared library.
const DefaultSymbol = "clp_solve"

const tracerName = "github.com/bartolsthoorn/goclp/clp"

// Option configures a Library.
type Option func(*libraryConfig)

type libraryConfig struct {
	symbol    string
	logger    *zap.Logger
	tracer    trace.Tracer
	metrics   *Metrics
	reentrant bool
}

func defaultLibraryConfig() *libraryConfig {
	return &libraryConfig{
		symbol: DefaultSymbol,
		logger: zap.NewNop(),
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}
}

func newLibraryConfig(opts []Option) *libraryConfig {
	cfg := defaultLibraryConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSymbol resolves name instead of DefaultSymbol. The symbol must have
// the clp_solve signature from clp_solve.h.
func WithSymbol(name string) Option {
	return func(c *libraryConfig) {
		if name != "" {
			c.symbol = name
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *libraryConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider records a span for every Solve using tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *libraryConfig) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithMetrics records solve counts and latencies into m.
func WithMetrics(m *Metrics) Option {
	return func(c *libraryConfig) {
		c.metrics = m
	}
}

// WithReentrant disables the per-Library lock around the native call.
// Use it only for engine builds known to be re-entrant.
func WithReentrant() Option {
	return func(c *libraryConfig) {
		c.reentrant = true
	}
}
