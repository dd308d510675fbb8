package ohmgo

import (
	"log/slog"

	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/persistence"
	"github.com/hupe1980/ohmgo/resource"
	"github.com/hupe1980/ohmgo/store"
)

type options struct {
	specs            []catalog.Spec
	compression      persistence.Compression
	controller       *resource.Controller
	exactStore       store.ExactStore
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures constructor/load behavior.
type Option func(*options)

// WithSpecs overrides the catalog configurations to build or load.
// Defaults to the six standard configurations (e6, e12, e24 across
// three and six decades).
func WithSpecs(specs ...catalog.Spec) Option {
	return func(o *options) {
		o.specs = specs
	}
}

// WithCompression selects the compression applied to persisted record
// blobs. Defaults to none, which writes the raw 11-byte record
// concatenation.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithResourceController bounds build concurrency and persistence IO.
// Nil means unbounded.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithExactStore configures a remote exact-match store (e.g. a shared
// DynamoDB table) consulted by ExactNetwork. When unset, exact lookups
// are served from the in-process catalogs.
func WithExactStore(s store.ExactStore) Option {
	return func(o *options) {
		o.exactStore = s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ohmgo.BasicMetricsCollector{}
//	og, _ := ohmgo.New(ctx, ohmgo.WithMetricsCollector(metrics))
//	// ... use og ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := ohmgo.NewJSONLogger(slog.LevelInfo)
//	og, _ := ohmgo.New(ctx, ohmgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		specs:            catalog.DefaultSpecs(),
		compression:      persistence.CompressionNone,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
