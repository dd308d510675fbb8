package ohmgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    queryCounter   prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordQuery(series string, duration time.Duration, err error) {
//	    p.queryCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordQuery is called after each nearest-value query.
	// duration is the total time taken, err is nil if successful.
	RecordQuery(series string, duration time.Duration, err error)

	// RecordBuild is called after a catalog set build.
	// catalogs is the number of catalogs built, networks the total
	// distinct networks across all of them.
	RecordBuild(catalogs, networks int, duration time.Duration, err error)

	// RecordLoad is called after loading a catalog set from a blob store.
	RecordLoad(catalogs int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordQuery(string, time.Duration, error)   {}
func (NoopMetricsCollector) RecordBuild(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	QueryCount      atomic.Int64
	QueryErrors     atomic.Int64
	QueryTotalNanos atomic.Int64
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildNetworks   atomic.Int64
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(_ string, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(catalogs, networks int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildNetworks.Add(int64(networks))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(catalogs int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		QueryCount:    b.QueryCount.Load(),
		QueryErrors:   b.QueryErrors.Load(),
		QueryAvgNanos: b.getAvgQueryNanos(),
		BuildCount:    b.BuildCount.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		BuildNetworks: b.BuildNetworks.Load(),
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	QueryCount    int64
	QueryErrors   int64
	QueryAvgNanos int64
	BuildCount    int64
	BuildErrors   int64
	BuildNetworks int64
	LoadCount     int64
	LoadErrors    int64
}
