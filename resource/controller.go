// Package resource bounds the concurrency and IO throughput of offline
// catalog builds. Query-path code never touches it; nearest-value lookups
// are pure in-memory computation.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for catalog builds and persistence.
type Config struct {
	// MaxBuildWorkers is the maximum number of catalogs built concurrently.
	// If 0, defaults to 1.
	MaxBuildWorkers int64

	// IOLimitBytesPerSec is the maximum throughput for catalog persistence.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages build concurrency and persistence IO budget.
type Controller struct {
	cfg Config

	buildSem  *semaphore.Weighted
	ioLimiter *rate.Limiter // nil if unlimited

	buildsActive atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxBuildWorkers <= 0 {
		cfg.MaxBuildWorkers = 1
	}

	c := &Controller{
		cfg:      cfg,
		buildSem: semaphore.NewWeighted(cfg.MaxBuildWorkers),
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// AcquireBuildSlot blocks until a build worker slot is available or ctx is
// canceled. A nil controller imposes no limit.
func (c *Controller) AcquireBuildSlot(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.buildSem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.buildsActive.Add(1)
	return nil
}

// ReleaseBuildSlot returns a build worker slot.
func (c *Controller) ReleaseBuildSlot() {
	if c == nil {
		return
	}
	c.buildsActive.Add(-1)
	c.buildSem.Release(1)
}

// ActiveBuilds returns the number of builds currently holding a slot.
func (c *Controller) ActiveBuilds() int64 {
	if c == nil {
		return 0
	}
	return c.buildsActive.Load()
}

// WaitIO blocks until the IO budget allows writing/reading n bytes.
// Requests larger than the limiter burst are split into chunks.
func (c *Controller) WaitIO(ctx context.Context, n int) error {
	if c == nil || c.ioLimiter == nil || n <= 0 {
		return nil
	}

	burst := c.ioLimiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := c.ioLimiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
