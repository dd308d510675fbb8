package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilControllerIsUnlimited(t *testing.T) {
	var c *Controller
	ctx := context.Background()

	require.NoError(t, c.AcquireBuildSlot(ctx))
	c.ReleaseBuildSlot()
	require.NoError(t, c.WaitIO(ctx, 1<<30))
	assert.Equal(t, int64(0), c.ActiveBuilds())
}

func TestBuildSlotLimit(t *testing.T) {
	c := NewController(Config{MaxBuildWorkers: 1})
	ctx := context.Background()

	require.NoError(t, c.AcquireBuildSlot(ctx))
	assert.Equal(t, int64(1), c.ActiveBuilds())

	// Second acquire must block until release.
	blocked, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	err := c.AcquireBuildSlot(blocked)
	assert.Error(t, err)

	c.ReleaseBuildSlot()
	require.NoError(t, c.AcquireBuildSlot(ctx))
	c.ReleaseBuildSlot()
}

func TestWaitIO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	ctx := context.Background()

	// Within burst: immediate.
	require.NoError(t, c.WaitIO(ctx, 4096))
	require.NoError(t, c.WaitIO(ctx, 0))

	// A drained budget with an expired deadline must surface the error
	// instead of blocking forever.
	expired, cancel := context.WithTimeout(ctx, time.Millisecond)
	defer cancel()
	err := c.WaitIO(expired, 8<<20)
	assert.Error(t, err)
}
