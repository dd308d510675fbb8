package ohmgo

import (
	"context"
	"math"
	"testing"

	"github.com/hupe1980/ohmgo/blobstore"
	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSpecs keeps builds small. Two decades of E6 yield a catalog of a
// few thousand networks, enough to exercise every query path.
func testSpecs() []catalog.Spec {
	return []catalog.Spec{
		{Series: "e6", Decades: 2},
		{Series: "e12", Decades: 2},
	}
}

func newTestEngine(t *testing.T, optFns ...Option) *Ohmgo {
	t.Helper()

	optFns = append([]Option{WithSpecs(testSpecs()...)}, optFns...)
	og, err := New(context.Background(), optFns...)
	require.NoError(t, err)

	return og
}

func TestNew(t *testing.T) {
	og := newTestEngine(t)

	assert.Equal(t, []string{"e12o2", "e6o2"}, og.Series())

	stats := og.Stats()
	assert.Positive(t, stats["e6o2"])
	assert.Positive(t, stats["e12o2"])
	assert.Greater(t, stats["e12o2"], stats["e6o2"])
}

func TestNearestNetwork(t *testing.T) {
	ctx := context.Background()
	og := newTestEngine(t)

	t.Run("exact key returns exact resistance", func(t *testing.T) {
		nw, err := og.NearestNetwork(ctx, 4.7, "e6o2")
		require.NoError(t, err)
		assert.InDelta(t, 4.7, nw.Resistance, 1e-6)
	})

	t.Run("single resistor wins on base value", func(t *testing.T) {
		// Singles are enumerated last, so the simplest network owns
		// the key even when combinations collide with it.
		nw, err := og.NearestNetwork(ctx, 10.0, "e6o2")
		require.NoError(t, err)
		assert.Equal(t, network.SingleSeries, nw.Topology)
	})

	t.Run("clamps below the smallest key", func(t *testing.T) {
		nw, err := og.NearestNetwork(ctx, 0.001, "e6o2")
		require.NoError(t, err)

		keys := og.set.Load().indexes["e6o2"].Keys()
		assert.Equal(t, keys[0], codec.CanonicalKey(nw.Resistance))
	})

	t.Run("clamps above the largest key", func(t *testing.T) {
		nw, err := og.NearestNetwork(ctx, 1e12, "e6o2")
		require.NoError(t, err)

		keys := og.set.Load().indexes["e6o2"].Keys()
		assert.Equal(t, keys[len(keys)-1], codec.CanonicalKey(nw.Resistance))
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := og.NearestNetwork(ctx, 100, "e96o6")

		var is *ErrInvalidSeries
		require.ErrorAs(t, err, &is)
		assert.Equal(t, "e96o6", is.Series)
	})

	t.Run("invalid targets", func(t *testing.T) {
		for _, target := range []float64{0, -4.7, math.Inf(1), math.NaN()} {
			_, err := og.NearestNetwork(ctx, target, "e6o2")
			assert.ErrorIs(t, err, ErrInvalidResistance)
		}
	})
}

func TestNearestNetworkFiltered(t *testing.T) {
	ctx := context.Background()
	og := newTestEngine(t)

	t.Run("restricts to requested topologies", func(t *testing.T) {
		nw, err := og.NearestNetworkFiltered(ctx, 5.0, "e6o2", network.DoubleParallel)
		require.NoError(t, err)
		assert.Equal(t, network.DoubleParallel, nw.Topology)
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := og.NearestNetworkFiltered(ctx, 5.0, "e96o6", network.SingleSeries)

		var is *ErrInvalidSeries
		assert.ErrorAs(t, err, &is)
	})
}

func TestExactNetwork(t *testing.T) {
	ctx := context.Background()
	og := newTestEngine(t)

	t.Run("resolves a nearest result", func(t *testing.T) {
		nearest, err := og.NearestNetwork(ctx, 123.0, "e12o2")
		require.NoError(t, err)

		exact, err := og.ExactNetwork(ctx, nearest.Resistance, "e12o2")
		require.NoError(t, err)
		assert.Equal(t, nearest.Topology, exact.Topology)
		assert.InDelta(t, nearest.Resistance, exact.Resistance, 1e-6)
	})

	t.Run("miss on a key outside the catalog", func(t *testing.T) {
		_, err := og.ExactNetwork(ctx, 123456.789, "e6o2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := og.ExactNetwork(ctx, 4.7, "e96o6")

		var is *ErrInvalidSeries
		assert.ErrorAs(t, err, &is)
	})
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	bs := blobstore.NewMemoryStore()

	built := newTestEngine(t)
	require.NoError(t, built.Save(ctx, bs))

	loaded, err := Load(ctx, bs, WithSpecs(testSpecs()...))
	require.NoError(t, err)

	assert.Equal(t, built.Series(), loaded.Series())
	assert.Equal(t, built.Stats(), loaded.Stats())

	// Both engines must answer queries identically.
	for _, target := range []float64{0.5, 4.7, 33.3, 500.0, 1e9} {
		want, err := built.NearestNetwork(ctx, target, "e6o2")
		require.NoError(t, err)

		got, err := loaded.NearestNetwork(ctx, target, "e6o2")
		require.NoError(t, err)

		assert.Equal(t, want.Topology, got.Topology)
		assert.InDelta(t, want.Resistance, got.Resistance, 1e-9)
	}

	// Exact lookups on a loaded engine go through the blob-backed store.
	nearest, err := loaded.NearestNetwork(ctx, 42.0, "e12o2")
	require.NoError(t, err)

	exact, err := loaded.ExactNetwork(ctx, nearest.Resistance, "e12o2")
	require.NoError(t, err)
	assert.Equal(t, nearest.Topology, exact.Topology)
}

func TestLoadMissingCatalog(t *testing.T) {
	bs := blobstore.NewMemoryStore()

	_, err := Load(context.Background(), bs, WithSpecs(testSpecs()...))
	assert.Error(t, err)
}

func TestRebuild(t *testing.T) {
	ctx := context.Background()
	og := newTestEngine(t)

	before := og.Stats()
	require.NoError(t, og.Rebuild(ctx))
	assert.Equal(t, before, og.Stats())

	nw, err := og.NearestNetwork(ctx, 4.7, "e6o2")
	require.NoError(t, err)
	assert.InDelta(t, 4.7, nw.Resistance, 1e-6)
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	og := newTestEngine(t, WithMetricsCollector(metrics))

	_, err := og.NearestNetwork(ctx, 4.7, "e6o2")
	require.NoError(t, err)

	_, err = og.NearestNetwork(ctx, 4.7, "e96o6")
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.EqualValues(t, 1, stats.BuildCount)
	assert.EqualValues(t, 2, stats.QueryCount)
	assert.EqualValues(t, 1, stats.QueryErrors)
	assert.Positive(t, stats.BuildNetworks)
}
