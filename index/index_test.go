package index

import (
	"math"
	"testing"

	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singlesIndex builds an index whose keys are exactly the given stock
// values, each represented as a single-series network.
func singlesIndex(t *testing.T, values ...float64) *Index {
	t.Helper()

	var records []codec.Record
	for _, v := range values {
		nw, err := network.New(network.SingleSeries, [3]float64{v, 0, 0})
		require.NoError(t, err)
		data, err := codec.Marshal(nw)
		require.NoError(t, err)
		rec, err := codec.Unmarshal(data)
		require.NoError(t, err)
		records = append(records, rec)
	}

	c, err := catalog.FromRecords("test", records)
	require.NoError(t, err)
	return New(c)
}

func TestNearest(t *testing.T) {
	idx := singlesIndex(t, 1.0, 2.2, 4.7, 10.0)

	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{name: "between keys", target: 3.0, want: 2.2},
		{name: "clamp low", target: 0.5, want: 1.0},
		{name: "clamp high", target: 15.0, want: 10.0},
		{name: "exact hit", target: 4.7, want: 4.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nw, err := idx.Nearest(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nw.Resistance)
		})
	}
}

func TestNearestTieResolvesLower(t *testing.T) {
	idx := singlesIndex(t, 1.0, 3.0)

	nw, err := idx.Nearest(2.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, nw.Resistance)
}

func TestNearestEmptyIndex(t *testing.T) {
	c, err := catalog.FromRecords("empty", nil)
	require.NoError(t, err)
	idx := New(c)

	_, err = idx.Nearest(100)
	var ee *ErrEmptyIndex
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "empty", ee.CatalogID)
}

func TestNearestIntegrityFault(t *testing.T) {
	idx := singlesIndex(t, 1.0, 2.2)

	// Force the two views out of lock-step.
	delete(idx.networks, idx.keys[0])

	_, err := idx.Nearest(0.5)
	var ek *ErrKeyNotFound
	require.ErrorAs(t, err, &ek)
	assert.Equal(t, "test", ek.CatalogID)
	assert.Equal(t, idx.keys[0], ek.Key)
}

func mixedIndex(t *testing.T) *Index {
	t.Helper()

	build := func(tag network.Topology, rs [3]float64) codec.Record {
		nw, err := network.New(tag, rs)
		require.NoError(t, err)
		data, err := codec.Marshal(nw)
		require.NoError(t, err)
		rec, err := codec.Unmarshal(data)
		require.NoError(t, err)
		return rec
	}

	c, err := catalog.FromRecords("mixed", []codec.Record{
		build(network.SingleSeries, [3]float64{1, 0, 0}),     // key 1
		build(network.DoubleSeries, [3]float64{1, 2, 0}),     // key 3
		build(network.TripleSeries, [3]float64{1, 2, 3}),     // key 6
		build(network.DoubleParallel, [3]float64{24, 24, 0}), // key 12
	})
	require.NoError(t, err)
	return New(c)
}

func TestNearestFiltered(t *testing.T) {
	idx := mixedIndex(t)

	// Unfiltered: target 2 ties between keys 1 and 3, lower wins.
	nw, err := idx.Nearest(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, nw.Resistance)

	// Restricted to triple-series, the only candidate is key 6.
	nw, err = idx.NearestFiltered(2, network.TripleSeries)
	require.NoError(t, err)
	assert.Equal(t, network.TripleSeries, nw.Topology)
	assert.Equal(t, 6.0, nw.Resistance)

	// Restricted to a pair of topologies on the high side.
	nw, err = idx.NearestFiltered(100, network.DoubleSeries, network.DoubleParallel)
	require.NoError(t, err)
	assert.Equal(t, network.DoubleParallel, nw.Topology)

	// A topology with no catalog entries yields the empty-index fault.
	_, err = idx.NearestFiltered(2, network.SingleParallel)
	var ee *ErrEmptyIndex
	require.ErrorAs(t, err, &ee)

	// No filter arguments means unfiltered.
	nw, err = idx.NearestFiltered(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, nw.Resistance)
}

func TestNearestMatchesNaiveScan(t *testing.T) {
	c, err := catalog.Build(catalog.Spec{Series: "e6", Decades: 2})
	require.NoError(t, err)
	idx := New(c)

	naive := func(target float64) float64 {
		best := idx.keys[0]
		for _, k := range idx.keys[1:] {
			if math.Abs(k-target) < math.Abs(best-target) {
				best = k
			}
		}
		return best
	}

	for _, target := range []float64{0.01, 0.9, 1.3, 4.14, 7.7, 33.3, 50, 68.4, 999} {
		nw, err := idx.Nearest(target)
		require.NoError(t, err)
		want := naive(target)
		assert.Equal(t, want, codec.CanonicalKey(nw.Resistance), "target %g", target)
	}
}
