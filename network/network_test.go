package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResistanceFormulas(t *testing.T) {
	tests := []struct {
		name       string
		topology   Topology
		r1, r2, r3 float64
		want       float64
	}{
		{name: "single series", topology: SingleSeries, r1: 4.7, want: 4.7},
		{name: "double series", topology: DoubleSeries, r1: 1, r2: 2, want: 3},
		{name: "triple series", topology: TripleSeries, r1: 1, r2: 2, r3: 3, want: 6},
		{name: "double parallel equal", topology: DoubleParallel, r1: 4, r2: 4, want: 2},
		{name: "series then double parallel", topology: SeriesDoubleParallel, r1: 1, r2: 2, r3: 2, want: 2},
		{name: "double series then parallel", topology: DoubleSeriesParallel, r1: 1, r2: 1, r3: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resistance(tt.topology, tt.r1, tt.r2, tt.r3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTripleParallel(t *testing.T) {
	got, err := Resistance(TripleParallel, 2, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.6667, got, 1e-4)
}

func TestZeroParallelSlot(t *testing.T) {
	tests := []struct {
		name       string
		topology   Topology
		r1, r2, r3 float64
		slot       int
	}{
		{name: "double parallel first", topology: DoubleParallel, r2: 4, slot: 0},
		{name: "double parallel second", topology: DoubleParallel, r1: 4, slot: 1},
		{name: "triple parallel third", topology: TripleParallel, r1: 1, r2: 1, slot: 2},
		{name: "1s2p parallel pair", topology: SeriesDoubleParallel, r1: 1, r3: 2, slot: 1},
		{name: "2s1p series pair both zero", topology: DoubleSeriesParallel, r3: 2, slot: 0},
		{name: "2s1p parallel branch", topology: DoubleSeriesParallel, r1: 1, r2: 1, slot: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resistance(tt.topology, tt.r1, tt.r2, tt.r3)
			var ez *ErrZeroParallelSlot
			require.ErrorAs(t, err, &ez)
			assert.Equal(t, tt.topology, ez.Topology)
			assert.Equal(t, tt.slot, ez.Slot)
		})
	}
}

func TestSeriesToleratesZeroPadding(t *testing.T) {
	// A zero series slot is padding, not an error.
	got, err := Resistance(SeriesDoubleParallel, 0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestReservedAndUnknownTopology(t *testing.T) {
	for _, tag := range []Topology{SingleParallel, Topology(8), Topology(255)} {
		_, err := Resistance(tag, 1, 1, 1)
		var ei *ErrInvalidTopology
		require.ErrorAs(t, err, &ei)
		assert.Equal(t, tag, ei.Topology)
	}
}

func TestNew(t *testing.T) {
	n, err := New(DoubleSeries, [3]float64{10, 22, 0})
	require.NoError(t, err)
	assert.Equal(t, 32.0, n.Resistance)
	assert.Equal(t, "2s:[10 22]", n.String())

	_, err = New(DoubleParallel, [3]float64{10, 0, 0})
	assert.Error(t, err)
}

func TestTopologyArity(t *testing.T) {
	want := map[Topology]int{
		SingleSeries: 1, DoubleSeries: 2, TripleSeries: 3,
		SingleParallel: 1, DoubleParallel: 2, TripleParallel: 3,
		SeriesDoubleParallel: 3, DoubleSeriesParallel: 3,
	}
	for _, tag := range Topologies() {
		assert.Equal(t, want[tag], tag.Arity(), tag.String())
	}
	assert.Equal(t, 0, Topology(42).Arity())
}

func TestFormatOhms(t *testing.T) {
	assert.Equal(t, "470.00Ω", FormatOhms(470))
	assert.Equal(t, "4.70kΩ", FormatOhms(4700))
	assert.Equal(t, "1.20MΩ", FormatOhms(1.2e6))
}
