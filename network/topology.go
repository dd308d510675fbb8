package network

// Topology identifies one of the fixed three-resistor arrangements.
//
// The numeric values are part of the on-disk record format and must not be
// reordered.
type Topology uint8

const (
	// SingleSeries is one resistor (slots 2 and 3 are zero).
	SingleSeries Topology = 0
	// DoubleSeries is two resistors in series (slot 3 is zero).
	DoubleSeries Topology = 1
	// TripleSeries is three resistors in series.
	TripleSeries Topology = 2
	// SingleParallel is reserved. A single resistor has no parallel form
	// distinct from SingleSeries; the tag exists only to keep the wire
	// values stable.
	SingleParallel Topology = 3
	// DoubleParallel is two resistors in parallel (slot 3 is zero).
	DoubleParallel Topology = 4
	// TripleParallel is three resistors in parallel.
	TripleParallel Topology = 5
	// SeriesDoubleParallel is slot 1 in series with slots 2 and 3 in
	// parallel.
	SeriesDoubleParallel Topology = 6
	// DoubleSeriesParallel is slots 1 and 2 in series, the pair in
	// parallel with slot 3.
	DoubleSeriesParallel Topology = 7

	numTopologies = 8
)

// Topologies lists every tag in wire order, including the reserved
// SingleParallel.
func Topologies() []Topology {
	return []Topology{
		SingleSeries, DoubleSeries, TripleSeries, SingleParallel,
		DoubleParallel, TripleParallel, SeriesDoubleParallel, DoubleSeriesParallel,
	}
}

// Valid reports whether t is one of the eight defined tags.
func (t Topology) Valid() bool {
	return t < numTopologies
}

// Arity returns the number of populated resistor slots for t.
func (t Topology) Arity() int {
	switch t {
	case SingleSeries, SingleParallel:
		return 1
	case DoubleSeries, DoubleParallel:
		return 2
	case TripleSeries, TripleParallel, SeriesDoubleParallel, DoubleSeriesParallel:
		return 3
	default:
		return 0
	}
}

// String returns the short schematic name ("1s", "2p", "1s2p", ...).
func (t Topology) String() string {
	switch t {
	case SingleSeries:
		return "1s"
	case DoubleSeries:
		return "2s"
	case TripleSeries:
		return "3s"
	case SingleParallel:
		return "1p"
	case DoubleParallel:
		return "2p"
	case TripleParallel:
		return "3p"
	case SeriesDoubleParallel:
		return "1s2p"
	case DoubleSeriesParallel:
		return "2s1p"
	default:
		return "unknown"
	}
}
