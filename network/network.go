package network

import "fmt"

// Network is a concrete three-slot resistor arrangement together with its
// equivalent resistance.
//
// The resistance is computed exactly once by New; treat all fields as
// read-only afterwards. Slots beyond the topology's arity are zero.
type Network struct {
	Topology   Topology
	Resistors  [3]float64
	Resistance float64
}

// New builds a Network and computes its equivalent resistance.
//
// Parallel branches must not contain zero resistors; New returns
// *ErrZeroParallelSlot before any arithmetic happens. The reserved
// SingleParallel tag and undefined tags return *ErrInvalidTopology.
func New(t Topology, resistors [3]float64) (Network, error) {
	r, err := Resistance(t, resistors[0], resistors[1], resistors[2])
	if err != nil {
		return Network{}, err
	}
	return Network{Topology: t, Resistors: resistors, Resistance: r}, nil
}

// String renders the network for logs, e.g. "1s2p:[10 22 22]".
func (n Network) String() string {
	return fmt.Sprintf("%s:%v", n.Topology, n.Resistors[:n.Topology.Arity()])
}

// Resistance computes the equivalent resistance of the given topology.
// It is a pure function; the only failure paths are the zero-slot
// precondition on parallel branches and an unbuildable tag.
func Resistance(t Topology, r1, r2, r3 float64) (float64, error) {
	switch t {
	case SingleSeries, DoubleSeries, TripleSeries:
		// Unused slots are zero and contribute nothing to the sum.
		return r1 + r2 + r3, nil
	case DoubleParallel:
		if err := requireNonZero(t, r1, r2); err != nil {
			return 0, err
		}
		return 1 / (1/r1 + 1/r2), nil
	case TripleParallel:
		if err := requireNonZero(t, r1, r2, r3); err != nil {
			return 0, err
		}
		return 1 / (1/r1 + 1/r2 + 1/r3), nil
	case SeriesDoubleParallel:
		// Slot 1 is the series term; only the parallel pair is constrained.
		if r2 == 0 {
			return 0, &ErrZeroParallelSlot{Topology: t, Slot: 1}
		}
		if r3 == 0 {
			return 0, &ErrZeroParallelSlot{Topology: t, Slot: 2}
		}
		return r1 + 1/(1/r2+1/r3), nil
	case DoubleSeriesParallel:
		if r1+r2 == 0 {
			return 0, &ErrZeroParallelSlot{Topology: t, Slot: 0}
		}
		if r3 == 0 {
			return 0, &ErrZeroParallelSlot{Topology: t, Slot: 2}
		}
		return 1 / (1/(r1+r2) + 1/r3), nil
	case SingleParallel:
		return 0, &ErrInvalidTopology{Topology: t}
	default:
		return 0, &ErrInvalidTopology{Topology: t}
	}
}

func requireNonZero(t Topology, rs ...float64) error {
	for i, r := range rs {
		if r == 0 {
			return &ErrZeroParallelSlot{Topology: t, Slot: i}
		}
	}
	return nil
}
