package network

import "fmt"

// ErrZeroParallelSlot indicates a parallel-bearing topology was constructed
// with a zero resistor in a parallel branch. This is a caller precondition
// violation; allowing it through would surface later as a division by zero.
type ErrZeroParallelSlot struct {
	Topology Topology
	Slot     int
}

func (e *ErrZeroParallelSlot) Error() string {
	return fmt.Sprintf("topology %s: zero resistor in parallel slot %d", e.Topology, e.Slot+1)
}

// ErrInvalidTopology indicates a tag outside the buildable set, either an
// undefined value or the reserved SingleParallel tag.
type ErrInvalidTopology struct {
	Topology Topology
}

func (e *ErrInvalidTopology) Error() string {
	return fmt.Sprintf("invalid topology tag: %d", uint8(e.Topology))
}
