// Package network defines the closed set of three-resistor topologies and
// the immutable Network value built from them.
//
// # Topologies
//
// Eight tags with fixed wire values 0..7:
//
//   - SingleSeries (1s), DoubleSeries (2s), TripleSeries (3s)
//   - SingleParallel (1p, reserved - structurally degenerate, never built)
//   - DoubleParallel (2p), TripleParallel (3p)
//   - SeriesDoubleParallel (1s2p) and DoubleSeriesParallel (2s1p), the two
//     asymmetric arrangements
//
// # Networks
//
// A Network carries exactly three resistor slots, zero-padded for
// topologies of arity below three, and an equivalent resistance computed
// once at construction. Parallel branches reject zero-valued slots at
// construction time so that a division by zero can never occur later.
package network
