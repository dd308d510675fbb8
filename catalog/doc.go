// Package catalog builds resistance-indexed catalogs of three-resistor
// networks.
//
// # Precedence
//
// The builder enumerates candidate networks in a fixed pipeline:
//
//  1. size-3 multisets -> triple-series and triple-parallel
//  2. ordered triples (n^3) -> the two asymmetric topologies
//  3. size-2 multisets -> double-series and double-parallel
//  4. singles -> single-series
//
// Each network is inserted into the catalog keyed by its canonical
// resistance; a later insertion with an equal key overwrites an earlier
// one. Running the simplest topologies last is the precedence rule: when
// two arrangements are numerically identical, the one with fewer
// resistors wins. The order is intentional, not a container artifact.
//
// # Immutability
//
// A built Catalog never changes. Queries and concurrent readers need no
// locking; rebuilding publishes a whole new Catalog.
package catalog
