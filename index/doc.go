// Package index answers nearest-value queries against a built catalog.
//
// An Index holds two views derived from the same catalog: the sorted
// ascending array of distinct resistance keys, used for binary search,
// and the exact-match map from key to full network. Both views are built
// together and never mutated, so they cannot drift apart; a map miss
// after a successful nearest search is an integrity fault, not a normal
// outcome.
//
// # Nearest semantics
//
// The binary search finds the insertion point of the target. At the
// array boundaries the result clamps to the first or last key; otherwise
// the closer of the two bracketing keys wins, and an exact distance tie
// resolves to the lower key.
//
// Per-topology Roaring bitmaps over key positions allow the same search
// to be restricted to a subset of topologies.
package index
