package index

import (
	"fmt"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/network"
)

// ErrKeyNotFound indicates the sorted key array and the exact-match map
// disagree. The two are built from the same catalog, so this is an
// internal-consistency violation, never a normal query outcome.
type ErrKeyNotFound struct {
	CatalogID string
	Key       float64
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("catalog %s: key %g present in sorted index but missing from exact store", e.CatalogID, e.Key)
}

// ErrEmptyIndex indicates a nearest query against an index with no keys,
// or one whose topology filter excluded every key.
type ErrEmptyIndex struct {
	CatalogID string
}

func (e *ErrEmptyIndex) Error() string {
	return fmt.Sprintf("catalog %s: no candidate keys", e.CatalogID)
}

// Index is the read-only query structure for one catalog.
type Index struct {
	id       string
	keys     []float64
	networks map[float64]network.Network

	// Positions in keys per topology tag, for filtered queries.
	topologies [8]*roaring.Bitmap
}

// New derives an Index from a built catalog. The catalog's key slice is
// shared, not copied; both structures are immutable.
func New(c *catalog.Catalog) *Index {
	idx := &Index{
		id:       c.ID(),
		keys:     c.Keys(),
		networks: make(map[float64]network.Network, c.Len()),
	}
	for i := range idx.topologies {
		idx.topologies[i] = roaring.New()
	}

	pos := uint32(0)
	for key, nw := range c.Networks() {
		idx.networks[key] = nw
		idx.topologies[nw.Topology].Add(pos)
		pos++
	}
	return idx
}

// ID returns the catalog identifier this index serves.
func (idx *Index) ID() string { return idx.id }

// Len returns the number of distinct resistance keys.
func (idx *Index) Len() int { return len(idx.keys) }

// Keys returns the sorted key array, shared and read-only.
func (idx *Index) Keys() []float64 { return idx.keys }

// Lookup returns the network for an exact canonical key.
func (idx *Index) Lookup(key float64) (network.Network, bool) {
	nw, ok := idx.networks[key]
	return nw, ok
}

// Nearest returns the catalog network whose resistance is closest to
// target. Boundary targets clamp; exact distance ties resolve to the
// lower key.
func (idx *Index) Nearest(target float64) (network.Network, error) {
	return idx.nearest(target, nil)
}

// NearestFiltered behaves like Nearest but only considers keys whose
// winning network uses one of the given topologies.
func (idx *Index) NearestFiltered(target float64, topologies ...network.Topology) (network.Network, error) {
	if len(topologies) == 0 {
		return idx.nearest(target, nil)
	}

	allowed := roaring.New()
	for _, t := range topologies {
		if t.Valid() {
			allowed.Or(idx.topologies[t])
		}
	}
	return idx.nearest(target, allowed)
}

func (idx *Index) nearest(target float64, allowed *roaring.Bitmap) (network.Network, error) {
	pos, ok := idx.nearestPosition(target, allowed)
	if !ok {
		return network.Network{}, &ErrEmptyIndex{CatalogID: idx.id}
	}

	key := idx.keys[pos]
	nw, ok := idx.networks[key]
	if !ok {
		return network.Network{}, &ErrKeyNotFound{CatalogID: idx.id, Key: key}
	}
	return nw, nil
}

// nearestPosition resolves the winning position in the sorted key array.
// With a filter, the bracketing candidates are the nearest allowed
// positions on each side of the insertion point, found via bitmap
// rank/select.
func (idx *Index) nearestPosition(target float64, allowed *roaring.Bitmap) (int, bool) {
	if len(idx.keys) == 0 {
		return 0, false
	}

	// Insertion point: first index with keys[i] >= target.
	insert := sort.SearchFloat64s(idx.keys, target)

	if allowed == nil {
		switch {
		case insert == len(idx.keys):
			return len(idx.keys) - 1, true // clamp high
		case insert == 0:
			return 0, true // clamp low
		default:
			return closer(idx.keys, insert-1, insert, target), true
		}
	}

	if allowed.IsEmpty() {
		return 0, false
	}

	below, hasBelow := previousSet(allowed, insert-1)
	above, hasAbove := nextSet(allowed, insert)

	switch {
	case hasBelow && hasAbove:
		return closer(idx.keys, below, above, target), true
	case hasBelow:
		return below, true
	case hasAbove:
		return above, true
	default:
		return 0, false
	}
}

// closer picks the candidate with the smaller absolute distance, the
// lower index on a tie.
func closer(keys []float64, lo, hi int, target float64) int {
	if math.Abs(keys[lo]-target) <= math.Abs(keys[hi]-target) {
		return lo
	}
	return hi
}

// previousSet returns the largest set position <= limit.
func previousSet(bm *roaring.Bitmap, limit int) (int, bool) {
	if limit < 0 {
		return 0, false
	}
	rank := bm.Rank(uint32(limit))
	if rank == 0 {
		return 0, false
	}
	pos, err := bm.Select(uint32(rank - 1))
	if err != nil {
		return 0, false
	}
	return int(pos), true
}

// nextSet returns the smallest set position >= from.
func nextSet(bm *roaring.Bitmap, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	var rank uint64
	if from > 0 {
		rank = bm.Rank(uint32(from - 1))
	}
	if rank >= bm.GetCardinality() {
		return 0, false
	}
	pos, err := bm.Select(uint32(rank))
	if err != nil {
		return 0, false
	}
	return int(pos), true
}
