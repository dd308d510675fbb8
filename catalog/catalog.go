package catalog

import (
	"iter"
	"sort"

	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/network"
)

// Catalog is the immutable result of combinatorial generation for one
// (series, decades) configuration: a map from canonical resistance to the
// winning network, plus the sorted array of distinct keys.
type Catalog struct {
	id         string
	networks   map[float64]network.Network
	keys       []float64 // distinct canonical keys, ascending
	candidates int       // networks enumerated before de-duplication
}

// ID returns the catalog identifier, e.g. "e24o6".
func (c *Catalog) ID() string { return c.id }

// Len returns the number of distinct resistances.
func (c *Catalog) Len() int { return len(c.keys) }

// CandidateCount returns how many networks were enumerated before
// de-duplication. Compare against EstimateCandidates.
func (c *Catalog) CandidateCount() int { return c.candidates }

// Keys returns the sorted ascending distinct canonical resistance keys.
// The slice is shared with the catalog and must be treated as read-only.
func (c *Catalog) Keys() []float64 { return c.keys }

// Lookup returns the winning network for an exact canonical key.
func (c *Catalog) Lookup(key float64) (network.Network, bool) {
	n, ok := c.networks[key]
	return n, ok
}

// Networks iterates (key, network) pairs in ascending key order. The
// ordering makes persisted record sets deterministic across builds.
func (c *Catalog) Networks() iter.Seq2[float64, network.Network] {
	return func(yield func(float64, network.Network) bool) {
		for _, key := range c.keys {
			if !yield(key, c.networks[key]) {
				return
			}
		}
	}
}

// FromRecords reconstructs a catalog from decoded records, e.g. after
// loading a binary catalog file. Keys come from the stored resistance
// field so that the rebuilt index stays in lock-step with the file.
func FromRecords(id string, records []codec.Record) (*Catalog, error) {
	c := &Catalog{
		id:         id,
		networks:   make(map[float64]network.Network, len(records)),
		candidates: len(records),
	}
	for _, rec := range records {
		n, err := rec.Network()
		if err != nil {
			return nil, err
		}
		c.networks[rec.Key()] = n
	}
	c.finish()
	return c, nil
}

// finish derives the sorted key array from the surviving map entries.
func (c *Catalog) finish() {
	c.keys = make([]float64, 0, len(c.networks))
	for key := range c.networks {
		c.keys = append(c.keys, key)
	}
	sort.Float64s(c.keys)
}
