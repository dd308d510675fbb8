package store

import (
	"context"
	"fmt"

	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/codec"
)

// MemoryStore serves exact lookups from records materialized out of
// built catalogs. The maps are populated once and never mutated, so
// concurrent lookups need no locking.
type MemoryStore struct {
	records map[string]map[float64]codec.Record
}

// NewMemoryStore materializes records for every given catalog.
func NewMemoryStore(catalogs map[string]*catalog.Catalog) (*MemoryStore, error) {
	s := &MemoryStore{
		records: make(map[string]map[float64]codec.Record, len(catalogs)),
	}
	for id, c := range catalogs {
		byKey := make(map[float64]codec.Record, c.Len())
		for key, nw := range c.Networks() {
			data, err := codec.Marshal(nw)
			if err != nil {
				return nil, fmt.Errorf("catalog %s: %w", id, err)
			}
			rec, err := codec.Unmarshal(data)
			if err != nil {
				return nil, fmt.Errorf("catalog %s: %w", id, err)
			}
			byKey[key] = rec
		}
		s.records[id] = byKey
	}
	return s, nil
}

// Lookup implements ExactStore.
func (s *MemoryStore) Lookup(_ context.Context, catalogID string, resistance float64) (codec.Record, error) {
	byKey, ok := s.records[catalogID]
	if !ok {
		return codec.Record{}, fmt.Errorf("catalog %s: %w", catalogID, ErrNotFound)
	}
	rec, ok := byKey[resistance]
	if !ok {
		return codec.Record{}, fmt.Errorf("catalog %s key %g: %w", catalogID, resistance, ErrNotFound)
	}
	return rec, nil
}
