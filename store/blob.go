package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/persistence"
)

// BlobStore serves exact lookups by rebuilding an in-memory map from
// the binary catalog files on first use of each catalog. Catalog files
// are immutable, so a loaded map stays valid for the process lifetime.
type BlobStore struct {
	manager *persistence.Manager

	mu     sync.RWMutex
	loaded map[string]map[float64]codec.Record
}

// NewBlobStore creates a lazy-loading exact store over catalog blobs.
func NewBlobStore(manager *persistence.Manager) *BlobStore {
	return &BlobStore{
		manager: manager,
		loaded:  make(map[string]map[float64]codec.Record),
	}
}

// Lookup implements ExactStore.
func (s *BlobStore) Lookup(ctx context.Context, catalogID string, resistance float64) (codec.Record, error) {
	byKey, err := s.catalogRecords(ctx, catalogID)
	if err != nil {
		return codec.Record{}, err
	}

	rec, ok := byKey[resistance]
	if !ok {
		return codec.Record{}, fmt.Errorf("catalog %s key %g: %w", catalogID, resistance, ErrNotFound)
	}
	return rec, nil
}

func (s *BlobStore) catalogRecords(ctx context.Context, catalogID string) (map[float64]codec.Record, error) {
	s.mu.RLock()
	byKey, ok := s.loaded[catalogID]
	s.mu.RUnlock()
	if ok {
		return byKey, nil
	}

	records, _, err := s.manager.LoadRecords(ctx, catalogID)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", catalogID, err)
	}

	byKey = make(map[float64]codec.Record, len(records))
	for _, rec := range records {
		byKey[rec.Key()] = rec
	}

	s.mu.Lock()
	// Another goroutine may have loaded the same immutable catalog
	// concurrently; either map is equivalent.
	if existing, ok := s.loaded[catalogID]; ok {
		byKey = existing
	} else {
		s.loaded[catalogID] = byKey
	}
	s.mu.Unlock()

	return byKey, nil
}
