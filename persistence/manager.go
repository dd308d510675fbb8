package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/ohmgo/blobstore"
	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/resource"
)

// Options configures a Manager.
type Options struct {
	// Compression applies to the record blob. The key files are always
	// stored uncompressed; they are small and must stay scannable.
	Compression Compression

	// Controller throttles persistence IO. Nil means unlimited.
	Controller *resource.Controller
}

// Manager persists catalogs to a blob store and loads them back.
type Manager struct {
	store blobstore.BlobStore
	opts  Options
}

// NewManager creates a Manager on top of the given blob store.
func NewManager(store blobstore.BlobStore, optFns ...func(*Options)) *Manager {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Manager{store: store, opts: opts}
}

// recordsName returns the record blob name for a catalog id under the
// given compression, e.g. "e24o6.bin" or "e24o6.bin.zst".
func recordsName(id string, compression Compression) string {
	if suffix := compression.String(); suffix != "" {
		return fmt.Sprintf("%s.bin.%s", id, suffix)
	}
	return id + ".bin"
}

// SaveCatalog writes the record blob and both key files for c. Each blob
// is put atomically; a failed save leaves any previously published
// catalog intact.
func (m *Manager) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	records, err := EncodeRecords(c)
	if err != nil {
		return fmt.Errorf("encode records %s: %w", c.ID(), err)
	}
	records, err = Compress(records, m.opts.Compression)
	if err != nil {
		return fmt.Errorf("compress records %s: %w", c.ID(), err)
	}

	blobs := []struct {
		name string
		data []byte
	}{
		{recordsName(c.ID(), m.opts.Compression), records},
		{c.ID() + ".keys", EncodeKeys(c.Keys())},
		{c.ID() + ".txt", EncodeKeysText(c.Keys())},
	}

	for _, blob := range blobs {
		if err := m.opts.Controller.WaitIO(ctx, len(blob.data)); err != nil {
			return err
		}
		if err := m.store.Put(ctx, blob.name, blob.data); err != nil {
			return fmt.Errorf("put %s: %w", blob.name, err)
		}
	}
	return nil
}

// LoadRecords reads and decodes the raw record stream for id, trying
// the uncompressed blob first and falling back to the compressed
// variants. The second return is the number of malformed records
// dropped during decode.
func (m *Manager) LoadRecords(ctx context.Context, id string) ([]codec.Record, int, error) {
	data, compression, err := m.readRecords(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	data, err = Decompress(data, compression)
	if err != nil {
		return nil, 0, fmt.Errorf("decompress %s: %w", id, err)
	}

	records, dropped := DecodeRecords(data)
	return records, dropped, nil
}

// LoadCatalog reads a catalog back by id. It returns the catalog and
// the number of malformed records dropped during decode.
func (m *Manager) LoadCatalog(ctx context.Context, id string) (*catalog.Catalog, int, error) {
	records, dropped, err := m.LoadRecords(ctx, id)
	if err != nil {
		return nil, dropped, err
	}

	c, err := catalog.FromRecords(id, records)
	if err != nil {
		return nil, dropped, err
	}
	return c, dropped, nil
}

// LoadKeys reads and verifies the packed sorted-key file for id.
func (m *Manager) LoadKeys(ctx context.Context, id string) ([]float64, error) {
	data, err := m.readBlob(ctx, id+".keys")
	if err != nil {
		return nil, err
	}
	return DecodeKeys(data)
}

func (m *Manager) readRecords(ctx context.Context, id string) ([]byte, Compression, error) {
	for _, compression := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4} {
		data, err := m.readBlob(ctx, recordsName(id, compression))
		if err == nil {
			return data, compression, nil
		}
		if !errors.Is(err, blobstore.ErrNotFound) {
			return nil, 0, err
		}
	}
	return nil, 0, fmt.Errorf("catalog %s: %w", id, blobstore.ErrNotFound)
}

func (m *Manager) readBlob(ctx context.Context, name string) ([]byte, error) {
	blob, err := m.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	if err := m.opts.Controller.WaitIO(ctx, int(blob.Size())); err != nil {
		return nil, err
	}
	return blobstore.ReadAll(blob)
}
