package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Open(ctx, "e6o3.bin")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, store.Put(ctx, "e6o3.bin", []byte("records")))
	require.NoError(t, store.Put(ctx, "e6o3.keys", []byte("keys")))
	require.NoError(t, store.Put(ctx, "e12o3.bin", []byte("more")))

	blob, err := store.Open(ctx, "e6o3.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(7), blob.Size())

	data, err := ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("records"), data)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "e6o3")
	require.NoError(t, err)
	assert.Equal(t, []string{"e6o3.bin", "e6o3.keys"}, names)

	// Put replaces the whole blob.
	require.NoError(t, store.Put(ctx, "e6o3.bin", []byte("v2")))
	blob, err = store.Open(ctx, "e6o3.bin")
	require.NoError(t, err)
	data, err = ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
	require.NoError(t, blob.Close())

	require.NoError(t, store.Delete(ctx, "e6o3.bin"))
	require.NoError(t, store.Delete(ctx, "e6o3.bin")) // idempotent
	_, err = store.Open(ctx, "e6o3.bin")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	testStore(t, store)
}

func TestLocalBlobReadAt(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "blob", []byte("0123456789")))

	blob, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	defer blob.Close()

	buf := make([]byte, 3)
	n, err := blob.ReadAt(buf, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("567"), buf)
}
