package store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/ohmgo/blobstore"
	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Build(catalog.Spec{Series: "e6", Decades: 2})
	require.NoError(t, err)

	return c
}

func TestMemoryStore(t *testing.T) {
	c := buildTestCatalog(t)

	s, err := NewMemoryStore(map[string]*catalog.Catalog{c.ID(): c})
	require.NoError(t, err)

	t.Run("hit on every catalog key", func(t *testing.T) {
		for _, key := range c.Keys() {
			rec, err := s.Lookup(context.Background(), c.ID(), key)
			require.NoError(t, err)
			assert.Equal(t, key, rec.Key())
		}
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		_, err := s.Lookup(context.Background(), c.ID(), 123456.789)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("miss on unknown catalog", func(t *testing.T) {
		_, err := s.Lookup(context.Background(), "e96o9", 10.0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBlobStore(t *testing.T) {
	ctx := context.Background()
	c := buildTestCatalog(t)

	bs := blobstore.NewMemoryStore()
	manager := persistence.NewManager(bs)
	require.NoError(t, manager.SaveCatalog(ctx, c))

	s := NewBlobStore(manager)

	t.Run("lazy load then hit", func(t *testing.T) {
		keys := c.Keys()
		rec, err := s.Lookup(ctx, c.ID(), keys[0])
		require.NoError(t, err)
		assert.Equal(t, keys[0], rec.Key())

		// Second lookup hits the cached map.
		rec, err = s.Lookup(ctx, c.ID(), keys[len(keys)-1])
		require.NoError(t, err)
		assert.Equal(t, keys[len(keys)-1], rec.Key())
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		_, err := s.Lookup(ctx, c.ID(), 123456.789)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing catalog blob", func(t *testing.T) {
		_, err := s.Lookup(ctx, "e96o9", 10.0)
		assert.Error(t, err)
	})
}

// fakeDDBClient keeps items keyed by the table's composite primary key.
type fakeDDBClient struct {
	items map[string]map[string]types.AttributeValue
}

func newFakeDDBClient() *fakeDDBClient {
	return &fakeDDBClient{items: make(map[string]map[string]types.AttributeValue)}
}

func itemKey(attrs map[string]types.AttributeValue) string {
	series := attrs["series"].(*types.AttributeValueMemberS).Value
	resistance := attrs["resistance"].(*types.AttributeValueMemberN).Value
	return series + "/" + resistance
}

func (f *fakeDDBClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	item := make(map[string]types.AttributeValue, len(params.Item))
	for k, v := range params.Item {
		item[k] = v
	}
	f.items[itemKey(params.Item)] = item

	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDDBClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	item, ok := f.items[itemKey(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func TestDynamoStore(t *testing.T) {
	ctx := context.Background()
	c := buildTestCatalog(t)

	client := newFakeDDBClient()
	s := NewDynamoStore(client, "resistor-networks")

	mem, err := NewMemoryStore(map[string]*catalog.Catalog{c.ID(): c})
	require.NoError(t, err)

	for _, key := range c.Keys() {
		rec, err := mem.Lookup(ctx, c.ID(), key)
		require.NoError(t, err)
		require.NoError(t, s.PutRecord(ctx, c.ID(), rec))
	}

	t.Run("round trip through the table", func(t *testing.T) {
		for _, key := range c.Keys() {
			want, err := mem.Lookup(ctx, c.ID(), key)
			require.NoError(t, err)

			got, err := s.Lookup(ctx, c.ID(), key)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		_, err := s.Lookup(ctx, c.ID(), 123456.789)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
