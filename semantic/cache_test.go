package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_Basic(t *testing.T) {
	c := NewLRUCache(1 << 20)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("hello", []float32{1, 2, 3})

	vec, ok := c.Get("hello")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, vec)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestLRUCache_Eviction(t *testing.T) {
	// Capacity fits roughly two entries of one float32 + short key.
	c := NewLRUCache(20)

	c.Set("aaaa", []float32{1})
	c.Set("bbbb", []float32{2})

	// Touch "aaaa" so "bbbb" is the eviction victim.
	_, ok := c.Get("aaaa")
	require.True(t, ok)

	c.Set("cccc", []float32{3})

	_, ok = c.Get("bbbb")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok = c.Get("aaaa")
	assert.True(t, ok)
	_, ok = c.Get("cccc")
	assert.True(t, ok)
}

func TestLRUCache_OversizedEntry(t *testing.T) {
	c := NewLRUCache(8)

	c.Set("key", make([]float32, 100))

	_, ok := c.Get("key")
	assert.False(t, ok, "entries larger than capacity are not cached")
}

func TestCachedEmbedder(t *testing.T) {
	var calls int
	inner := EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		calls++
		return []float32{1, 2}, nil
	})

	e := CacheEmbedder(inner, NewLRUCache(1<<20))

	for i := 0; i < 5; i++ {
		vec, err := e.Embed(context.Background(), "macbook pro with stickers")
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2}, vec)
	}

	assert.Equal(t, 1, calls, "repeat embeddings of the same text hit the cache")
}

func TestCachedEmbedder_ErrorsNotCached(t *testing.T) {
	var calls int
	inner := EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return []float32{1}, nil
	})

	e := CacheEmbedder(inner, NewLRUCache(1<<20))

	_, err := e.Embed(context.Background(), "text")
	require.Error(t, err)

	vec, err := e.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, vec)
	assert.Equal(t, 2, calls)
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	vec := []float32{0.25, -1.5, 3.75, 0}
	c.Set("some item text", vec)

	got, ok := c.Get("some item text")
	require.True(t, ok)
	assert.Equal(t, vec, got)
}

func TestDiskCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	c1, err := NewDiskCache(dir)
	require.NoError(t, err)
	c1.Set("persisted", []float32{42})

	c2, err := NewDiskCache(dir)
	require.NoError(t, err)

	vec, ok := c2.Get("persisted")
	require.True(t, ok)
	assert.Equal(t, []float32{42}, vec)
}
