package semantic

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
)

// EmbeddingCache stores embedding vectors keyed by their input text.
// Returned slices must be treated as read-only.
type EmbeddingCache interface {
	// Get returns a cached vector. ok=false if missing.
	Get(text string) (vec []float32, ok bool)
	// Set caches a vector. Implementations may retain vec; the caller must
	// treat it as immutable afterwards.
	Set(text string, vec []float32)
}

// LRUCache is an in-memory EmbeddingCache with byte-based capacity
// accounting and least-recently-used eviction.
type LRUCache struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[string]*list.Element
	evictList *list.List

	hits   atomic.Int64
	misses atomic.Int64
}

type lruEntry struct {
	key string
	vec []float32
}

// NewLRUCache creates an LRUCache with the given capacity in bytes.
func NewLRUCache(capacity int64) *LRUCache {
	return &LRUCache{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
	}
}

// Get returns a cached vector.
func (c *LRUCache) Get(text string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[text]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(ent)
		return ent.Value.(*lruEntry).vec, true
	}
	c.misses.Add(1)
	return nil, false
}

// Set caches a vector.
func (c *LRUCache) Set(text string, vec []float32) {
	itemSize := entrySize(text, vec)
	if itemSize > c.capacity {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[text]; ok {
		c.evictList.MoveToFront(ent)
		e := ent.Value.(*lruEntry)
		c.size += itemSize - entrySize(e.key, e.vec)
		e.vec = vec
		c.evict()
		return
	}

	ent := c.evictList.PushFront(&lruEntry{key: text, vec: vec})
	c.items[text] = ent
	c.size += itemSize
	c.evict()
}

// Stats returns hit/miss counters.
func (c *LRUCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *LRUCache) evict() {
	for c.size > c.capacity {
		ent := c.evictList.Back()
		if ent == nil {
			return
		}
		e := ent.Value.(*lruEntry)
		c.evictList.Remove(ent)
		delete(c.items, e.key)
		c.size -= entrySize(e.key, e.vec)
	}
}

func entrySize(key string, vec []float32) int64 {
	return int64(len(key)) + int64(len(vec))*4
}

// CachedEmbedder wraps an Embedder with an EmbeddingCache.
//
// Ranking embeds the subject text once per candidate; a cache in front of the
// capability collapses those repeat calls. Only successful, non-empty
// embeddings are cached so that a transient capability failure is retried on
// the next call.
type CachedEmbedder struct {
	inner Embedder
	cache EmbeddingCache
}

// CacheEmbedder wraps e with cache.
func CacheEmbedder(e Embedder, cache EmbeddingCache) *CachedEmbedder {
	return &CachedEmbedder{
		inner: e,
		cache: cache,
	}
}

// Embed implements Embedder.
func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := c.cache.Get(text); ok {
		return vec, nil
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vec) > 0 {
		c.cache.Set(text, vec)
	}
	return vec, nil
}
