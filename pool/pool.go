// Package pool provides an in-memory candidate pool with bitmap postings.
//
// The surrounding browse/search layer keeps the live item set here and hands
// slices of it to the ranker. Postings over kind, category and location are
// roaring bitmaps keyed by insertion position, so candidate selection is a
// few bitmap intersections and the returned slice preserves insertion order,
// which the ranker's stable sort depends on for ties.
package pool

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/matchgo/item"
)

// Pool is a concurrency-safe in-memory item pool.
type Pool struct {
	mu    sync.RWMutex
	items []item.Item // insertion order; positions are stable
	byID  map[string]uint32

	live       *roaring.Bitmap
	kinds      map[item.Kind]*roaring.Bitmap
	categories map[item.Category]*roaring.Bitmap
	locations  map[string]*roaring.Bitmap
}

// New creates an empty Pool.
func New() *Pool {
	return &Pool{
		byID:       make(map[string]uint32),
		live:       roaring.New(),
		kinds:      make(map[item.Kind]*roaring.Bitmap),
		categories: make(map[item.Category]*roaring.Bitmap),
		locations:  make(map[string]*roaring.Bitmap),
	}
}

// Upsert adds it to the pool or replaces the entry with the same ID.
// A replaced entry keeps its original position.
func (p *Pool) Upsert(it item.Item) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pos, ok := p.byID[it.ID]; ok {
		p.unindexLocked(pos)
		p.items[pos] = it
		p.indexLocked(pos, it)
		return
	}

	pos := uint32(len(p.items))
	p.items = append(p.items, it)
	p.byID[it.ID] = pos
	p.indexLocked(pos, it)
}

// Remove deletes the entry with the given ID, if present.
func (p *Pool) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pos, ok := p.byID[id]
	if !ok {
		return
	}
	p.unindexLocked(pos)
	delete(p.byID, id)
}

// Get returns the live entry with the given ID.
func (p *Pool) Get(id string) (item.Item, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	pos, ok := p.byID[id]
	if !ok || !p.live.Contains(pos) {
		return item.Item{}, false
	}
	return p.items[pos], true
}

// Len returns the number of live entries.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return int(p.live.GetCardinality())
}

// Filter narrows a Candidates query.
type Filter struct {
	// Category restricts to an exact category, if non-empty.
	Category item.Category
	// Location restricts to an exact location, if non-empty.
	Location string
}

// Candidates returns the live entries of the given kind in insertion order,
// optionally narrowed by a Filter. The returned slice is owned by the caller.
func (p *Pool) Candidates(kind item.Kind, optFns ...func(*Filter)) []item.Item {
	var f Filter
	for _, fn := range optFns {
		if fn != nil {
			fn(&f)
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	kindBM, ok := p.kinds[kind]
	if !ok {
		return nil
	}

	result := p.live.Clone()
	result.And(kindBM)

	if f.Category != "" {
		bm, ok := p.categories[f.Category]
		if !ok {
			return nil
		}
		result.And(bm)
	}
	if f.Location != "" {
		bm, ok := p.locations[f.Location]
		if !ok {
			return nil
		}
		result.And(bm)
	}

	out := make([]item.Item, 0, result.GetCardinality())
	it := result.Iterator()
	for it.HasNext() {
		out = append(out, p.items[it.Next()])
	}
	return out
}

func (p *Pool) indexLocked(pos uint32, it item.Item) {
	p.live.Add(pos)
	bitmapFor(p.kinds, it.Kind).Add(pos)
	bitmapFor(p.categories, it.Category).Add(pos)
	bitmapFor(p.locations, it.Location).Add(pos)
}

func (p *Pool) unindexLocked(pos uint32) {
	it := p.items[pos]
	p.live.Remove(pos)
	if bm, ok := p.kinds[it.Kind]; ok {
		bm.Remove(pos)
	}
	if bm, ok := p.categories[it.Category]; ok {
		bm.Remove(pos)
	}
	if bm, ok := p.locations[it.Location]; ok {
		bm.Remove(pos)
	}
}

func bitmapFor[K comparable](m map[K]*roaring.Bitmap, key K) *roaring.Bitmap {
	bm, ok := m[key]
	if !ok {
		bm = roaring.New()
		m[key] = bm
	}
	return bm
}
