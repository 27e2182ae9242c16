package imagestore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store, primarily for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	images map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		images: make(map[string][]byte),
	}
}

// Put stores image bytes under ref.
func (s *MemoryStore) Put(ref string, image []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[ref] = image
}

// Fetch implements Store.
func (s *MemoryStore) Fetch(ctx context.Context, ref string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	image, ok := s.images[ref]
	if !ok {
		return nil, ErrNotFound
	}
	return image, nil
}
