package dedup

import (
	"context"
	"sync"
)

// Store persists a History between runs. Load never fails on a corrupt or
// missing history; it starts over with an empty one.
type Store interface {
	Load(ctx context.Context) (*History, error)
	Save(ctx context.Context, h *History) error
}

// MemoryStore keeps history in process. Used by tests and dry runs.
type MemoryStore struct {
	mu      sync.Mutex
	maxSize int
	links   []string
	saves   int
}

func NewMemoryStore(maxSize int, links ...string) *MemoryStore {
	return &MemoryStore{maxSize: maxSize, links: links}
}

func (m *MemoryStore) Load(_ context.Context) (*History, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := NewHistory(m.maxSize)
	for _, l := range m.links {
		h.add(l)
	}
	return h, nil
}

func (m *MemoryStore) Save(_ context.Context, h *History) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = h.Links()
	m.saves++
	return nil
}

// Saves counts successful Save calls.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
