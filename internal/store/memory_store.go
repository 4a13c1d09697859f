package store

import (
	"context"
	"sync"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

// MemoryStore keeps rows in a map for tests and dry runs.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string]domain.Row
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]domain.Row)}
}

func (s *MemoryStore) UpsertRows(ctx context.Context, rows []domain.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range rows {
		s.rows[r.Slug] = r
	}
	return nil
}

func (s *MemoryStore) Get(slug string) (domain.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[slug]
	return r, ok
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rows)
}
