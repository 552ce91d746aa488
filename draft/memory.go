package draft

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	drafts map[int]Draft
}

// NewMemoryStore keeps drafts in process memory. Suitable for a single
// instance; they are lost on restart.
func NewMemoryStore() Store {
	return &memoryStore{drafts: map[int]Draft{}}
}

func (s *memoryStore) Save(_ context.Context, formID int, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[formID] = d
	return nil
}

func (s *memoryStore) Load(_ context.Context, formID int) (Draft, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[formID]
	return d, ok, nil
}

func (s *memoryStore) Clear(_ context.Context, formID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, formID)
	return nil
}
