package testutil

import (
	"context"
	"sync"

	"github.com/crewdesk/crewdesk/internal/domain/draft"
)

// InMemoryDraftStore implements draft.Repository without TTL handling,
// for deterministic service tests
type InMemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]draft.Draft
}

// NewInMemoryDraftStore creates a new in-memory draft store
func NewInMemoryDraftStore() *InMemoryDraftStore {
	return &InMemoryDraftStore{
		drafts: make(map[string]draft.Draft),
	}
}

func (s *InMemoryDraftStore) Save(ctx context.Context, d draft.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = d
	return nil
}

func (s *InMemoryDraftStore) Get(ctx context.Context, id string) (draft.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, exists := s.drafts[id]
	if !exists {
		return draft.Draft{}, draft.ErrDraftNotFound
	}
	return d, nil
}

func (s *InMemoryDraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

// Has reports whether a draft is currently stored
func (s *InMemoryDraftStore) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.drafts[id]
	return exists
}

// Clear removes all drafts
func (s *InMemoryDraftStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = make(map[string]draft.Draft)
}
