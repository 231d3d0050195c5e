package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/crewdesk/crewdesk/internal/domain/servicerequest"
)

// InMemoryServiceRequestStore implements servicerequest.Repository
type InMemoryServiceRequestStore struct {
	mu       sync.RWMutex
	requests map[string]*servicerequest.ServiceRequest
}

// NewInMemoryServiceRequestStore creates a new in-memory service request store
func NewInMemoryServiceRequestStore() *InMemoryServiceRequestStore {
	return &InMemoryServiceRequestStore{
		requests: make(map[string]*servicerequest.ServiceRequest),
	}
}

// Add seeds a service request into the store
func (s *InMemoryServiceRequestStore) Add(sr *servicerequest.ServiceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[sr.ID] = sr
}

func (s *InMemoryServiceRequestStore) Get(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sr, exists := s.requests[id]
	if !exists {
		return nil, servicerequest.ErrServiceRequestNotFound
	}
	return sr, nil
}

func (s *InMemoryServiceRequestStore) List(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*servicerequest.ServiceRequest, 0, len(s.requests))
	for _, sr := range s.requests {
		result = append(result, sr)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Clear removes all service requests
func (s *InMemoryServiceRequestStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make(map[string]*servicerequest.ServiceRequest)
}
