package store

import (
	"context"
	"fmt"
	"sync"

	"staffline-agent/src/contracts"
)

// MemoryStore is an in-memory implementation of Store.
// Useful for testing and local mode.
type MemoryStore struct {
	mu              sync.RWMutex
	requests        map[string]*contracts.RequestStatus
	coordinations   map[string][]contracts.AgentCoordination // requestID -> events
	recommendations map[string][]contracts.Recommendation    // requestID -> recommendations
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		requests:        make(map[string]*contracts.RequestStatus),
		coordinations:   make(map[string][]contracts.AgentCoordination),
		recommendations: make(map[string][]contracts.Recommendation),
	}
}

// CreateRequest creates a new request record.
func (s *MemoryStore) CreateRequest(ctx context.Context, requestID string, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.requests[requestID]; exists {
		return nil
	}
	s.requests[requestID] = &contracts.RequestStatus{
		RequestID: requestID,
		Source:    source,
		Status:    contracts.StatusPending,
	}

	return nil
}

// GetRequestStatus returns the status of a request.
func (s *MemoryStore) GetRequestStatus(ctx context.Context, requestID string) (*contracts.RequestStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, exists := s.requests[requestID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, requestID)
	}

	statusCopy := *status
	return &statusCopy, nil
}

// UpdateRequestStatus updates the status of a request.
func (s *MemoryStore) UpdateRequestStatus(ctx context.Context, status *contracts.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.requests[status.RequestID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, status.RequestID)
	}

	updated := *status
	if updated.Source == "" {
		updated.Source = existing.Source
	}
	s.requests[status.RequestID] = &updated

	return nil
}

// ModifyRequest applies fn under the store lock.
func (s *MemoryStore) ModifyRequest(ctx context.Context, requestID string, fn func(*contracts.RequestStatus)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.requests[requestID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, requestID)
	}

	updated := applyModify(*existing, fn)
	s.requests[requestID] = &updated

	return nil
}

// SaveCoordination appends a coordination event.
func (s *MemoryStore) SaveCoordination(ctx context.Context, requestID string, event *contracts.AgentCoordination) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *event
	stored.Data = append([]byte(nil), event.Data...)
	s.coordinations[requestID] = append(s.coordinations[requestID], stored)

	return nil
}

// GetCoordinations returns the coordination events of a request.
func (s *MemoryStore) GetCoordinations(ctx context.Context, requestID string) ([]contracts.AgentCoordination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.coordinations[requestID]
	out := make([]contracts.AgentCoordination, len(events))
	for i, e := range events {
		e.Data = append([]byte(nil), e.Data...)
		out[i] = e
	}

	return out, nil
}

// SaveRecommendation appends a recommendation.
func (s *MemoryStore) SaveRecommendation(ctx context.Context, requestID string, rec *contracts.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recommendations[requestID] = append(s.recommendations[requestID], copyRecommendation(*rec))

	return nil
}

// GetRecommendations returns the recommendations of a request.
func (s *MemoryStore) GetRecommendations(ctx context.Context, requestID string) ([]contracts.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.recommendations[requestID]
	out := make([]contracts.Recommendation, len(recs))
	for i, r := range recs {
		out[i] = copyRecommendation(r)
	}

	return out, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

func copyRecommendation(r contracts.Recommendation) contracts.Recommendation {
	if r.Data != nil {
		data := make(map[string]any, len(r.Data))
		for k, v := range r.Data {
			data[k] = v
		}
		r.Data = data
	}
	return r
}
