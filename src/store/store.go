// Package store defines the interface for persistent data storage.
package store

import (
	"context"
	"errors"

	"staffline-agent/src/contracts"
)

// ErrNotFound is returned when a request id is unknown to the store.
var ErrNotFound = errors.New("request not found")

// Store persists request status together with the coordination events and
// recommendations the agents produced for it.
type Store interface {
	// CreateRequest creates a pending request record; creating an existing request is a no-op
	CreateRequest(ctx context.Context, requestID string, source string) error

	// GetRequestStatus returns the status of a request
	GetRequestStatus(ctx context.Context, requestID string) (*contracts.RequestStatus, error)

	// UpdateRequestStatus overwrites the status of a request
	UpdateRequestStatus(ctx context.Context, status *contracts.RequestStatus) error

	// ModifyRequest applies fn to the current status of a request as one atomic
	// read-modify-write. A failed request stays failed whatever fn does.
	ModifyRequest(ctx context.Context, requestID string, fn func(*contracts.RequestStatus)) error

	// SaveCoordination appends a coordination event to a request
	SaveCoordination(ctx context.Context, requestID string, event *contracts.AgentCoordination) error

	// GetCoordinations returns a request's coordination events in save order
	GetCoordinations(ctx context.Context, requestID string) ([]contracts.AgentCoordination, error)

	// SaveRecommendation appends a recommendation to a request
	SaveRecommendation(ctx context.Context, requestID string, rec *contracts.Recommendation) error

	// GetRecommendations returns a request's recommendations in save order
	GetRecommendations(ctx context.Context, requestID string) ([]contracts.Recommendation, error)

	// Close closes the store connection
	Close() error
}

// applyModify runs fn against a copy of current and returns the result to store.
func applyModify(current contracts.RequestStatus, fn func(*contracts.RequestStatus)) contracts.RequestStatus {
	next := current
	fn(&next)

	next.RequestID = current.RequestID
	if next.Source == "" {
		next.Source = current.Source
	}
	if current.Status == contracts.StatusFailed {
		next.Status = contracts.StatusFailed
	}
	return next
}
