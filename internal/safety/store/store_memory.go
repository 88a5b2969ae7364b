// Package store persists parental controls. Two implementations of
// safety.ControlsStore exist: an in-memory map for single-instance
// deployments and tests, and a Redis variant for deployments that share
// state across instances.
package store

import (
	"context"
	"sync"

	"trailtail/internal/safety"
)

// InMemoryControlsStore keeps controls in a map. Suitable for a single
// instance; use the Redis store when state must be shared.
type InMemoryControlsStore struct {
	mu       sync.RWMutex
	controls map[string]safety.Controls
}

// NewInMemoryControlsStore creates an empty in-memory store.
func NewInMemoryControlsStore() *InMemoryControlsStore {
	return &InMemoryControlsStore{controls: make(map[string]safety.Controls)}
}

func (s *InMemoryControlsStore) Get(ctx context.Context, familyID string) (*safety.Controls, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.controls[familyID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *InMemoryControlsStore) Put(ctx context.Context, familyID string, controls safety.Controls) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controls[familyID] = controls
	return nil
}
