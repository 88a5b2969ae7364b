// Package store persists per-user narrative history. Two implementations of
// narratives.HistoryStore exist: an in-memory map for single-instance
// deployments and tests, and a Redis variant for deployments that share
// state across instances.
package store

import (
	"context"
	"sync"

	"trailtail/internal/narratives"
)

// InMemoryHistoryStore keeps narrative history in a map, ordered oldest
// first per user.
type InMemoryHistoryStore struct {
	mu      sync.RWMutex
	history map[string][]narratives.HistoryEntry
}

// NewInMemoryHistoryStore creates an empty in-memory store.
func NewInMemoryHistoryStore() *InMemoryHistoryStore {
	return &InMemoryHistoryStore{history: make(map[string][]narratives.HistoryEntry)}
}

func (s *InMemoryHistoryStore) Record(ctx context.Context, userID string, entry narratives.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[userID] = append(s.history[userID], entry)
	return nil
}

func (s *InMemoryHistoryStore) List(ctx context.Context, userID string, limit int) ([]narratives.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.history[userID]
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]narratives.HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}
