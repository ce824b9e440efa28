// Package persistence implements snapshot store interfaces for durable storage.
package persistence

import (
	"context"
	"sync"

	"github.com/bizpulse/backend/internal/application/adapter"
)

// memorySnapshotStore keeps snapshots in process memory. It backs the
// default storage configuration and the test suites; data does not survive
// a restart.
type memorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemorySnapshotStore creates an in-memory snapshot store.
func NewMemorySnapshotStore() adapter.SnapshotStore {
	return &memorySnapshotStore{
		snapshots: make(map[string][]byte),
	}
}

// Load reads the snapshot stored under key.
func (s *memorySnapshotStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.snapshots[key]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Save overwrites the snapshot stored under key.
func (s *memorySnapshotStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	s.snapshots[key] = copied
	return nil
}
