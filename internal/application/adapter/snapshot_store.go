// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SnapshotStore defines the durable key-value persistence medium behind the
// business data store. Each key holds a complete JSON snapshot of one entity
// kind and is overwritten wholesale on every mutation.
type SnapshotStore interface {
	// Load reads the snapshot stored under key. A missing key yields
	// (nil, nil), not an error.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the snapshot stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
