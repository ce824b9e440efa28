// Package persistence implements snapshot store interfaces for durable storage.
package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/bizpulse/backend/internal/application/adapter"
)

// redisSnapshotStore persists snapshots as Redis string keys, the closest
// server-side analogue of the browser key-value storage the dashboard data
// originally lived in.
type redisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a Redis-backed snapshot store.
func NewRedisSnapshotStore(client *redis.Client) adapter.SnapshotStore {
	return &redisSnapshotStore{
		client: client,
	}
}

// Load reads the snapshot stored under key.
func (s *redisSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save overwrites the snapshot stored under key. Snapshots carry no TTL;
// they live until the next overwrite.
func (s *redisSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, 0).Err()
}
