package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/bizpulse/backend/internal/application/adapter"
)

func newRedisStore(t *testing.T) adapter.SnapshotStore {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSnapshotStore(client)
}

func TestRedisSnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key loads as nil without error", func(t *testing.T) {
		snapshots := newRedisStore(t)

		data, err := snapshots.Load(ctx, "business:indicators")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data != nil {
			t.Errorf("expected nil for missing key, got %q", data)
		}
	})

	t.Run("save then load round trips", func(t *testing.T) {
		snapshots := newRedisStore(t)

		payload := []byte(`{"companyName":"Acme Corp"}`)
		if err := snapshots.Save(ctx, "business:profile", payload); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}

		data, err := snapshots.Load(ctx, "business:profile")
		if err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}
		if string(data) != string(payload) {
			t.Errorf("unexpected data %q", data)
		}
	})

	t.Run("save overwrites previous data", func(t *testing.T) {
		snapshots := newRedisStore(t)

		_ = snapshots.Save(ctx, "k", []byte("first"))
		_ = snapshots.Save(ctx, "k", []byte("second"))

		data, _ := snapshots.Load(ctx, "k")
		if string(data) != "second" {
			t.Errorf("expected second write to win, got %q", data)
		}
	})
}
