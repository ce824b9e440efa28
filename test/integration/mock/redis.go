// Package mock provides test doubles for the integration suite.
package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis bundles an in-process Redis server with a client pointed at it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts a fresh miniredis instance per call so scenarios never
// see each other's snapshots.
func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})

	return &Redis{
		Server: server,
		Client: client,
	}
}

// Close shuts down the client and the server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
