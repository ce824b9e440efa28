// Package main is the entry point for the BizPulse API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bizpulse/backend/config"
	"github.com/bizpulse/backend/internal/application/adapter"
	"github.com/bizpulse/backend/internal/infra/db"
	"github.com/bizpulse/backend/internal/infra/dependency"
	"github.com/bizpulse/backend/internal/integration/persistence"
	"github.com/bizpulse/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting BizPulse API",
		"environment", cfg.Server.Environment,
		"storage_backend", cfg.Storage.Backend,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the snapshot store backend
	snapshots, storageHealthChecker, cleanup := newSnapshotStore(cfg)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	injector, err := dependency.NewInjector(ctx, cfg, snapshots, storageHealthChecker)
	cancel()
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newSnapshotStore builds the snapshot persistence backend selected by the
// configuration. A backend that fails to come up degrades to the in-memory
// store so the dashboard stays usable.
func newSnapshotStore(cfg *config.Config) (adapter.SnapshotStore, func() bool, func()) {
	switch cfg.Storage.Backend {
	case "postgres":
		database, err := db.NewPostgresConnection(&cfg.Storage)
		if err != nil {
			slog.Warn("Database connection failed, falling back to in-memory storage",
				"error", err,
			)
			break
		}
		if err := database.AutoMigrate(&model.SnapshotModel{}); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		cleanup := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return persistence.NewGormSnapshotStore(database.DB()), database.HealthCheck, cleanup

	case "redis":
		opts, err := redis.ParseURL(cfg.Storage.RedisURL)
		if err != nil {
			slog.Warn("Invalid Redis URL, falling back to in-memory storage",
				"error", err,
			)
			break
		}
		if cfg.Storage.RedisPassword != "" {
			opts.Password = cfg.Storage.RedisPassword
		}
		opts.DB = cfg.Storage.RedisDB

		client := redis.NewClient(opts)
		healthChecker := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}
		slog.Info("Redis snapshot store initialized")
		return persistence.NewRedisSnapshotStore(client), healthChecker, cleanup

	case "memory":
		// Explicitly selected, no warning needed

	default:
		slog.Warn("Unknown storage backend, using in-memory storage",
			"backend", cfg.Storage.Backend,
		)
	}

	if cfg.Storage.Backend != "memory" {
		slog.Warn("Business data will not survive restarts")
	}
	return persistence.NewMemorySnapshotStore(), func() bool { return true }, func() {}
}
