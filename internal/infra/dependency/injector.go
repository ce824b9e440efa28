// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"github.com/bizpulse/backend/config"
	"github.com/bizpulse/backend/internal/application/adapter"
	"github.com/bizpulse/backend/internal/application/store"
	"github.com/bizpulse/backend/internal/application/usecase/auth"
	"github.com/bizpulse/backend/internal/application/usecase/exporter"
	"github.com/bizpulse/backend/internal/application/usecase/importer"
	"github.com/bizpulse/backend/internal/application/usecase/insights"
	"github.com/bizpulse/backend/internal/infra/server/router"
	"github.com/bizpulse/backend/internal/integration/adapters"
	"github.com/bizpulse/backend/internal/integration/entrypoint/controller"
	"github.com/bizpulse/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  *store.Store
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The snapshot store decides where business data survives restarts; the
// health checker reports on that same backend.
func NewInjector(
	ctx context.Context,
	cfg *config.Config,
	snapshots adapter.SnapshotStore,
	storageHealthChecker func() bool,
) (*Injector, error) {
	// Create the business data store, loading persisted snapshots
	dataStore := store.New(ctx, snapshots)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	insightService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	passwordHash, err := passwordService.HashPassword(cfg.Auth.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash dashboard password: %w", err)
	}

	// Create use cases
	loginUseCase := auth.NewLoginUseCase(passwordHash, passwordService, tokenService)

	csvImportUseCase := importer.NewImportCSVUseCase(dataStore)
	workbookImportUseCase := importer.NewImportWorkbookUseCase(dataStore)
	importFileUseCase := importer.NewImportFileUseCase(csvImportUseCase, workbookImportUseCase)

	exportCSVUseCase := exporter.NewExportCSVUseCase(dataStore)
	exportWorkbookUseCase := exporter.NewExportWorkbookUseCase(dataStore)

	generateInsightsUseCase := insights.NewGenerateInsightsUseCase(dataStore, insightService)

	// Create controllers
	healthController := controller.NewHealthController(storageHealthChecker)
	authController := controller.NewAuthController(loginUseCase)
	businessDataController := controller.NewBusinessDataController(dataStore)
	transferController := controller.NewTransferController(
		importFileUseCase,
		exportCSVUseCase,
		exportWorkbookUseCase,
	)
	insightsController := controller.NewInsightsController(generateInsightsUseCase)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		businessDataController,
		transferController,
		insightsController,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		Store:  dataStore,
		Router: r,
	}, nil
}
