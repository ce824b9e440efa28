// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bizpulse/backend/internal/integration/entrypoint/controller"
	"github.com/bizpulse/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	businessDataController *controller.BusinessDataController
	transferController     *controller.TransferController
	insightsController     *controller.InsightsController
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	businessDataController *controller.BusinessDataController,
	transferController *controller.TransferController,
	insightsController *controller.InsightsController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		businessDataController: businessDataController,
		transferController:     transferController,
		insightsController:     insightsController,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.authController.Login)
			}
		}

		// Business data routes (require authentication)
		if r.businessDataController != nil && r.authMiddleware != nil {
			business := v1.Group("/business")
			business.Use(r.authMiddleware.Authenticate())
			{
				business.GET("/profile", r.businessDataController.GetProfile)
				business.PUT("/profile", r.businessDataController.SetProfile)
				business.GET("/metrics", r.businessDataController.GetMetrics)

				business.GET("/records", r.businessDataController.ListRecords)
				business.POST("/records", r.businessDataController.AddRecord)
				business.PATCH("/records/:date", r.businessDataController.UpdateRecord)
				business.DELETE("/records/:date", r.businessDataController.DeleteRecord)

				business.GET("/indicators", r.businessDataController.ListIndicators)
				business.PUT("/indicators", r.businessDataController.SetIndicators)
				business.POST("/indicators", r.businessDataController.AddIndicator)
				business.PATCH("/indicators/:metric", r.businessDataController.UpdateIndicator)
				business.DELETE("/indicators/:metric", r.businessDataController.DeleteIndicator)

				business.DELETE("", r.businessDataController.ClearAll)

				if r.transferController != nil {
					business.POST("/import", r.transferController.Import)
					business.GET("/export/csv", r.transferController.ExportCSV)
					business.GET("/export/workbook", r.transferController.ExportWorkbook)
				}
			}
		}

		// Insight routes (require authentication)
		if r.insightsController != nil && r.authMiddleware != nil {
			insightRoutes := v1.Group("/insights")
			insightRoutes.Use(r.authMiddleware.Authenticate())
			{
				insightRoutes.POST("", r.insightsController.Generate)
			}
		}
	}
}
