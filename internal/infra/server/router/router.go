// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jinofin/backend/internal/integration/entrypoint/controller"
	"github.com/jinofin/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	settingsController     *controller.SettingsController
	importExportController *controller.ImportExportController
	dashboardController    *controller.DashboardController
	budgetController       *controller.BudgetController
	importRateLimiter      *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	metrics                *middleware.Metrics
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	settingsController *controller.SettingsController,
	importExportController *controller.ImportExportController,
	dashboardController *controller.DashboardController,
	budgetController *controller.BudgetController,
	importRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		settingsController:     settingsController,
		importExportController: importExportController,
		dashboardController:    dashboardController,
		budgetController:       budgetController,
		importRateLimiter:      importRateLimiter,
		authMiddleware:         authMiddleware,
		metrics:                metrics,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/:id/undo", r.transactionController.Undo)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PATCH("", r.settingsController.Save)
			}
		}

		// Import and export routes (require authentication)
		if r.importExportController != nil && r.authMiddleware != nil {
			importGroup := v1.Group("/import")
			importGroup.Use(r.authMiddleware.Authenticate())
			{
				importGroup.POST("/preview", r.importExportController.Preview)
				if r.importRateLimiter != nil {
					importGroup.POST("/commit", r.importRateLimiter.Middleware(), r.importExportController.Commit)
				} else {
					importGroup.POST("/commit", r.importExportController.Commit)
				}
			}

			export := v1.Group("/export")
			export.Use(r.authMiddleware.Authenticate())
			{
				export.GET("/csv", r.importExportController.Export)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
				dashboard.GET("/stream", r.dashboardController.Stream)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budget := v1.Group("/budget")
			budget.Use(r.authMiddleware.Authenticate())
			{
				budget.GET("/projection", r.budgetController.Projection)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
