// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jinofin/backend/config"
	"github.com/jinofin/backend/internal/application/stream"
	"github.com/jinofin/backend/internal/application/usecase/budget"
	"github.com/jinofin/backend/internal/application/usecase/csvimport"
	"github.com/jinofin/backend/internal/application/usecase/dashboard"
	"github.com/jinofin/backend/internal/application/usecase/settings"
	"github.com/jinofin/backend/internal/application/usecase/transaction"
	"github.com/jinofin/backend/internal/infra/server/router"
	"github.com/jinofin/backend/internal/integration/adapters"
	"github.com/jinofin/backend/internal/integration/entrypoint/controller"
	"github.com/jinofin/backend/internal/integration/entrypoint/middleware"
	"github.com/jinofin/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Change hubs; every store write fans out a signal to live dashboards.
	transactionsHub := stream.NewHub()
	settingsHub := stream.NewHub()

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db, transactionsHub)
	settingsRepo := persistence.NewSettingsRepository(db, settingsHub)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	undoStash := adapters.NewUndoStash(redisClient)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, undoStash)
	undoDeleteUseCase := transaction.NewUndoDeleteTransactionUseCase(transactionRepo, undoStash)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	saveSettingsUseCase := settings.NewSaveSettingsUseCase(settingsRepo)

	// Create import/export use cases
	previewImportUseCase := csvimport.NewPreviewImportUseCase(settingsRepo)
	commitImportUseCase := csvimport.NewCommitImportUseCase(transactionRepo)
	exportCSVUseCase := csvimport.NewExportCSVUseCase(transactionRepo)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, settingsRepo)
	watchSummaryUseCase := dashboard.NewWatchSummaryUseCase(transactionRepo, settingsRepo, transactionsHub, settingsHub)

	// Create budget use cases
	getProjectionUseCase := budget.NewGetProjectionUseCase(transactionRepo, settingsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
		undoDeleteUseCase,
	)

	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		saveSettingsUseCase,
	)

	importExportController := controller.NewImportExportController(
		previewImportUseCase,
		commitImportUseCase,
		exportCSVUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		watchSummaryUseCase,
	)

	budgetController := controller.NewBudgetController(getProjectionUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var importRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		importRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		importRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	metrics := middleware.NewMetrics()

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		settingsController,
		importExportController,
		dashboardController,
		budgetController,
		importRateLimiter,
		authMiddleware,
		metrics,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
