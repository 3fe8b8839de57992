package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/poi2/shopflow/internal/domain/entity"
	coreport "github.com/poi2/shopflow/internal/domain/port/core"
	"github.com/poi2/shopflow/internal/domain/port/usecase"
	catalogUseCase "github.com/poi2/shopflow/internal/domain/usecase/catalog"
	orderUseCase "github.com/poi2/shopflow/internal/domain/usecase/order"

	"github.com/poi2/shopflow/internal/infrastructure/adapter/api/handler"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/api/routes"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/database"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/database/migration"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/logger"
	"github.com/poi2/shopflow/internal/infrastructure/adapter/repository"
	timeProvider "github.com/poi2/shopflow/internal/infrastructure/adapter/time"
	"github.com/poi2/shopflow/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := cfg.ToDatabaseConfig()
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	// Run migrations. A freshly started database can still refuse
	// connections for a moment, so transient failures are retried
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	err = database.RetryOnTransientError(context.Background(), database.DefaultRetryConfig(), func() error {
		return migrationMgr.MigrateAll()
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories bound to the base connection
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	shopRepo := repository.NewShopRepository(dbManager.DB(), tp, appLogger)
	orderRepo := repository.NewOrderRepository(dbManager.DB(), tp, appLogger)

	// Initialize use cases. The database manager doubles as the factory
	// for both unit-of-work coordinator variants
	catalogService := catalogUseCase.NewCatalogUseCase(userRepo, shopRepo, tp, appLogger)
	orderService := orderUseCase.NewService(
		dbManager,
		dbManager,
		userRepo,
		shopRepo,
		orderRepo,
		tp,
		appLogger,
	)

	// Per-buyer placement queue for batch order placement. Every queued
	// placement gets its own deadline so a stuck one cannot wedge the
	// buyer's worker
	placementTimeout := coreport.Duration(cfg.Ordering.PlacementTimeoutS) * coreport.Second
	placementQueue := orderUseCase.NewPlacementQueue(appLogger, tp, cfg.Ordering.QueueCapacity,
		func(ctx context.Context, userID uint64, req usecase.PlaceOrderRequest) (*entity.Order, error) {
			ctx, cancel := tp.WithTimeout(ctx, placementTimeout)
			defer cancel()
			return orderService.PlaceOrder(ctx, userID, req)
		})

	// Seed default catalog entries
	if err := migration.SeedDefaultCatalog(context.Background(), catalogService); err != nil {
		appLogger.Error("Failed to seed default catalog", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize API handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, placementQueue, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, catalogHandler, orderHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// No new requests can arrive now; drain the per-buyer placement queues
	// before closing the database
	placementQueue.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// sqlite needs only a database path, postgres needs full connection details
	if cfg.Database.Driver != "sqlite" {
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or SF_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or SF_DB_USERNAME environment variable)")
		}
		if cfg.Database.Password == "" {
			missingConfigs = append(missingConfigs, "database.password (or SF_DB_PASSWORD environment variable)")
		}
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or SF_DB_NAME environment variable)")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
