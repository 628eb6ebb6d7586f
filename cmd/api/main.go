package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/distributor-orders/internal/application/service"
	"github.com/sangkips/distributor-orders/internal/config"
	"github.com/sangkips/distributor-orders/internal/infrastructure/database"
	"github.com/sangkips/distributor-orders/internal/infrastructure/repository"
	"github.com/sangkips/distributor-orders/internal/presentation/http/handler"
	"github.com/sangkips/distributor-orders/internal/presentation/http/middleware"
	"github.com/sangkips/distributor-orders/internal/presentation/http/routes"
	"github.com/sangkips/distributor-orders/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	log := logger.Get()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Engine.Location()
	if err != nil {
		log.WithError(err).Fatal("Invalid engine configuration")
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, log); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	schemeRepo := repository.NewSchemeRepository(db)
	priceTierRepo := repository.NewPriceTierRepository(db)
	stockRepo := repository.NewStockRepository(db)
	distributorRepo := repository.NewDistributorRepository(db)
	storeRepo := repository.NewStoreRepository(db)

	// Initialize services
	orderService := service.NewOrderService(
		productRepo, schemeRepo, priceTierRepo, stockRepo, distributorRepo, storeRepo,
		service.OrderRules{
			Location:              loc,
			PlantLocationID:       cfg.Engine.PlantLocationID,
			RequireSpecialSchemes: cfg.Engine.RequireSpecialSchemes,
		},
		log,
	)
	catalogService := service.NewCatalogService(
		productRepo, stockRepo, storeRepo,
		cfg.Engine.PlantLocationID,
		service.StockThresholds{Low: cfg.Stock.LowThreshold, Critical: cfg.Stock.CriticalThreshold},
		log,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:   handler.NewOrderHandler(orderService),
		Catalog: handler.NewCatalogHandler(catalogService),
	}

	rateLimiter := middleware.NewClientRateLimiter(
		middleware.RateLimiterConfigFromWindow(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:         cfg,
		Log:         log,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{
		"service":  cfg.App.Name,
		"port":     port,
		"env":      cfg.App.Env,
		"timezone": cfg.Engine.Timezone,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
