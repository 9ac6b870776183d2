package main

import (
	"log"
	"os"

	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/config"
	"github.com/distroflow/distribution-api/internal/infrastructure/database"
	"github.com/distroflow/distribution-api/internal/infrastructure/repository"
	"github.com/distroflow/distribution-api/internal/presentation/http/handler"
	"github.com/distroflow/distribution-api/internal/presentation/http/routes"
	"github.com/distroflow/distribution-api/pkg/routing"
	"github.com/distroflow/distribution-api/pkg/storage"
	"github.com/distroflow/distribution-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize local file storage for product and invoice images
	fileStore, err := storage.NewFileStore(cfg.Storage.Path, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// OpenRouteService client, disabled when no API key is configured
	orsClient := routing.NewClient(cfg.Routing.ORSBaseURL, cfg.Routing.ORSAPIKey, cfg.Routing.Timeout)
	if !orsClient.Enabled() {
		log.Printf("Warning: routing disabled, no OpenRouteService API key configured")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	preOrderRepo := repository.NewPreOrderRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	vendorInvoiceRepo := repository.NewVendorInvoiceRepository(db)
	priceListRepo := repository.NewPriceListRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	tripRepo := repository.NewTripRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	storeService := service.NewStoreService(storeRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, storeRepo)
	preOrderService := service.NewPreOrderService(preOrderRepo, productRepo, storeRepo, priceListRepo)
	purchaseOrderService := service.NewPurchaseOrderService(purchaseOrderRepo, orderRepo, productRepo, vendorRepo)
	vendorService := service.NewVendorService(vendorRepo, vendorInvoiceRepo)
	priceListService := service.NewPriceListService(priceListRepo, productRepo)
	tripService := service.NewTripService(tripRepo, driverRepo, orsClient)
	dashboardService := service.NewDashboardService(analyticsRepo, productRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Product:       handler.NewProductHandler(productService, fileStore),
		Category:      handler.NewCategoryHandler(categoryService),
		Store:         handler.NewStoreHandler(storeService, orderService),
		Order:         handler.NewOrderHandler(orderService, productService),
		PreOrder:      handler.NewPreOrderHandler(preOrderService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Vendor:        handler.NewVendorHandler(vendorService, fileStore),
		PriceList:     handler.NewPriceListHandler(priceListService),
		Trip:          handler.NewTripHandler(tripService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		User:          handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
