package routes

import (
	"time"

	"github.com/distroflow/distribution-api/internal/config"
	domainRepo "github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/internal/presentation/http/handler"
	"github.com/distroflow/distribution-api/internal/presentation/http/middleware"
	"github.com/distroflow/distribution-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	Category      *handler.CategoryHandler
	Store         *handler.StoreHandler
	Order         *handler.OrderHandler
	PreOrder      *handler.PreOrderHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Vendor        *handler.VendorHandler
	PriceList     *handler.PriceListHandler
	Trip          *handler.TripHandler
	Dashboard     *handler.DashboardHandler
	User          *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded images are served from local disk
	router.Static("/uploads", deps.Cfg.Storage.Path)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	registerProductRoutes(protected, h)
	registerCategoryRoutes(protected, h)
	registerStoreRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)
	registerPreOrderRoutes(protected, h, deps)
	registerPurchaseOrderRoutes(protected, h)
	registerVendorRoutes(protected, h)
	registerPriceListRoutes(protected, h)
	registerTripRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/export", h.Product.ExportCSV)
		products.GET("/recent", h.Order.RecentProducts)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/image", h.Product.UploadImage)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerStoreRoutes(protected *gin.RouterGroup, h *Handlers) {
	stores := protected.Group("/stores")
	{
		stores.GET("", h.Store.List)
		stores.GET("/all", h.Store.ListAll)
		stores.POST("", h.Store.Create)
		stores.GET("/:id", h.Store.Get)
		stores.PUT("/:id", h.Store.Update)
		stores.DELETE("/:id", h.Store.Delete)
		stores.GET("/:id/latest-orders", h.Store.LatestOrders)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.POST("/quick-add", h.Order.ResolveQuickAdd)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/pallets", h.Order.GetPallets)
		orders.PUT("/:id/items", h.Order.UpdateItems)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}
}

func registerPreOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	preorders := protected.Group("/preorders")
	{
		preorders.GET("", h.PreOrder.List)
		preorders.POST("", h.PreOrder.Create)
		preorders.GET("/:id", h.PreOrder.Get)
		preorders.PUT("/:id/items", h.PreOrder.UpdateItems)
		// Confirmation converts a pre-order to an order, so a double click
		// must not run it twice
		preorders.POST("/:id/confirm", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.PreOrder.Confirm)
		preorders.POST("/:id/cancel", h.PreOrder.Cancel)
		preorders.DELETE("/:id", h.PreOrder.Delete)
	}
}

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	pos := protected.Group("/purchase-orders")
	{
		pos.GET("", h.PurchaseOrder.List)
		pos.POST("", h.PurchaseOrder.Create)
		pos.GET("/aggregate", h.PurchaseOrder.Aggregate)
		pos.POST("/aggregate/save", h.PurchaseOrder.SaveMatrix)
		pos.GET("/:id", h.PurchaseOrder.Get)
		pos.PUT("/:id/items/:itemId", h.PurchaseOrder.UpdateItem)
		pos.PUT("/:id/quality-check", h.PurchaseOrder.QualityCheck)
		pos.PUT("/:id/status", h.PurchaseOrder.UpdateStatus)
		pos.PUT("/:id/payment-status", h.PurchaseOrder.UpdatePaymentStatus)
		pos.DELETE("/:id", h.PurchaseOrder.Delete)
	}
}

func registerVendorRoutes(protected *gin.RouterGroup, h *Handlers) {
	vendors := protected.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.POST("", h.Vendor.Create)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
		vendors.GET("/:id/invoices", h.Vendor.ListInvoices)
		vendors.POST("/:id/invoices", h.Vendor.CreateInvoice)
	}

	invoices := protected.Group("/invoices")
	{
		invoices.POST("/image", h.Vendor.UploadInvoiceImage)
		invoices.PUT("/:invoiceId", h.Vendor.UpdateInvoice)
		invoices.POST("/:invoiceId/pay", h.Vendor.MarkInvoicePaid)
		invoices.DELETE("/:invoiceId", h.Vendor.DeleteInvoice)
	}
}

func registerPriceListRoutes(protected *gin.RouterGroup, h *Handlers) {
	priceLists := protected.Group("/price-lists")
	{
		priceLists.GET("", h.PriceList.List)
		priceLists.POST("", h.PriceList.Create)
		priceLists.GET("/:id", h.PriceList.Get)
		priceLists.PUT("/:id", h.PriceList.Update)
		priceLists.DELETE("/:id", h.PriceList.Delete)
	}
}

func registerTripRoutes(protected *gin.RouterGroup, h *Handlers) {
	drivers := protected.Group("/drivers")
	{
		drivers.GET("", h.Trip.ListDrivers)
		drivers.POST("", h.Trip.CreateDriver)
		drivers.PUT("/:id", h.Trip.UpdateDriver)
		drivers.DELETE("/:id", h.Trip.DeleteDriver)
	}

	trips := protected.Group("/trips")
	{
		trips.GET("", h.Trip.ListTrips)
		trips.POST("", h.Trip.CreateTrip)
		trips.POST("/delivery-area", h.Trip.DeliveryArea)
		trips.GET("/:id", h.Trip.GetTrip)
		trips.PUT("/:id/stops", h.Trip.ReplaceStops)
		trips.DELETE("/:id", h.Trip.DeleteTrip)
		trips.GET("/:id/route", h.Trip.Route)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
