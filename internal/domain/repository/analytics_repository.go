package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopProductResult represents a product's sales performance
type TopProductResult struct {
	ProductID   uuid.UUID
	ProductName string
	ShortCode   string
	BoxesSold   int
	UnitsSold   int
	Revenue     int64 // cents
}

// TopStoreResult represents a store's ordering volume
type TopStoreResult struct {
	StoreID    uuid.UUID
	StoreName  string
	TotalSpent int64 // cents
	OrderCount int
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date    time.Time
	Revenue int64 // cents
	Orders  int
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetTopProducts returns top selling products by revenue
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetTopStores returns the stores with the highest order totals
	GetTopStores(ctx context.Context, limit int) ([]TopStoreResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetTotalRevenue returns total revenue from delivered orders, in cents
	GetTotalRevenue(ctx context.Context) (int64, error)

	// GetMonthlyRevenue returns revenue for the current month, in cents
	GetMonthlyRevenue(ctx context.Context) (int64, error)

	// CountOrdersByStatus returns the number of orders per status name
	CountOrdersByStatus(ctx context.Context) (map[string]int64, error)

	// CountPendingPreOrders returns the number of pre-orders awaiting confirmation
	CountPendingPreOrders(ctx context.Context) (int64, error)
}
