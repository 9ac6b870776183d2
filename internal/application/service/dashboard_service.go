package service

import (
	"context"

	"github.com/distroflow/distribution-api/internal/domain/repository"
)

// DashboardService assembles the dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
	}
}

// TopProduct is a product's sales performance, amounts in decimal
type TopProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ShortCode   string  `json:"short_code,omitempty"`
	BoxesSold   int     `json:"boxes_sold"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

// TopStore is a store's ordering volume, amounts in decimal
type TopStore struct {
	StoreID    string  `json:"store_id"`
	StoreName  string  `json:"store_name"`
	TotalSpent float64 `json:"total_spent"`
	OrderCount int     `json:"order_count"`
}

// DailySales is one day's revenue and order count
type DailySales struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// DashboardStats is the aggregate dashboard payload
type DashboardStats struct {
	TotalRevenue     float64          `json:"total_revenue"`
	MonthlyRevenue   float64          `json:"monthly_revenue"`
	OrdersByStatus   map[string]int64 `json:"orders_by_status"`
	PendingPreOrders int64            `json:"pending_pre_orders"`
	LowStockCount    int              `json:"low_stock_count"`
	TopProducts      []TopProduct     `json:"top_products"`
	TopStores        []TopStore       `json:"top_stores"`
	DailySales       []DailySales     `json:"daily_sales"`
}

// GetStats builds the full dashboard payload
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	monthlyRevenue, err := s.analyticsRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}

	ordersByStatus, err := s.analyticsRepo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	pendingPreOrders, err := s.analyticsRepo.CountPendingPreOrders(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}

	topStores, err := s.analyticsRepo.GetTopStores(ctx, 5)
	if err != nil {
		return nil, err
	}

	dailySales, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalRevenue:     float64(totalRevenue) / 100,
		MonthlyRevenue:   float64(monthlyRevenue) / 100,
		OrdersByStatus:   ordersByStatus,
		PendingPreOrders: pendingPreOrders,
		LowStockCount:    len(lowStock),
		TopProducts:      make([]TopProduct, len(topProducts)),
		TopStores:        make([]TopStore, len(topStores)),
		DailySales:       make([]DailySales, len(dailySales)),
	}

	for i, p := range topProducts {
		stats.TopProducts[i] = TopProduct{
			ProductID:   p.ProductID.String(),
			ProductName: p.ProductName,
			ShortCode:   p.ShortCode,
			BoxesSold:   p.BoxesSold,
			UnitsSold:   p.UnitsSold,
			Revenue:     float64(p.Revenue) / 100,
		}
	}
	for i, st := range topStores {
		stats.TopStores[i] = TopStore{
			StoreID:    st.StoreID.String(),
			StoreName:  st.StoreName,
			TotalSpent: float64(st.TotalSpent) / 100,
			OrderCount: st.OrderCount,
		}
	}
	for i, d := range dailySales {
		stats.DailySales[i] = DailySales{
			Date:    d.Date.Format("2006-01-02"),
			Revenue: float64(d.Revenue) / 100,
			Orders:  d.Orders,
		}
	}

	return stats, nil
}
