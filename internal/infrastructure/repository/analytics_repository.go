package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	domainRepo "github.com/distroflow/distribution-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.short_code as short_code,
			COALESCE(SUM(oi.quantity) FILTER (WHERE oi.pricing_type = 0), 0) as boxes_sold,
			COALESCE(SUM(oi.quantity) FILTER (WHERE oi.pricing_type = 1), 0) as units_sold,
			COALESCE(SUM(oi.total), 0) as revenue
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ?
		GROUP BY p.id, p.name, p.short_code
		ORDER BY revenue DESC
		LIMIT ?
	`, enum.OrderStatusDelivered, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetTopStores(ctx context.Context, limit int) ([]domainRepo.TopStoreResult, error) {
	var results []domainRepo.TopStoreResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id as store_id,
			s.name as store_name,
			COALESCE(SUM(o.total), 0) as total_spent,
			COUNT(o.id) as order_count
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.status = ?
		GROUP BY s.id, s.name
		ORDER BY total_spent DESC
		LIMIT ?
	`, enum.OrderStatusDelivered, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue sql.NullInt64
			Orders  int
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0) as revenue, COUNT(id) as orders
			FROM orders
			WHERE status = ?
			AND order_date >= ? AND order_date < ?
		`, enum.OrderStatusDelivered, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:    startOfDay,
			Revenue: row.Revenue.Int64,
			Orders:  row.Orders,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ?
	`, enum.OrderStatusDelivered).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context) (int64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ? AND order_date >= ?
	`, enum.OrderStatusDelivered, startOfMonth).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status enum.OrderStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(id) as count
		FROM orders
		WHERE deleted_at IS NULL
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status.String()] = row.Count
	}
	return counts, nil
}

func (r *analyticsRepository) CountPendingPreOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(id)
		FROM pre_orders
		WHERE status = ? AND deleted_at IS NULL
	`, enum.PreOrderStatusPending).Scan(&count).Error
	return count, err
}
