package repository

import (
	"context"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	// GetWithDetails loads the order with its store and items preloaded
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetManyWithDetails loads a set of orders with stores and items, for
	// purchase-order aggregation.
	GetManyWithDetails(ctx context.Context, ids []uuid.UUID) ([]entity.Order, error)
	// ListByDateRange loads orders in [start, end] with stores and items,
	// cancelled orders excluded.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// ReplaceItems swaps the order's line items inside one transaction
	ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	// GetLatestByStore returns the store's most recent orders, newest first
	GetLatestByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	StoreID    *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
