package repository

import (
	"context"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// PreOrderRepository defines the interface for pre-order data operations
type PreOrderRepository interface {
	Create(ctx context.Context, preOrder *entity.PreOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error)
	// GetWithDetails loads the pre-order with its store, price list and items
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error)
	Update(ctx context.Context, preOrder *entity.PreOrder) error
	// ReplaceItems swaps the pre-order's line items inside one transaction
	ReplaceItems(ctx context.Context, preOrderID uuid.UUID, items []entity.PreOrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PreOrderFilterParams) ([]entity.PreOrder, int64, error)
	// Convert marks the pre-order confirmed and creates the order in one
	// transaction so a crash cannot leave a confirmed pre-order without its
	// order.
	Convert(ctx context.Context, preOrder *entity.PreOrder, order *entity.Order) error
}

// PreOrderFilterParams contains filtering parameters for pre-order queries
type PreOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.PreOrderStatus
	StoreID    *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
