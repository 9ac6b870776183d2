package repository

import (
	"context"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	// GetWithDetails loads the purchase order with its vendor and items
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetByPONumber(ctx context.Context, poNumber string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	UpdateItem(ctx context.Context, item *entity.PurchaseOrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseOrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
}

// PurchaseOrderFilterParams contains filtering parameters for purchase order queries
type PurchaseOrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Status        *enum.PurchaseOrderStatus
	PaymentStatus *enum.PaymentStatus
	VendorID      *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
