package repository

import (
	"context"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// PriceListRepository defines the interface for price list data operations
type PriceListRepository interface {
	Create(ctx context.Context, priceList *entity.PriceList) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PriceList, error)
	// GetWithItems loads the price list with its per-product overrides
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PriceList, error)
	Update(ctx context.Context, priceList *entity.PriceList) error
	// ReplaceItems swaps the list's overrides inside one transaction
	ReplaceItems(ctx context.Context, priceListID uuid.UUID, items []entity.PriceListItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.PriceList, int64, error)
}
