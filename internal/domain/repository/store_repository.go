package repository

import (
	"context"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// StoreRepository defines the interface for store data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	GetByName(ctx context.Context, name string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Store, int64, error)
	// ListAll returns every store ordered by name, for pickers and trip planning
	ListAll(ctx context.Context) ([]entity.Store, error)
}
