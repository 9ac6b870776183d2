package repository

import (
	"context"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// DriverRepository defines the interface for driver data operations
type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Driver, int64, error)
	ListActive(ctx context.Context) ([]entity.Driver, error)
}

// TripRepository defines the interface for trip data operations
type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	// GetWithStops loads the trip with its driver and ordered stops
	GetWithStops(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	// ReplaceStops swaps the trip's stops inside one transaction, preserving
	// the given sequence order.
	ReplaceStops(ctx context.Context, tripID uuid.UUID, stops []entity.TripStop) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TripFilterParams) ([]entity.Trip, int64, error)
}

// TripFilterParams contains filtering parameters for trip queries
type TripFilterParams struct {
	Pagination *pagination.PaginationParams
	DriverID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
