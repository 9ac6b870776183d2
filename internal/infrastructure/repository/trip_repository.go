package repository

import (
	"context"
	"errors"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	domainRepo "github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) domainRepo.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *driverRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	var driver entity.Driver
	err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &driver, err
}

func (r *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Driver{}, "id = ?", id).Error
}

func (r *driverRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Driver, int64, error) {
	var drivers []entity.Driver
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Driver{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&drivers).Error

	return drivers, total, err
}

func (r *driverRepository) ListActive(ctx context.Context) ([]entity.Driver, error) {
	var drivers []entity.Driver
	err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&drivers).Error
	return drivers, err
}

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) domainRepo.TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var trip entity.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &trip, err
}

func (r *tripRepository) GetWithStops(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var trip entity.Trip
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_stops.sequence ASC")
		}).
		Preload("Stops.Store").
		First(&trip, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &trip, err
}

func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) ReplaceStops(ctx context.Context, tripID uuid.UUID, stops []entity.TripStop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&entity.TripStop{}).Error; err != nil {
			return err
		}
		if len(stops) == 0 {
			return nil
		}
		for i := range stops {
			stops[i].TripID = tripID
			stops[i].Sequence = i + 1
		}
		return tx.Create(&stops).Error
	})
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", id).Delete(&entity.TripStop{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Trip{}, "id = ?", id).Error
	})
}

func (r *tripRepository) List(ctx context.Context, params *domainRepo.TripFilterParams) ([]entity.Trip, int64, error) {
	var trips []entity.Trip
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Trip{})

	if params.DriverID != nil {
		query = query.Where("driver_id = ?", *params.DriverID)
	}

	if params.StartDate != nil {
		query = query.Where("trip_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("trip_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Driver").
		Order("trip_date DESC").
		Find(&trips).Error

	return trips, total, err
}
