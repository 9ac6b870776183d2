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

type priceListRepository struct {
	db *gorm.DB
}

// NewPriceListRepository creates a new price list repository
func NewPriceListRepository(db *gorm.DB) domainRepo.PriceListRepository {
	return &priceListRepository{db: db}
}

func (r *priceListRepository) Create(ctx context.Context, priceList *entity.PriceList) error {
	return r.db.WithContext(ctx).Create(priceList).Error
}

func (r *priceListRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PriceList, error) {
	var priceList entity.PriceList
	err := r.db.WithContext(ctx).First(&priceList, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &priceList, err
}

func (r *priceListRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PriceList, error) {
	var priceList entity.PriceList
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&priceList, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &priceList, err
}

func (r *priceListRepository) Update(ctx context.Context, priceList *entity.PriceList) error {
	return r.db.WithContext(ctx).Save(priceList).Error
}

func (r *priceListRepository) ReplaceItems(ctx context.Context, priceListID uuid.UUID, items []entity.PriceListItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("price_list_id = ?", priceListID).Delete(&entity.PriceListItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].PriceListID = priceListID
		}
		return tx.Create(&items).Error
	})
}

func (r *priceListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("price_list_id = ?", id).Delete(&entity.PriceListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.PriceList{}, "id = ?", id).Error
	})
}

func (r *priceListRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.PriceList, int64, error) {
	var priceLists []entity.PriceList
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PriceList{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&priceLists).Error

	return priceLists, total, err
}
