package repository

import (
	"context"
	"errors"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	domainRepo "github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type preOrderRepository struct {
	db *gorm.DB
}

// NewPreOrderRepository creates a new pre-order repository
func NewPreOrderRepository(db *gorm.DB) domainRepo.PreOrderRepository {
	return &preOrderRepository{db: db}
}

func (r *preOrderRepository) Create(ctx context.Context, preOrder *entity.PreOrder) error {
	return r.db.WithContext(ctx).Create(preOrder).Error
}

func (r *preOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	var preOrder entity.PreOrder
	err := r.db.WithContext(ctx).First(&preOrder, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &preOrder, err
}

func (r *preOrderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	var preOrder entity.PreOrder
	err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("PriceList").
		Preload("Items").
		First(&preOrder, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &preOrder, err
}

func (r *preOrderRepository) Update(ctx context.Context, preOrder *entity.PreOrder) error {
	return r.db.WithContext(ctx).Save(preOrder).Error
}

func (r *preOrderRepository) ReplaceItems(ctx context.Context, preOrderID uuid.UUID, items []entity.PreOrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pre_order_id = ?", preOrderID).Delete(&entity.PreOrderItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].PreOrderID = preOrderID
		}
		return tx.Create(&items).Error
	})
}

func (r *preOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pre_order_id = ?", id).Delete(&entity.PreOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.PreOrder{}, "id = ?", id).Error
	})
}

func (r *preOrderRepository) List(ctx context.Context, params *domainRepo.PreOrderFilterParams) ([]entity.PreOrder, int64, error) {
	var preOrders []entity.PreOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PreOrder{})

	if params.Search != "" {
		query = query.Joins("JOIN stores ON stores.id = pre_orders.store_id").
			Where("pre_orders.reference_no ILIKE ? OR stores.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("pre_orders.status = ?", *params.Status)
	}

	if params.StoreID != nil {
		query = query.Where("pre_orders.store_id = ?", *params.StoreID)
	}

	if params.StartDate != nil {
		query = query.Where("pre_orders.created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("pre_orders.created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Store").
		Preload("Items").
		Order("pre_orders.created_at DESC").
		Find(&preOrders).Error

	return preOrders, total, err
}

// Convert creates the order and confirms the pre-order in one transaction.
// The pre-order keeps a pointer to the created order for traceability.
func (r *preOrderRepository) Convert(ctx context.Context, preOrder *entity.PreOrder, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		return tx.Model(&entity.PreOrder{}).
			Where("id = ?", preOrder.ID).
			Updates(map[string]interface{}{
				"status":             enum.PreOrderStatusConfirmed,
				"converted_order_id": order.ID,
			}).Error
	})
}
