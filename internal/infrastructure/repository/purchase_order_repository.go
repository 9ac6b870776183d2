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

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).First(&po, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &po, err
}

func (r *purchaseOrderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Items").
		First(&po, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &po, err
}

func (r *purchaseOrderRepository) GetByPONumber(ctx context.Context, poNumber string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).First(&po, "po_number = ?", poNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &po, err
}

func (r *purchaseOrderRepository) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Save(po).Error
}

func (r *purchaseOrderRepository) UpdateItem(ctx context.Context, item *entity.PurchaseOrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", id).Delete(&entity.PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.PurchaseOrder{}, "id = ?", id).Error
	})
}

func (r *purchaseOrderRepository) List(ctx context.Context, params *domainRepo.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var pos []entity.PurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{})

	if params.Search != "" {
		query = query.Joins("JOIN vendors ON vendors.id = purchase_orders.vendor_id").
			Where("purchase_orders.po_number ILIKE ? OR vendors.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("purchase_orders.status = ?", *params.Status)
	}

	if params.PaymentStatus != nil {
		query = query.Where("purchase_orders.payment_status = ?", *params.PaymentStatus)
	}

	if params.VendorID != nil {
		query = query.Where("purchase_orders.vendor_id = ?", *params.VendorID)
	}

	if params.StartDate != nil {
		query = query.Where("purchase_orders.order_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("purchase_orders.order_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "purchase_orders.created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = "purchase_orders." + params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Vendor").
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Find(&pos).Error

	return pos, total, err
}

func (r *purchaseOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseOrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *purchaseOrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.PurchaseOrder{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}
