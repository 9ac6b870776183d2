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

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) domainRepo.VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vendor, err
}

func (r *vendorRepository) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vendor, err
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Vendor{}, "id = ?", id).Error
}

func (r *vendorRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error) {
	var vendors []entity.Vendor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Vendor{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&vendors).Error

	return vendors, total, err
}

type vendorInvoiceRepository struct {
	db *gorm.DB
}

// NewVendorInvoiceRepository creates a new vendor invoice repository
func NewVendorInvoiceRepository(db *gorm.DB) domainRepo.VendorInvoiceRepository {
	return &vendorInvoiceRepository{db: db}
}

func (r *vendorInvoiceRepository) Create(ctx context.Context, invoice *entity.VendorInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *vendorInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorInvoice, error) {
	var invoice entity.VendorInvoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *vendorInvoiceRepository) Update(ctx context.Context, invoice *entity.VendorInvoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *vendorInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.VendorInvoice{}, "id = ?", id).Error
}

func (r *vendorInvoiceRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, params *pagination.PaginationParams) ([]entity.VendorInvoice, int64, error) {
	var invoices []entity.VendorInvoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.VendorInvoice{}).
		Where("vendor_id = ?", vendorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("invoice_date DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *vendorInvoiceRepository) OutstandingTotal(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.VendorInvoice{}).
		Where("vendor_id = ? AND paid = false", vendorID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
