package repository

import (
	"context"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetByName(ctx context.Context, name string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error)
}

// VendorInvoiceRepository defines the interface for vendor invoice data operations
type VendorInvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.VendorInvoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorInvoice, error)
	Update(ctx context.Context, invoice *entity.VendorInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByVendor(ctx context.Context, vendorID uuid.UUID, params *pagination.PaginationParams) ([]entity.VendorInvoice, int64, error)
	// OutstandingTotal sums the unpaid invoice amounts for one vendor, in cents
	OutstandingTotal(ctx context.Context, vendorID uuid.UUID) (int64, error)
}
