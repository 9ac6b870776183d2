package service

import (
	"context"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/apperror"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// VendorService handles vendor and vendor invoice management
type VendorService struct {
	vendorRepo  repository.VendorRepository
	invoiceRepo repository.VendorInvoiceRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, invoiceRepo repository.VendorInvoiceRepository) *VendorService {
	return &VendorService{
		vendorRepo:  vendorRepo,
		invoiceRepo: invoiceRepo,
	}
}

// VendorInput represents the create/update vendor input
type VendorInput struct {
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, input *VendorInput) (*entity.Vendor, error) {
	existing, err := s.vendorRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Vendor with this name already exists")
	}

	vendor := &entity.Vendor{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// UpdateVendor updates a vendor
func (s *VendorService) UpdateVendor(ctx context.Context, id uuid.UUID, input *VendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if input.Name != vendor.Name {
		existing, err := s.vendorRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflictError("Vendor with this name already exists")
		}
	}

	vendor.Name = input.Name
	vendor.ContactPerson = input.ContactPerson
	vendor.Email = input.Email
	vendor.Phone = input.Phone
	vendor.Address = input.Address

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}
	return s.vendorRepo.Delete(ctx, id)
}

// ListVendors lists vendors with pagination and search
func (s *VendorService) ListVendors(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Vendor], error) {
	vendors, total, err := s.vendorRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}

// VendorInvoiceInput represents the create/update invoice input
type VendorInvoiceInput struct {
	PurchaseOrderID *uuid.UUID
	InvoiceNo       string
	InvoiceDate     time.Time
	Amount          float64
	Paid            bool
	ImageURL        *string
}

// CreateInvoice records a vendor invoice
func (s *VendorService) CreateInvoice(ctx context.Context, vendorID uuid.UUID, input *VendorInvoiceInput) (*entity.VendorInvoice, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	invoice := &entity.VendorInvoice{
		VendorID:        vendorID,
		PurchaseOrderID: input.PurchaseOrderID,
		InvoiceNo:       input.InvoiceNo,
		InvoiceDate:     input.InvoiceDate,
		Amount:          toCents(input.Amount),
		Paid:            input.Paid,
		ImageURL:        input.ImageURL,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdateInvoice updates a vendor invoice
func (s *VendorService) UpdateInvoice(ctx context.Context, invoiceID uuid.UUID, input *VendorInvoiceInput) (*entity.VendorInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	invoice.PurchaseOrderID = input.PurchaseOrderID
	invoice.InvoiceNo = input.InvoiceNo
	invoice.InvoiceDate = input.InvoiceDate
	invoice.Amount = toCents(input.Amount)
	invoice.Paid = input.Paid
	if input.ImageURL != nil {
		invoice.ImageURL = input.ImageURL
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// MarkInvoicePaid marks a vendor invoice as paid
func (s *VendorService) MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	if invoice.Paid {
		return apperror.NewBadRequestError("Invoice is already paid")
	}

	invoice.Paid = true
	return s.invoiceRepo.Update(ctx, invoice)
}

// DeleteInvoice deletes a vendor invoice
func (s *VendorService) DeleteInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.Delete(ctx, invoiceID)
}

// VendorInvoiceSummary pairs a vendor's invoices with the unpaid total
type VendorInvoiceSummary struct {
	Invoices    *pagination.PaginatedResult[entity.VendorInvoice] `json:"invoices"`
	Outstanding float64                                           `json:"outstanding"`
}

// ListInvoices lists a vendor's invoices with the outstanding balance
func (s *VendorService) ListInvoices(ctx context.Context, vendorID uuid.UUID, params *pagination.PaginationParams) (*VendorInvoiceSummary, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	invoices, total, err := s.invoiceRepo.ListByVendor(ctx, vendorID, params)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.invoiceRepo.OutstandingTotal(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return &VendorInvoiceSummary{
		Invoices:    pagination.NewPaginatedResult(invoices, pag),
		Outstanding: float64(outstanding) / 100,
	}, nil
}
