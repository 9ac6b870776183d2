package request

import (
	"time"

	"github.com/google/uuid"
)

// VendorRequest represents a vendor create/update request
type VendorRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

// VendorFilterRequest represents vendor filter parameters
type VendorFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// VendorInvoiceRequest represents a vendor invoice create/update request
type VendorInvoiceRequest struct {
	PurchaseOrderID *uuid.UUID `json:"purchase_order_id"`
	InvoiceNo       string     `json:"invoice_no" binding:"required"`
	InvoiceDate     time.Time  `json:"invoice_date" binding:"required"`
	Amount          float64    `json:"amount" binding:"min=0"`
	Paid            bool       `json:"paid"`
	ImageURL        *string    `json:"image_url"`
}

// PriceListItemRequest ties a product to a price list
type PriceListItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	BoxPrice  float64   `json:"box_price" binding:"min=0"`
}

// PriceListFilterRequest represents price list filter parameters
type PriceListFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// PriceListRequest represents a price list create/update request
type PriceListRequest struct {
	Name   string                 `json:"name" binding:"required,min=1,max=255"`
	Active bool                   `json:"active"`
	Items  []PriceListItemRequest `json:"items" binding:"dive"`
}
