package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a supplier the distributor purchases from
type Vendor struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	ContactPerson *string        `gorm:"size:255" json:"contact_person,omitempty"`
	Email         *string        `gorm:"size:255" json:"email,omitempty"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:VendorID" json:"-"`
	Invoices       []VendorInvoice `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}

// VendorInvoice records an invoice received from a vendor
type VendorInvoice struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VendorID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"vendor_id"`
	PurchaseOrderID *uuid.UUID     `gorm:"type:uuid;index" json:"purchase_order_id,omitempty"`
	InvoiceNo       string         `gorm:"size:100;not null" json:"invoice_no"`
	InvoiceDate     time.Time      `gorm:"type:date;not null" json:"invoice_date"`
	Amount          int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Paid            bool           `gorm:"default:false" json:"paid"`
	ImageURL        *string        `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i VendorInvoice) MarshalJSON() ([]byte, error) {
	type Alias VendorInvoice
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(i),
		Amount: float64(i.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new vendor invoice
func (i *VendorInvoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VendorInvoice model
func (VendorInvoice) TableName() string {
	return "vendor_invoices"
}
