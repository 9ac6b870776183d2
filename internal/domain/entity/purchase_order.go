package entity

import (
	"encoding/json"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseOrder is an order placed with a vendor, typically rolled up from
// many store orders over a period.
type PurchaseOrder struct {
	ID            uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	VendorID      uuid.UUID                `gorm:"type:uuid;not null;index" json:"vendor_id"`
	UserID        uuid.UUID                `gorm:"type:uuid;not null;index" json:"user_id"`
	PONumber      string                   `gorm:"size:100;unique;not null" json:"po_number"`
	Status        enum.PurchaseOrderStatus `gorm:"default:0" json:"status"`
	PaymentStatus enum.PaymentStatus       `gorm:"default:0" json:"payment_status"`
	OrderDate     time.Time                `gorm:"type:date;not null" json:"order_date"`
	Total         int64                    `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	QualityPassed *bool                    `json:"quality_passed,omitempty"`
	QualityNotes  *string                  `gorm:"type:text" json:"quality_notes,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	DeletedAt     gorm.DeletedAt           `gorm:"index" json:"-"`

	// Relationships
	Vendor Vendor              `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Items  []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p PurchaseOrder) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrder
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(p),
		Total: float64(p.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// POContribution records which store order contributed how much of a PO line,
// kept for traceability when store orders are rolled up into one PO.
type POContribution struct {
	OrderID   uuid.UUID `json:"order_id"`
	StoreName string    `json:"store_name"`
	BoxQty    int       `json:"box_qty"`
	UnitQty   int       `json:"unit_qty"`
}

// PurchaseOrderItem is a per-product line on a vendor purchase order
type PurchaseOrderItem struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID        `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ProductID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName     string           `gorm:"size:255;not null" json:"product_name"`
	Quantity        int              `gorm:"not null" json:"quantity"` // Editable PO quantity
	UnitCost        int64            `gorm:"default:0" json:"-"`       // Stored in cents
	Total           int64            `gorm:"default:0" json:"-"`       // Stored in cents
	Contributions   []POContribution `gorm:"type:jsonb;serializer:json" json:"contributions,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	Product       Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i PurchaseOrderItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrderItem
	return json.Marshal(&struct {
		Alias
		UnitCost float64 `json:"unit_cost"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(i),
		UnitCost: float64(i.UnitCost) / 100,
		Total:    float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase order item
func (i *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
