package entity

import (
	"encoding/json"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a flat address record embedded into orders and pre-orders
type Address struct {
	Line1      string `gorm:"size:255" json:"line1"`
	Line2      string `gorm:"size:255" json:"line2,omitempty"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state,omitempty"`
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	Phone      string `gorm:"size:50" json:"phone,omitempty"`
}

// IsComplete reports whether the required address fields are filled
func (a Address) IsComplete() bool {
	return a.Line1 != "" && a.City != ""
}

// Order represents a confirmed store order
type Order struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	StoreID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"store_id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceNo       string           `gorm:"size:100;unique;not null" json:"invoice_no"`
	Status          enum.OrderStatus `gorm:"default:0" json:"status"`
	OrderDate       time.Time        `gorm:"type:date;not null" json:"order_date"`
	BillingAddress  Address          `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	ShippingAddress Address          `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	SubTotal        int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ShippingTotal   int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PalletCharge    int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total           int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TotalBoxes      int              `gorm:"default:0" json:"total_boxes"`
	Notes           *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Store Store       `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal      float64 `json:"sub_total"`
		ShippingTotal float64 `json:"shipping_total"`
		PalletCharge  float64 `json:"pallet_charge"`
		Total         float64 `json:"total"`
	}{
		Alias:         Alias(o),
		SubTotal:      float64(o.SubTotal) / 100,
		ShippingTotal: float64(o.ShippingTotal) / 100,
		PalletCharge:  float64(o.PalletCharge) / 100,
		Total:         float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item in an order.
// The pair (product_id, pricing_type) is unique within one order.
type OrderItem struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_order_product_pricing" json:"order_id"`
	ProductID    uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_order_product_pricing" json:"product_id"`
	PricingType  enum.PricingType `gorm:"default:0;uniqueIndex:idx_order_product_pricing" json:"pricing_type"`
	ProductName  string           `gorm:"size:255;not null" json:"product_name"` // Snapshot at add time
	ShortCode    string           `gorm:"size:10" json:"short_code"`
	Quantity     int              `gorm:"not null" json:"quantity"`
	UnitPrice    int64            `gorm:"not null" json:"-"`  // Stored in cents, snapshot at add time
	ShippingCost int64            `gorm:"default:0" json:"-"` // Stored in cents
	Total        int64            `gorm:"not null" json:"-"`  // Stored in cents
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice    float64 `json:"unit_price"`
		ShippingCost float64 `json:"shipping_cost"`
		Total        float64 `json:"total"`
	}{
		Alias:        Alias(i),
		UnitPrice:    float64(i.UnitPrice) / 100,
		ShippingCost: float64(i.ShippingCost) / 100,
		Total:        float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
