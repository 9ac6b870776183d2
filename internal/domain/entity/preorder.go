package entity

import (
	"encoding/json"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreOrder is a draft order awaiting confirmation. An optional price list
// reference fixes the product source to the list's products.
type PreOrder struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	StoreID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"store_id"`
	UserID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	ReferenceNo      string              `gorm:"size:100;unique;not null" json:"reference_no"`
	Status           enum.PreOrderStatus `gorm:"default:0" json:"status"`
	PriceListID      *uuid.UUID          `gorm:"type:uuid;index" json:"price_list_id,omitempty"`
	ConvertedOrderID *uuid.UUID          `gorm:"type:uuid" json:"converted_order_id,omitempty"`
	BillingAddress   Address             `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	ShippingAddress  Address             `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	SubTotal         int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ShippingTotal    int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total            int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TotalBoxes       int                 `gorm:"default:0" json:"total_boxes"`
	Notes            *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Store     Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	PriceList *PriceList     `gorm:"foreignKey:PriceListID" json:"price_list,omitempty"`
	Items     []PreOrderItem `gorm:"foreignKey:PreOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p PreOrder) MarshalJSON() ([]byte, error) {
	type Alias PreOrder
	return json.Marshal(&struct {
		Alias
		SubTotal      float64 `json:"sub_total"`
		ShippingTotal float64 `json:"shipping_total"`
		Total         float64 `json:"total"`
	}{
		Alias:         Alias(p),
		SubTotal:      float64(p.SubTotal) / 100,
		ShippingTotal: float64(p.ShippingTotal) / 100,
		Total:         float64(p.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new pre-order
func (p *PreOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PreOrder model
func (PreOrder) TableName() string {
	return "pre_orders"
}

// PreOrderItem represents a line item in a pre-order
type PreOrderItem struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	PreOrderID   uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_preorder_product_pricing" json:"pre_order_id"`
	ProductID    uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_preorder_product_pricing" json:"product_id"`
	PricingType  enum.PricingType `gorm:"default:0;uniqueIndex:idx_preorder_product_pricing" json:"pricing_type"`
	ProductName  string           `gorm:"size:255;not null" json:"product_name"`
	ShortCode    string           `gorm:"size:10" json:"short_code"`
	Quantity     int              `gorm:"not null" json:"quantity"`
	UnitPrice    int64            `gorm:"not null" json:"-"`  // Stored in cents, snapshot at add time
	ShippingCost int64            `gorm:"default:0" json:"-"` // Stored in cents
	Total        int64            `gorm:"not null" json:"-"`  // Stored in cents
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Relationships
	PreOrder PreOrder `gorm:"foreignKey:PreOrderID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i PreOrderItem) MarshalJSON() ([]byte, error) {
	type Alias PreOrderItem
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

// BeforeCreate generates a UUID before creating a new pre-order item
func (i *PreOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PreOrderItem model
func (PreOrderItem) TableName() string {
	return "pre_order_items"
}
