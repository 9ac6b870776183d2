package entity

import (
	"encoding/json"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the distributor's catalog
type Product struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID      *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	ShortCode       string         `gorm:"size:10;unique;not null" json:"short_code"`
	Price           int64          `gorm:"default:0" json:"-"` // Per-unit price in cents
	PricePerBox     int64          `gorm:"default:0" json:"-"` // Default box price in cents
	APrice          int64          `gorm:"default:0" json:"-"` // Tier A box price in cents
	BPrice          int64          `gorm:"default:0" json:"-"` // Tier B box price in cents
	CPrice          int64          `gorm:"default:0" json:"-"` // Tier C box price in cents
	RestaurantPrice int64          `gorm:"default:0" json:"-"` // Restaurant tier box price in cents
	SalesMode       enum.SalesMode `gorm:"default:2" json:"sales_mode"`
	ShippingCost    int64          `gorm:"default:0" json:"-"` // Per-line shipping in cents
	Quantity        int            `gorm:"default:0" json:"quantity"`
	QuantityAlert   int            `gorm:"default:0" json:"quantity_alert"`
	ProductImage    *string        `gorm:"size:255" json:"product_image,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// BoxPriceForCategory returns the tiered box price for a price category, in cents.
// Zero means the tier is not priced for this product.
func (p *Product) BoxPriceForCategory(category enum.PriceCategory) int64 {
	switch category {
	case enum.PriceCategoryA:
		return p.APrice
	case enum.PriceCategoryB:
		return p.BPrice
	case enum.PriceCategoryC:
		return p.CPrice
	case enum.PriceCategoryRestaurant:
		return p.RestaurantPrice
	}
	return 0
}

// IsLowStock reports whether stock is at or below the alert threshold
func (p *Product) IsLowStock() bool {
	return p.QuantityAlert > 0 && p.Quantity <= p.QuantityAlert
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price           float64 `json:"price"`
		PricePerBox     float64 `json:"price_per_box"`
		APrice          float64 `json:"a_price"`
		BPrice          float64 `json:"b_price"`
		CPrice          float64 `json:"c_price"`
		RestaurantPrice float64 `json:"restaurant_price"`
		ShippingCost    float64 `json:"shipping_cost"`
	}{
		Alias:           Alias(p),
		Price:           float64(p.Price) / 100,
		PricePerBox:     float64(p.PricePerBox) / 100,
		APrice:          float64(p.APrice) / 100,
		BPrice:          float64(p.BPrice) / 100,
		CPrice:          float64(p.CPrice) / 100,
		RestaurantPrice: float64(p.RestaurantPrice) / 100,
		ShippingCost:    float64(p.ShippingCost) / 100,
	})
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
