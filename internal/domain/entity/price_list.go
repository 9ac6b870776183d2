package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceList is a fixed set of products with negotiated box prices. A pre-order
// linked to a price list sources its products from the list instead of search.
type PriceList struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []PriceListItem `gorm:"foreignKey:PriceListID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new price list
func (p *PriceList) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PriceList model
func (PriceList) TableName() string {
	return "price_lists"
}

// PriceListItem ties a product to a list with an optional box-price override
type PriceListItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PriceListID uuid.UUID `gorm:"type:uuid;not null;index" json:"price_list_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	BoxPrice    int64     `gorm:"default:0" json:"-"` // Stored in cents; 0 falls back to tier pricing
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	PriceList PriceList `gorm:"foreignKey:PriceListID" json:"-"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i PriceListItem) MarshalJSON() ([]byte, error) {
	type Alias PriceListItem
	return json.Marshal(&struct {
		Alias
		BoxPrice float64 `json:"box_price"`
	}{
		Alias:    Alias(i),
		BoxPrice: float64(i.BoxPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new price list item
func (i *PriceListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PriceListItem model
func (PriceListItem) TableName() string {
	return "price_list_items"
}
