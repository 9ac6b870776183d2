package entity

import (
	"encoding/json"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents a customer store (retail client of the distributor)
type Store struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name          string             `gorm:"size:255;not null" json:"name"`
	OwnerName     *string            `gorm:"size:255" json:"owner_name,omitempty"`
	Email         *string            `gorm:"size:255" json:"email,omitempty"`
	Phone         *string            `gorm:"size:50" json:"phone,omitempty"`
	City          *string            `gorm:"size:100" json:"city,omitempty"`
	Address       *string            `gorm:"type:text" json:"address,omitempty"`
	PriceCategory enum.PriceCategory `gorm:"default:0" json:"price_category"`
	ShippingCost  int64              `gorm:"default:0" json:"-"` // Per-delivery shipping in cents
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Orders    []Order    `gorm:"foreignKey:StoreID" json:"-"`
	PreOrders []PreOrder `gorm:"foreignKey:StoreID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Store) MarshalJSON() ([]byte, error) {
	type Alias Store
	return json.Marshal(&struct {
		Alias
		ShippingCost float64 `json:"shipping_cost"`
	}{
		Alias:        Alias(s),
		ShippingCost: float64(s.ShippingCost) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}
