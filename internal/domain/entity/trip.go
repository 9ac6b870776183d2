package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is a delivery driver available for route planning
type Driver struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Vehicle   *string        `gorm:"size:100" json:"vehicle,omitempty"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Trips []Trip `gorm:"foreignKey:DriverID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new driver
func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Driver model
func (Driver) TableName() string {
	return "drivers"
}

// Trip is a planned delivery route for one driver on one day
type Trip struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DriverID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"driver_id"`
	TripDate  time.Time      `gorm:"type:date;not null" json:"trip_date"`
	Name      string         `gorm:"size:255" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Driver Driver     `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Stops  []TripStop `gorm:"foreignKey:TripID" json:"stops,omitempty"`
}

// BeforeCreate generates a UUID before creating a new trip
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Trip model
func (Trip) TableName() string {
	return "trips"
}

// TripStop is one delivery stop on a trip, ordered by Sequence
type TripStop struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TripID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"trip_id"`
	StoreID  *uuid.UUID `gorm:"type:uuid;index" json:"store_id,omitempty"`
	OrderID  *uuid.UUID `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Sequence int        `gorm:"not null" json:"sequence"`
	Lat      float64    `json:"lat"`
	Lng      float64    `json:"lng"`

	// Relationships
	Trip  Trip   `gorm:"foreignKey:TripID" json:"-"`
	Store *Store `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

// BeforeCreate generates a UUID before creating a new trip stop
func (s *TripStop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TripStop model
func (TripStop) TableName() string {
	return "trip_stops"
}
