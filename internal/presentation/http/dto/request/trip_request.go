package request

import (
	"time"

	"github.com/google/uuid"
)

// DriverRequest represents a driver create/update request
type DriverRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Phone   *string `json:"phone"`
	Vehicle *string `json:"vehicle"`
	Active  bool    `json:"active"`
}

// DriverFilterRequest represents driver filter parameters
type DriverFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// TripStopRequest is one requested delivery stop
type TripStopRequest struct {
	StoreID *uuid.UUID `json:"store_id"`
	OrderID *uuid.UUID `json:"order_id"`
	Lat     float64    `json:"lat" binding:"required"`
	Lng     float64    `json:"lng" binding:"required"`
}

// CreateTripRequest represents a trip creation request
type CreateTripRequest struct {
	DriverID uuid.UUID         `json:"driver_id" binding:"required"`
	TripDate *time.Time        `json:"trip_date"`
	Name     string            `json:"name"`
	Stops    []TripStopRequest `json:"stops" binding:"required,min=1,dive"`
	DepotLat float64           `json:"depot_lat"`
	DepotLng float64           `json:"depot_lng"`
	Optimize bool              `json:"optimize"`
}

// TripFilterRequest represents trip filter parameters
type TripFilterRequest struct {
	DriverID  string `form:"driver_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// DeliveryAreaRequest asks for drivable areas around a point
type DeliveryAreaRequest struct {
	Lat    float64   `json:"lat" binding:"required"`
	Lng    float64   `json:"lng" binding:"required"`
	Ranges []float64 `json:"ranges" binding:"required,min=1"`
}
