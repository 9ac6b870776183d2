package request

import (
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
)

// ProductRequest represents a product create/update request. Prices are
// decimal amounts.
type ProductRequest struct {
	Name            string         `json:"name" binding:"required,min=1,max=255"`
	ShortCode       string         `json:"short_code" binding:"omitempty,max=10"`
	CategoryID      *uuid.UUID     `json:"category_id"`
	Price           float64        `json:"price" binding:"min=0"`
	PricePerBox     float64        `json:"price_per_box" binding:"min=0"`
	APrice          float64        `json:"a_price" binding:"min=0"`
	BPrice          float64        `json:"b_price" binding:"min=0"`
	CPrice          float64        `json:"c_price" binding:"min=0"`
	RestaurantPrice float64        `json:"restaurant_price" binding:"min=0"`
	SalesMode       enum.SalesMode `json:"sales_mode"`
	ShippingCost    float64        `json:"shipping_cost" binding:"min=0"`
	Quantity        int            `json:"quantity" binding:"min=0"`
	QuantityAlert   int            `json:"quantity_alert" binding:"min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Limit      int    `form:"limit"` // For cursor-based pagination
}

// CategoryRequest represents a category create/update request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
