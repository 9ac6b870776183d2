package request

import "github.com/distroflow/distribution-api/internal/domain/enum"

// StoreRequest represents a store create/update request
type StoreRequest struct {
	Name          string             `json:"name" binding:"required,min=1,max=255"`
	OwnerName     *string            `json:"owner_name"`
	Email         *string            `json:"email" binding:"omitempty,email"`
	Phone         *string            `json:"phone"`
	City          *string            `json:"city"`
	Address       *string            `json:"address"`
	PriceCategory enum.PriceCategory `json:"price_category"`
	ShippingCost  float64            `json:"shipping_cost" binding:"min=0"`
}

// StoreFilterRequest represents store filter parameters
type StoreFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
