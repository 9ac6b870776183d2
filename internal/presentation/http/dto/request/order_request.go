package request

import (
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
)

// AddressRequest is a flat address payload
type AddressRequest struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

// OrderItemRequest is one requested order line
type OrderItemRequest struct {
	ProductID   uuid.UUID        `json:"product_id" binding:"required"`
	Quantity    int              `json:"quantity" binding:"required,min=1"`
	PricingType enum.PricingType `json:"pricing_type"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	StoreID         uuid.UUID          `json:"store_id" binding:"required"`
	OrderDate       *time.Time         `json:"order_date"`
	BillingAddress  AddressRequest     `json:"billing_address" binding:"required"`
	ShippingAddress AddressRequest     `json:"shipping_address" binding:"required"`
	PalletCharge    float64            `json:"pallet_charge" binding:"min=0"`
	Notes           *string            `json:"notes"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ItemOpRequest is one line-item edit
type ItemOpRequest struct {
	Op          string           `json:"op" binding:"required,oneof=add update_qty set_qty remove"`
	ProductID   uuid.UUID        `json:"product_id"`
	Quantity    int              `json:"quantity"`
	PricingType enum.PricingType `json:"pricing_type"`
	Index       int              `json:"index"`
	Delta       int              `json:"delta"`
	Value       string           `json:"value"`
}

// UpdateOrderItemsRequest represents a batch of line-item edits
type UpdateOrderItemsRequest struct {
	Ops []ItemOpRequest `json:"ops" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status enum.OrderStatus `json:"status"`
}

// QuickAddRequest represents a quick-add code to resolve
type QuickAddRequest struct {
	Code string `json:"code" binding:"required"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search    string `form:"search"`
	Status    *int   `form:"status"`
	StoreID   string `form:"store_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// CreatePreOrderRequest represents a pre-order creation request
type CreatePreOrderRequest struct {
	StoreID         uuid.UUID          `json:"store_id" binding:"required"`
	PriceListID     *uuid.UUID         `json:"price_list_id"`
	BillingAddress  AddressRequest     `json:"billing_address" binding:"required"`
	ShippingAddress AddressRequest     `json:"shipping_address" binding:"required"`
	Notes           *string            `json:"notes"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PreOrderFilterRequest represents pre-order filter parameters
type PreOrderFilterRequest struct {
	Search    string `form:"search"`
	Status    *int   `form:"status"`
	StoreID   string `form:"store_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
