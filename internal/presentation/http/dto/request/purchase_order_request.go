package request

import (
	"time"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
)

// POItemRequest is one editable line override when creating a purchase order
type POItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
	UnitCost  float64   `json:"unit_cost" binding:"min=0"`
}

// CreatePurchaseOrderRequest creates a PO from aggregated store orders
type CreatePurchaseOrderRequest struct {
	VendorID  uuid.UUID       `json:"vendor_id" binding:"required"`
	OrderDate *time.Time      `json:"order_date"`
	StartDate time.Time       `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time       `json:"end_date" binding:"required" time_format:"2006-01-02"`
	Items     []POItemRequest `json:"items" binding:"dive"`
}

// UpdatePOItemRequest updates one purchase order line
type UpdatePOItemRequest struct {
	Quantity int     `json:"quantity" binding:"required,min=1"`
	UnitCost float64 `json:"unit_cost" binding:"min=0"`
}

// QualityCheckRequest records a quality check result
type QualityCheckRequest struct {
	Passed bool    `json:"passed"`
	Notes  *string `json:"notes"`
}

// UpdatePOStatusRequest changes a purchase order's status
type UpdatePOStatusRequest struct {
	Status enum.PurchaseOrderStatus `json:"status"`
}

// UpdatePOPaymentStatusRequest changes a purchase order's payment status
type UpdatePOPaymentStatusRequest struct {
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
}

// PurchaseOrderFilterRequest represents purchase order filter parameters
type PurchaseOrderFilterRequest struct {
	Search        string `form:"search"`
	Status        *int   `form:"status"`
	PaymentStatus *int   `form:"payment_status"`
	VendorID      string `form:"vendor_id"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// AggregationRequest selects the order date range to aggregate
type AggregationRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// CellEditRequest is one edited matrix cell
type CellEditRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	StoreID   uuid.UUID `json:"store_id" binding:"required"`
	BoxQty    int       `json:"box_qty" binding:"min=0"`
	UnitQty   int       `json:"unit_qty" binding:"min=0"`
}

// SaveMatrixRequest writes edited matrix cells back to their source orders
type SaveMatrixRequest struct {
	StartDate string            `json:"start_date" binding:"required"`
	EndDate   string            `json:"end_date" binding:"required"`
	Edits     []CellEditRequest `json:"edits" binding:"required,min=1,dive"`
}
