package handler

import (
	"time"

	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/ordering"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/request"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/response"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseOrderHandler handles purchase order HTTP requests
type PurchaseOrderHandler struct {
	poService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(poService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// Aggregate builds the product-by-store quantity matrix for a date range
// @Summary Aggregate orders
// @Description Builds the product-by-store quantity matrix over the given order date range
// @Tags purchase-orders
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /purchase-orders/aggregate [get]
func (h *PurchaseOrderHandler) Aggregate(c *gin.Context) {
	var req request.AggregationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.poService.BuildAggregation(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Aggregation built successfully", result)
}

// SaveMatrix writes edited matrix cells back to their source orders
func (h *PurchaseOrderHandler) SaveMatrix(c *gin.Context) {
	var req request.SaveMatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	edits := make([]ordering.CellEdit, 0, len(req.Edits))
	for _, e := range req.Edits {
		edits = append(edits, ordering.CellEdit{
			ProductID: e.ProductID,
			StoreID:   e.StoreID,
			BoxQty:    e.BoxQty,
			UnitQty:   e.UnitQty,
		})
	}

	result, err := h.poService.SaveMatrixEdits(c.Request.Context(), start, end, edits)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Matrix edits saved", result)
}

// Create builds a purchase order from aggregated orders in a date range
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	items := make([]service.POItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.POItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}

	po, err := h.poService.CreateFromOrders(c.Request.Context(), &service.CreatePurchaseOrderInput{
		VendorID:  req.VendorID,
		UserID:    *userID,
		OrderDate: orderDate,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Items:     items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", po)
}

// List handles listing purchase orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter request.PurchaseOrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PurchaseOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		VendorID:  parseUUIDQuery(filter.VendorID),
		StartDate: parseDateQuery(filter.StartDate),
		EndDate:   parseDateQuery(filter.EndDate),
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	if filter.Status != nil {
		status := enum.PurchaseOrderStatus(*filter.Status)
		params.Status = &status
	}
	if filter.PaymentStatus != nil {
		payment := enum.PaymentStatus(*filter.PaymentStatus)
		params.PaymentStatus = &payment
	}

	result, err := h.poService.ListPurchaseOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Get handles getting a single purchase order
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	po, err := h.poService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", po)
}

// UpdateItem updates one purchase order line's quantity and unit cost
func (h *PurchaseOrderHandler) UpdateItem(c *gin.Context) {
	poID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdatePOItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	po, err := h.poService.UpdatePurchaseOrderItem(c.Request.Context(), poID, itemID, req.Quantity, req.UnitCost)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order item updated successfully", po)
}

// QualityCheck records a quality check result on a purchase order
func (h *PurchaseOrderHandler) QualityCheck(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.QualityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.poService.UpdateQualityCheck(c.Request.Context(), id, req.Passed, req.Notes); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quality check recorded successfully", nil)
}

// UpdateStatus moves a purchase order through its lifecycle
func (h *PurchaseOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.UpdatePOStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.poService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order status updated successfully", nil)
}

// UpdatePaymentStatus records a payment status change
func (h *PurchaseOrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.UpdatePOPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.poService.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment status updated successfully", nil)
}

// Delete handles deleting a draft purchase order
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.poService.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
