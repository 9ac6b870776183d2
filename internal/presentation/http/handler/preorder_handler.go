package handler

import (
	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/request"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/response"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PreOrderHandler handles pre-order HTTP requests
type PreOrderHandler struct {
	preOrderService *service.PreOrderService
}

// NewPreOrderHandler creates a new pre-order handler
func NewPreOrderHandler(preOrderService *service.PreOrderService) *PreOrderHandler {
	return &PreOrderHandler{preOrderService: preOrderService}
}

// Create handles creating a pre-order
func (h *PreOrderHandler) Create(c *gin.Context) {
	var req request.CreatePreOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	preOrder, err := h.preOrderService.CreatePreOrder(c.Request.Context(), &service.CreatePreOrderInput{
		StoreID:         req.StoreID,
		UserID:          *userID,
		PriceListID:     req.PriceListID,
		BillingAddress:  toAddress(req.BillingAddress),
		ShippingAddress: toAddress(req.ShippingAddress),
		Notes:           req.Notes,
		Items:           toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Pre-order created successfully", preOrder)
}

// List handles listing pre-orders
func (h *PreOrderHandler) List(c *gin.Context) {
	var filter request.PreOrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PreOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		StoreID:   parseUUIDQuery(filter.StoreID),
		StartDate: parseDateQuery(filter.StartDate),
		EndDate:   parseDateQuery(filter.EndDate),
	}
	if filter.Status != nil {
		status := enum.PreOrderStatus(*filter.Status)
		params.Status = &status
	}

	result, err := h.preOrderService.ListPreOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Pre-orders retrieved successfully", result)
}

// Get handles getting a single pre-order with its items
func (h *PreOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pre-order ID")
		return
	}

	preOrder, err := h.preOrderService.GetPreOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pre-order retrieved successfully", preOrder)
}

// UpdateItems applies a batch of line-item edits to a pending pre-order
func (h *PreOrderHandler) UpdateItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pre-order ID")
		return
	}

	var req request.UpdateOrderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	preOrder, err := h.preOrderService.UpdatePreOrderItems(c.Request.Context(), id, toItemOps(req.Ops))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pre-order items updated successfully", preOrder)
}

// Confirm converts a pending pre-order into an order
// @Summary Confirm pre-order
// @Description Converts a pending pre-order into an order, decrementing stock
// @Tags preorders
// @Produce json
// @Param id path string true "Pre-order ID"
// @Success 200 {object} response.APIResponse
// @Router /preorders/{id}/confirm [post]
func (h *PreOrderHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pre-order ID")
		return
	}

	order, err := h.preOrderService.ConfirmPreOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pre-order confirmed successfully", order)
}

// Cancel handles cancelling a pending pre-order
func (h *PreOrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pre-order ID")
		return
	}

	if err := h.preOrderService.CancelPreOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pre-order cancelled successfully", nil)
}

// Delete handles deleting a pre-order that was never confirmed
func (h *PreOrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pre-order ID")
		return
	}

	if err := h.preOrderService.DeletePreOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
