package handler

import (
	"time"

	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/request"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/response"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	productService *service.ProductService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, productService *service.ProductService) *OrderHandler {
	return &OrderHandler{orderService: orderService, productService: productService}
}

func toAddress(req request.AddressRequest) entity.Address {
	return entity.Address{
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
	}
}

func toItemInputs(items []request.OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.OrderItemInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PricingType: item.PricingType,
		})
	}
	return inputs
}

func toItemOps(ops []request.ItemOpRequest) []service.ItemOpInput {
	inputs := make([]service.ItemOpInput, 0, len(ops))
	for _, op := range ops {
		inputs = append(inputs, service.ItemOpInput{
			Op:          op.Op,
			ProductID:   op.ProductID,
			Quantity:    op.Quantity,
			PricingType: op.PricingType,
			Index:       op.Index,
			Delta:       op.Delta,
			Value:       op.Value,
		})
	}
	return inputs
}

// Create handles creating an order
// @Summary Create order
// @Description Creates an order, prices its lines by the store's tier and decrements stock
// @Tags orders
// @Accept json
// @Produce json
// @Param request body request.CreateOrderRequest true "Order payload"
// @Success 201 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
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

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		StoreID:         req.StoreID,
		UserID:          *userID,
		OrderDate:       orderDate,
		BillingAddress:  toAddress(req.BillingAddress),
		ShippingAddress: toAddress(req.ShippingAddress),
		PalletCharge:    req.PalletCharge,
		Notes:           req.Notes,
		Items:           toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		StoreID:   parseUUIDQuery(filter.StoreID),
		StartDate: parseDateQuery(filter.StartDate),
		EndDate:   parseDateQuery(filter.EndDate),
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	if filter.Status != nil {
		status := enum.OrderStatus(*filter.Status)
		params.Status = &status
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// GetPallets handles the pallet breakdown for an order
func (h *OrderHandler) GetPallets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	summary, err := h.orderService.GetOrderPallets(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pallet summary retrieved successfully", summary)
}

// UpdateItems applies a batch of line-item edits to an order
func (h *OrderHandler) UpdateItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderItems(c.Request.Context(), id, toItemOps(req.Ops))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order items updated successfully", order)
}

// UpdateStatus handles an order status change
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", nil)
}

// Cancel handles cancelling an order and restocking its lines
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", nil)
}

// ResolveQuickAdd resolves a quick-add code like "03x2" into a product and quantity
func (h *OrderHandler) ResolveQuickAdd(c *gin.Context) {
	var req request.QuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.orderService.ResolveQuickAdd(c.Request.Context(), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.BadRequest(c, "Input is not a quick-add code")
		return
	}

	response.OK(c, "Quick-add code resolved", result)
}

// RecentProducts returns the products the caller most recently added to orders
func (h *OrderHandler) RecentProducts(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	ids := h.orderService.RecentProductIDs(*userID)
	if len(ids) == 0 {
		response.OK(c, "Recent products retrieved successfully", []entity.Product{})
		return
	}

	products, err := h.productService.GetProductsByIDs(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Preserve recency order, the repository returns rows in arbitrary order
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = products[i]
	}
	ordered := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	response.OK(c, "Recent products retrieved successfully", ordered)
}
