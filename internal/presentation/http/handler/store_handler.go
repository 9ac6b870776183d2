package handler

import (
	"strconv"

	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/request"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/response"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoreHandler handles store-related HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
	orderService *service.OrderService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService, orderService *service.OrderService) *StoreHandler {
	return &StoreHandler{storeService: storeService, orderService: orderService}
}

// List handles listing stores
func (h *StoreHandler) List(c *gin.Context) {
	var filter request.StoreFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	result, err := h.storeService.ListStores(c.Request.Context(), params, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stores retrieved successfully", result)
}

// ListAll handles listing every store without pagination, for pickers
func (h *StoreHandler) ListAll(c *gin.Context) {
	stores, err := h.storeService.ListAllStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stores retrieved successfully", stores)
}

// Create handles creating a store
func (h *StoreHandler) Create(c *gin.Context) {
	var req request.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), storeInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store created successfully", store)
}

func storeInput(req *request.StoreRequest) *service.StoreInput {
	return &service.StoreInput{
		Name:          req.Name,
		OwnerName:     req.OwnerName,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		Address:       req.Address,
		PriceCategory: req.PriceCategory,
		ShippingCost:  req.ShippingCost,
	}
}

// Get handles getting a single store
func (h *StoreHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store retrieved successfully", store)
}

// Update handles updating a store
func (h *StoreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	var req request.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), id, storeInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store updated successfully", store)
}

// Delete handles deleting a store
func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LatestOrders handles fetching a store's most recent orders
func (h *StoreHandler) LatestOrders(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	limit := 5
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	orders, err := h.orderService.GetLatestByStore(c.Request.Context(), id, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Latest orders retrieved successfully", orders)
}
