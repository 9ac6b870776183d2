package handler

import (
	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/request"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/response"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PriceListHandler handles price list HTTP requests
type PriceListHandler struct {
	priceListService *service.PriceListService
}

// NewPriceListHandler creates a new price list handler
func NewPriceListHandler(priceListService *service.PriceListService) *PriceListHandler {
	return &PriceListHandler{priceListService: priceListService}
}

func priceListInput(req *request.PriceListRequest) *service.PriceListInput {
	items := make([]service.PriceListItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PriceListItemInput{
			ProductID: item.ProductID,
			BoxPrice:  item.BoxPrice,
		})
	}
	return &service.PriceListInput{
		Name:   req.Name,
		Active: req.Active,
		Items:  items,
	}
}

// List handles listing price lists
func (h *PriceListHandler) List(c *gin.Context) {
	var filter request.PriceListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	result, err := h.priceListService.ListPriceLists(c.Request.Context(), params, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Price lists retrieved successfully", result)
}

// Create handles creating a price list
func (h *PriceListHandler) Create(c *gin.Context) {
	var req request.PriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	priceList, err := h.priceListService.CreatePriceList(c.Request.Context(), priceListInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Price list created successfully", priceList)
}

// Get handles getting a price list with its items
func (h *PriceListHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price list ID")
		return
	}

	priceList, err := h.priceListService.GetPriceList(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price list retrieved successfully", priceList)
}

// Update handles updating a price list and replacing its items
func (h *PriceListHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price list ID")
		return
	}

	var req request.PriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	priceList, err := h.priceListService.UpdatePriceList(c.Request.Context(), id, priceListInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price list updated successfully", priceList)
}

// Delete handles deleting a price list
func (h *PriceListHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price list ID")
		return
	}

	if err := h.priceListService.DeletePriceList(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
