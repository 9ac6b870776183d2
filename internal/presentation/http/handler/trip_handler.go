package handler

import (
	"time"

	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/request"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/response"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TripHandler handles driver and delivery trip HTTP requests
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

func driverInput(req *request.DriverRequest) *service.DriverInput {
	return &service.DriverInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Vehicle: req.Vehicle,
		Active:  req.Active,
	}
}

// ListDrivers handles listing drivers
func (h *TripHandler) ListDrivers(c *gin.Context) {
	if c.Query("active") == "true" {
		drivers, err := h.tripService.ListActiveDrivers(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Drivers retrieved successfully", drivers)
		return
	}

	var filter request.DriverFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	result, err := h.tripService.ListDrivers(c.Request.Context(), params, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Drivers retrieved successfully", result)
}

// CreateDriver handles creating a driver
func (h *TripHandler) CreateDriver(c *gin.Context) {
	var req request.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	driver, err := h.tripService.CreateDriver(c.Request.Context(), driverInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Driver created successfully", driver)
}

// UpdateDriver handles updating a driver
func (h *TripHandler) UpdateDriver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid driver ID")
		return
	}

	var req request.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	driver, err := h.tripService.UpdateDriver(c.Request.Context(), id, driverInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Driver updated successfully", driver)
}

// DeleteDriver handles deleting a driver
func (h *TripHandler) DeleteDriver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid driver ID")
		return
	}

	if err := h.tripService.DeleteDriver(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func tripInput(req *request.CreateTripRequest) *service.CreateTripInput {
	stops := make([]service.TripStopInput, 0, len(req.Stops))
	for _, stop := range req.Stops {
		stops = append(stops, service.TripStopInput{
			StoreID: stop.StoreID,
			OrderID: stop.OrderID,
			Lat:     stop.Lat,
			Lng:     stop.Lng,
		})
	}

	tripDate := time.Now()
	if req.TripDate != nil {
		tripDate = *req.TripDate
	}

	return &service.CreateTripInput{
		DriverID: req.DriverID,
		TripDate: tripDate,
		Name:     req.Name,
		Stops:    stops,
		DepotLat: req.DepotLat,
		DepotLng: req.DepotLng,
		Optimize: req.Optimize,
	}
}

// CreateTrip handles creating a delivery trip
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req request.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), tripInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Trip created successfully", trip)
}

// ListTrips handles listing trips
func (h *TripHandler) ListTrips(c *gin.Context) {
	var filter request.TripFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TripFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		DriverID:  parseUUIDQuery(filter.DriverID),
		StartDate: parseDateQuery(filter.StartDate),
		EndDate:   parseDateQuery(filter.EndDate),
	}

	result, err := h.tripService.ListTrips(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Trips retrieved successfully", result)
}

// GetTrip handles getting a trip with its stops
func (h *TripHandler) GetTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	trip, err := h.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trip retrieved successfully", trip)
}

// ReplaceStops replaces a trip's stops, optionally re-optimizing the order
func (h *TripHandler) ReplaceStops(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	var req request.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	trip, err := h.tripService.ReplaceTripStops(c.Request.Context(), id, tripInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trip stops updated successfully", trip)
}

// DeleteTrip handles deleting a trip
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Route returns driving directions through a trip's stops
func (h *TripHandler) Route(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	route, err := h.tripService.TripRoute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Route retrieved successfully", route)
}

// DeliveryArea returns drivable areas around a point for given time ranges
func (h *TripHandler) DeliveryArea(c *gin.Context) {
	var req request.DeliveryAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	areas, err := h.tripService.DeliveryArea(c.Request.Context(), req.Lat, req.Lng, req.Ranges)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery areas retrieved successfully", areas)
}
