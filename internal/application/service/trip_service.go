package service

import (
	"context"
	"errors"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/apperror"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/distroflow/distribution-api/pkg/routing"
	"github.com/google/uuid"
)

// TripService plans delivery trips and their stop order
type TripService struct {
	tripRepo   repository.TripRepository
	driverRepo repository.DriverRepository
	router     *routing.Client
}

// NewTripService creates a new trip service
func NewTripService(
	tripRepo repository.TripRepository,
	driverRepo repository.DriverRepository,
	router *routing.Client,
) *TripService {
	return &TripService{
		tripRepo:   tripRepo,
		driverRepo: driverRepo,
		router:     router,
	}
}

// DriverInput represents the create/update driver input
type DriverInput struct {
	Name    string
	Phone   *string
	Vehicle *string
	Active  bool
}

// CreateDriver creates a new driver
func (s *TripService) CreateDriver(ctx context.Context, input *DriverInput) (*entity.Driver, error) {
	driver := &entity.Driver{
		Name:    input.Name,
		Phone:   input.Phone,
		Vehicle: input.Vehicle,
		Active:  input.Active,
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// UpdateDriver updates a driver
func (s *TripService) UpdateDriver(ctx context.Context, id uuid.UUID, input *DriverInput) (*entity.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperror.NewNotFoundError("Driver")
	}

	driver.Name = input.Name
	driver.Phone = input.Phone
	driver.Vehicle = input.Vehicle
	driver.Active = input.Active

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// DeleteDriver deletes a driver
func (s *TripService) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if driver == nil {
		return apperror.NewNotFoundError("Driver")
	}
	return s.driverRepo.Delete(ctx, id)
}

// ListDrivers lists drivers with pagination and search
func (s *TripService) ListDrivers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Driver], error) {
	drivers, total, err := s.driverRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(drivers, pag), nil
}

// ListActiveDrivers lists drivers available for trip assignment
func (s *TripService) ListActiveDrivers(ctx context.Context) ([]entity.Driver, error) {
	return s.driverRepo.ListActive(ctx)
}

// TripStopInput is one requested delivery stop
type TripStopInput struct {
	StoreID *uuid.UUID
	OrderID *uuid.UUID
	Lat     float64
	Lng     float64
}

// CreateTripInput represents the create trip input
type CreateTripInput struct {
	DriverID uuid.UUID
	TripDate time.Time
	Name     string
	Stops    []TripStopInput
	// DepotLat/DepotLng anchor route optimization. Optimization is skipped
	// when the routing client is disabled.
	DepotLat float64
	DepotLng float64
	Optimize bool
}

func toTripStops(inputs []TripStopInput) []entity.TripStop {
	stops := make([]entity.TripStop, len(inputs))
	for i, in := range inputs {
		stops[i] = entity.TripStop{
			StoreID:  in.StoreID,
			OrderID:  in.OrderID,
			Sequence: i + 1,
			Lat:      in.Lat,
			Lng:      in.Lng,
		}
	}
	return stops
}

// optimizeStops reorders stops into the shortest round trip from the depot.
// A disabled routing client leaves the requested order untouched.
func (s *TripService) optimizeStops(ctx context.Context, depotLat, depotLng float64, stops []TripStopInput) ([]TripStopInput, error) {
	if len(stops) < 2 {
		return stops, nil
	}

	depot := routing.Coordinate{depotLng, depotLat}
	jobs := make([]routing.Coordinate, len(stops))
	for i, stop := range stops {
		jobs[i] = routing.Coordinate{stop.Lng, stop.Lat}
	}

	order, err := s.router.Optimize(ctx, depot, jobs)
	if err != nil {
		if errors.Is(err, routing.ErrDisabled) {
			return stops, nil
		}
		return nil, err
	}
	if len(order) != len(stops) {
		return stops, nil
	}

	reordered := make([]TripStopInput, len(stops))
	for i, idx := range order {
		reordered[i] = stops[idx]
	}
	return reordered, nil
}

// CreateTrip creates a trip, optionally optimizing the stop order
func (s *TripService) CreateTrip(ctx context.Context, input *CreateTripInput) (*entity.Trip, error) {
	driver, err := s.driverRepo.GetByID(ctx, input.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperror.NewNotFoundError("Driver")
	}
	if !driver.Active {
		return nil, apperror.NewBadRequestError("Driver is not active")
	}
	if len(input.Stops) == 0 {
		return nil, apperror.NewBadRequestError("Trip must have at least one stop")
	}

	stops := input.Stops
	if input.Optimize {
		stops, err = s.optimizeStops(ctx, input.DepotLat, input.DepotLng, stops)
		if err != nil {
			return nil, err
		}
	}

	tripDate := input.TripDate
	if tripDate.IsZero() {
		tripDate = time.Now()
	}

	trip := &entity.Trip{
		DriverID: driver.ID,
		TripDate: tripDate,
		Name:     input.Name,
		Stops:    toTripStops(stops),
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return s.tripRepo.GetWithStops(ctx, trip.ID)
}

// GetTrip retrieves a trip with its driver and ordered stops
func (s *TripService) GetTrip(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	trip, err := s.tripRepo.GetWithStops(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apperror.NewNotFoundError("Trip")
	}
	return trip, nil
}

// ListTrips lists trips with filtering
func (s *TripService) ListTrips(ctx context.Context, params *repository.TripFilterParams) (*pagination.PaginatedResult[entity.Trip], error) {
	trips, total, err := s.tripRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(trips, pag), nil
}

// ReplaceTripStops replaces a trip's stops, optionally optimizing the order
func (s *TripService) ReplaceTripStops(ctx context.Context, tripID uuid.UUID, input *CreateTripInput) (*entity.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apperror.NewNotFoundError("Trip")
	}
	if len(input.Stops) == 0 {
		return nil, apperror.NewBadRequestError("Trip must have at least one stop")
	}

	stops := input.Stops
	if input.Optimize {
		stops, err = s.optimizeStops(ctx, input.DepotLat, input.DepotLng, stops)
		if err != nil {
			return nil, err
		}
	}

	if err := s.tripRepo.ReplaceStops(ctx, tripID, toTripStops(stops)); err != nil {
		return nil, err
	}

	return s.tripRepo.GetWithStops(ctx, tripID)
}

// DeleteTrip deletes a trip
func (s *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if trip == nil {
		return apperror.NewNotFoundError("Trip")
	}
	return s.tripRepo.Delete(ctx, id)
}

// TripRoute returns the driving route over a trip's stops in sequence order
func (s *TripService) TripRoute(ctx context.Context, tripID uuid.UUID) (*routing.Route, error) {
	trip, err := s.tripRepo.GetWithStops(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apperror.NewNotFoundError("Trip")
	}
	if len(trip.Stops) < 2 {
		return nil, apperror.NewBadRequestError("Trip needs at least two stops for a route")
	}

	coords := make([]routing.Coordinate, len(trip.Stops))
	for i, stop := range trip.Stops {
		coords[i] = routing.Coordinate{stop.Lng, stop.Lat}
	}

	route, err := s.router.Directions(ctx, coords)
	if err != nil {
		if errors.Is(err, routing.ErrDisabled) {
			return nil, apperror.NewBadRequestError("Routing is disabled, configure an OpenRouteService API key")
		}
		return nil, err
	}
	return route, nil
}

// DeliveryArea returns the drivable areas around a point for the given time
// budgets in seconds.
func (s *TripService) DeliveryArea(ctx context.Context, lat, lng float64, rangesSeconds []float64) ([]routing.Isochrone, error) {
	isochrones, err := s.router.Isochrones(ctx, routing.Coordinate{lng, lat}, rangesSeconds)
	if err != nil {
		if errors.Is(err, routing.ErrDisabled) {
			return nil, apperror.NewBadRequestError("Routing is disabled, configure an OpenRouteService API key")
		}
		return nil, err
	}
	return isochrones, nil
}
