package service

import (
	"context"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/apperror"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// StoreService handles store (customer) operations
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// StoreInput represents store create/update fields
type StoreInput struct {
	Name          string
	OwnerName     *string
	Email         *string
	Phone         *string
	City          *string
	Address       *string
	PriceCategory enum.PriceCategory
	ShippingCost  float64
}

// CreateStore creates a new store
func (s *StoreService) CreateStore(ctx context.Context, input *StoreInput) (*entity.Store, error) {
	existing, err := s.storeRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Store name already in use")
	}

	store := &entity.Store{
		Name:          input.Name,
		OwnerName:     input.OwnerName,
		Email:         input.Email,
		Phone:         input.Phone,
		City:          input.City,
		Address:       input.Address,
		PriceCategory: input.PriceCategory,
		ShippingCost:  toCents(input.ShippingCost),
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetStore retrieves a store by ID
func (s *StoreService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// UpdateStore updates a store
func (s *StoreService) UpdateStore(ctx context.Context, id uuid.UUID, input *StoreInput) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if input.Name != store.Name {
		existing, err := s.storeRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != store.ID {
			return nil, apperror.NewConflictError("Store name already in use")
		}
	}

	store.Name = input.Name
	store.OwnerName = input.OwnerName
	store.Email = input.Email
	store.Phone = input.Phone
	store.City = input.City
	store.Address = input.Address
	store.PriceCategory = input.PriceCategory
	store.ShippingCost = toCents(input.ShippingCost)

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore deletes a store
func (s *StoreService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return apperror.NewNotFoundError("Store")
	}
	return s.storeRepo.Delete(ctx, id)
}

// ListStores lists stores with pagination
func (s *StoreService) ListStores(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Store], error) {
	stores, total, err := s.storeRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(stores, pag), nil
}

// ListAllStores returns every store for pickers
func (s *StoreService) ListAllStores(ctx context.Context) ([]entity.Store, error) {
	return s.storeRepo.ListAll(ctx)
}
