package service

import (
	"context"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/apperror"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// PriceListService manages negotiated price lists
type PriceListService struct {
	priceListRepo repository.PriceListRepository
	productRepo   repository.ProductRepository
}

// NewPriceListService creates a new price list service
func NewPriceListService(priceListRepo repository.PriceListRepository, productRepo repository.ProductRepository) *PriceListService {
	return &PriceListService{
		priceListRepo: priceListRepo,
		productRepo:   productRepo,
	}
}

// PriceListItemInput ties a product to a list with an optional box price.
// A zero box price means the product is on the list at its tier price.
type PriceListItemInput struct {
	ProductID uuid.UUID
	BoxPrice  float64
}

// PriceListInput represents the create/update price list input
type PriceListInput struct {
	Name   string
	Active bool
	Items  []PriceListItemInput
}

func (s *PriceListService) buildItems(ctx context.Context, inputs []PriceListItemInput) ([]entity.PriceListItem, error) {
	productIDs := make([]uuid.UUID, len(inputs))
	for i, in := range inputs {
		productIDs[i] = in.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		known[p.ID] = true
	}

	items := make([]entity.PriceListItem, 0, len(inputs))
	seen := make(map[uuid.UUID]bool, len(inputs))
	for _, in := range inputs {
		if !known[in.ProductID] {
			return nil, apperror.NewNotFoundError("Product")
		}
		if seen[in.ProductID] {
			return nil, apperror.NewBadRequestError("Duplicate product on price list")
		}
		seen[in.ProductID] = true
		items = append(items, entity.PriceListItem{
			ProductID: in.ProductID,
			BoxPrice:  toCents(in.BoxPrice),
		})
	}
	return items, nil
}

// CreatePriceList creates a price list with its product overrides
func (s *PriceListService) CreatePriceList(ctx context.Context, input *PriceListInput) (*entity.PriceList, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Price list must contain at least one product")
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	priceList := &entity.PriceList{
		Name:   input.Name,
		Active: input.Active,
		Items:  items,
	}

	if err := s.priceListRepo.Create(ctx, priceList); err != nil {
		return nil, err
	}

	return s.priceListRepo.GetWithItems(ctx, priceList.ID)
}

// GetPriceList retrieves a price list with its items
func (s *PriceListService) GetPriceList(ctx context.Context, id uuid.UUID) (*entity.PriceList, error) {
	priceList, err := s.priceListRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if priceList == nil {
		return nil, apperror.NewNotFoundError("Price list")
	}
	return priceList, nil
}

// UpdatePriceList updates a price list and replaces its items
func (s *PriceListService) UpdatePriceList(ctx context.Context, id uuid.UUID, input *PriceListInput) (*entity.PriceList, error) {
	priceList, err := s.priceListRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if priceList == nil {
		return nil, apperror.NewNotFoundError("Price list")
	}

	priceList.Name = input.Name
	priceList.Active = input.Active
	if err := s.priceListRepo.Update(ctx, priceList); err != nil {
		return nil, err
	}

	if len(input.Items) > 0 {
		items, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		if err := s.priceListRepo.ReplaceItems(ctx, id, items); err != nil {
			return nil, err
		}
	}

	return s.priceListRepo.GetWithItems(ctx, id)
}

// DeletePriceList deletes a price list
func (s *PriceListService) DeletePriceList(ctx context.Context, id uuid.UUID) error {
	priceList, err := s.priceListRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if priceList == nil {
		return apperror.NewNotFoundError("Price list")
	}
	return s.priceListRepo.Delete(ctx, id)
}

// ListPriceLists lists price lists with pagination and search
func (s *PriceListService) ListPriceLists(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.PriceList], error) {
	priceLists, total, err := s.priceListRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(priceLists, pag), nil
}
