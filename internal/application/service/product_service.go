package service

import (
	"context"
	"strconv"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/apperror"
	"github.com/distroflow/distribution-api/pkg/export"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput represents product create/update fields. Prices are decimal
// amounts converted to cents at the service boundary.
type ProductInput struct {
	Name            string
	ShortCode       string
	CategoryID      *uuid.UUID
	Price           float64
	PricePerBox     float64
	APrice          float64
	BPrice          float64
	CPrice          float64
	RestaurantPrice float64
	SalesMode       enum.SalesMode
	ShippingCost    float64
	Quantity        int
	QuantityAlert   int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if input.ShortCode != "" {
		existing, err := s.productRepo.GetByShortCode(ctx, input.ShortCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Short code already in use")
		}
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		Name:            input.Name,
		ShortCode:       input.ShortCode,
		CategoryID:      input.CategoryID,
		Price:           toCents(input.Price),
		PricePerBox:     toCents(input.PricePerBox),
		APrice:          toCents(input.APrice),
		BPrice:          toCents(input.BPrice),
		CPrice:          toCents(input.CPrice),
		RestaurantPrice: toCents(input.RestaurantPrice),
		SalesMode:       input.SalesMode,
		ShippingCost:    toCents(input.ShippingCost),
		Quantity:        input.Quantity,
		QuantityAlert:   input.QuantityAlert,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.ShortCode != "" && input.ShortCode != product.ShortCode {
		existing, err := s.productRepo.GetByShortCode(ctx, input.ShortCode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("Short code already in use")
		}
		product.ShortCode = input.ShortCode
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product.Name = input.Name
	product.CategoryID = input.CategoryID
	product.Price = toCents(input.Price)
	product.PricePerBox = toCents(input.PricePerBox)
	product.APrice = toCents(input.APrice)
	product.BPrice = toCents(input.BPrice)
	product.CPrice = toCents(input.CPrice)
	product.RestaurantPrice = toCents(input.RestaurantPrice)
	product.SalesMode = input.SalesMode
	product.ShippingCost = toCents(input.ShippingCost)
	product.Quantity = input.Quantity
	product.QuantityAlert = input.QuantityAlert

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// SetProductImage stores the uploaded image path on the product
func (s *ProductService) SetProductImage(ctx context.Context, id uuid.UUID, imagePath string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	product.ProductImage = &imagePath
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListProductsWithCursor lists products using cursor-based pagination
func (s *ProductService) ListProductsWithCursor(ctx context.Context, params *repository.ProductCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Product], error) {
	products, err := s.productRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	pag, items := pagination.NewCursorPagination(products, params.Cursor.Limit,
		func(p entity.Product) string { return p.ID.String() },
		func(p entity.Product) time.Time { return p.CreatedAt },
	)
	pag.HasPrev = params.Cursor.Cursor != ""
	return pagination.NewCursorPaginatedResult(items, pag), nil
}

// GetProductsByIDs fetches products by id in one query
func (s *ProductService) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.GetByIDs(ctx, ids)
}

// GetLowStockProducts returns products at or below their alert threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// ExportCSV renders the full catalog as a CSV document
func (s *ProductService) ExportCSV(ctx context.Context) ([]byte, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	table := &export.CSV{
		Header: []string{
			"Short Code", "Name", "Unit Price", "Box Price",
			"A Price", "B Price", "C Price", "Restaurant Price",
			"Sales Mode", "Quantity",
		},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []string{
			p.ShortCode,
			p.Name,
			export.Money(p.Price),
			export.Money(p.PricePerBox),
			export.Money(p.APrice),
			export.Money(p.BPrice),
			export.Money(p.CPrice),
			export.Money(p.RestaurantPrice),
			p.SalesMode.String(),
			strconv.Itoa(p.Quantity),
		})
	}

	return table.Bytes()
}

// toCents converts a decimal amount to integer cents
func toCents(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
