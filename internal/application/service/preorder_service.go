package service

import (
	"context"
	"fmt"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/ordering"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/apperror"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/distroflow/distribution-api/pkg/utils"
	"github.com/google/uuid"
)

// PreOrderService handles draft orders and their conversion to orders
type PreOrderService struct {
	preOrderRepo  repository.PreOrderRepository
	productRepo   repository.ProductRepository
	storeRepo     repository.StoreRepository
	priceListRepo repository.PriceListRepository
}

// NewPreOrderService creates a new pre-order service
func NewPreOrderService(
	preOrderRepo repository.PreOrderRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	priceListRepo repository.PriceListRepository,
) *PreOrderService {
	return &PreOrderService{
		preOrderRepo:  preOrderRepo,
		productRepo:   productRepo,
		storeRepo:     storeRepo,
		priceListRepo: priceListRepo,
	}
}

// CreatePreOrderInput represents the create pre-order input
type CreatePreOrderInput struct {
	StoreID         uuid.UUID
	UserID          uuid.UUID
	PriceListID     *uuid.UUID
	BillingAddress  entity.Address
	ShippingAddress entity.Address
	Notes           *string
	Items           []OrderItemInput
}

// priceOverrides builds the product to box-price map for a price list.
// A zero override falls back to tier pricing.
func (s *PreOrderService) priceOverrides(ctx context.Context, priceListID *uuid.UUID) (map[uuid.UUID]int64, error) {
	if priceListID == nil {
		return nil, nil
	}

	priceList, err := s.priceListRepo.GetWithItems(ctx, *priceListID)
	if err != nil {
		return nil, err
	}
	if priceList == nil {
		return nil, apperror.NewNotFoundError("Price list")
	}
	if !priceList.Active {
		return nil, apperror.NewBadRequestError("Price list is inactive")
	}

	overrides := make(map[uuid.UUID]int64, len(priceList.Items))
	for _, item := range priceList.Items {
		overrides[item.ProductID] = item.BoxPrice
	}
	return overrides, nil
}

// buildItems prices and aggregates the requested lines. Price list overrides
// apply to box-priced lines only; products outside the list are rejected when
// a list is attached.
func (s *PreOrderService) buildItems(ctx context.Context, store *entity.Store, overrides map[uuid.UUID]int64, inputs []OrderItemInput) ([]ordering.Item, error) {
	productIDs := make([]uuid.UUID, len(inputs))
	for i, in := range inputs {
		productIDs[i] = in.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var items []ordering.Item
	for _, in := range inputs {
		product, exists := productMap[in.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", in.ProductID))
		}

		var price int64
		if overrides != nil {
			override, inList := overrides[product.ID]
			if !inList {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("%s is not on the attached price list", product.Name))
			}
			price = ordering.ResolveUnitPriceWithOverride(product, in.PricingType, store.PriceCategory, override)
		} else {
			price = ordering.ResolveUnitPrice(product, in.PricingType, store.PriceCategory)
		}

		items, err = ordering.Apply(items, ordering.Add(product, in.Quantity, in.PricingType, price))
		if err != nil {
			return nil, translateItemError(err)
		}
	}

	return items, nil
}

// toPreOrderItems converts aggregated lines into persistable pre-order items
func toPreOrderItems(items []ordering.Item) []entity.PreOrderItem {
	out := make([]entity.PreOrderItem, len(items))
	for i, item := range items {
		out[i] = entity.PreOrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ShortCode:    item.ShortCode,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			PricingType:  item.PricingType,
			ShippingCost: item.ShippingCost,
			Total:        item.LineTotal(),
		}
	}
	return out
}

// fromPreOrderItems converts persisted items back into aggregation lines
func fromPreOrderItems(items []entity.PreOrderItem) []ordering.Item {
	out := make([]ordering.Item, len(items))
	for i, item := range items {
		out[i] = ordering.Item{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ShortCode:    item.ShortCode,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			PricingType:  item.PricingType,
			ShippingCost: item.ShippingCost,
		}
	}
	return out
}

// CreatePreOrder creates a draft order. Stock is not reserved until the
// pre-order is confirmed.
func (s *PreOrderService) CreatePreOrder(ctx context.Context, input *CreatePreOrderInput) (*entity.PreOrder, error) {
	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Pre-order must contain at least one item")
	}

	overrides, err := s.priceOverrides(ctx, input.PriceListID)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, store, overrides, input.Items)
	if err != nil {
		return nil, err
	}

	pallets := ordering.SummarizePallets(items)
	subTotal := ordering.SubTotal(items)
	shippingTotal := ordering.ShippingTotal(items) + store.ShippingCost

	preOrder := &entity.PreOrder{
		StoreID:         store.ID,
		UserID:          input.UserID,
		ReferenceNo:     utils.GenerateReferenceNo("PRE"),
		Status:          enum.PreOrderStatusPending,
		PriceListID:     input.PriceListID,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		SubTotal:        subTotal,
		ShippingTotal:   shippingTotal,
		Total:           subTotal + shippingTotal,
		TotalBoxes:      pallets.TotalBoxes,
		Notes:           input.Notes,
		Items:           toPreOrderItems(items),
	}

	if err := s.preOrderRepo.Create(ctx, preOrder); err != nil {
		return nil, err
	}

	return s.preOrderRepo.GetWithDetails(ctx, preOrder.ID)
}

// GetPreOrder retrieves a pre-order with its store, price list and items
func (s *PreOrderService) GetPreOrder(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	preOrder, err := s.preOrderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if preOrder == nil {
		return nil, apperror.NewNotFoundError("Pre-order")
	}
	return preOrder, nil
}

// ListPreOrders lists pre-orders with filtering
func (s *PreOrderService) ListPreOrders(ctx context.Context, params *repository.PreOrderFilterParams) (*pagination.PaginatedResult[entity.PreOrder], error) {
	preOrders, total, err := s.preOrderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(preOrders, pag), nil
}

// UpdatePreOrderItems applies line-item edits to a draft pre-order and
// recomputes totals. Confirmed or cancelled pre-orders cannot be edited.
func (s *PreOrderService) UpdatePreOrderItems(ctx context.Context, preOrderID uuid.UUID, ops []ItemOpInput) (*entity.PreOrder, error) {
	preOrder, err := s.preOrderRepo.GetWithDetails(ctx, preOrderID)
	if err != nil {
		return nil, err
	}
	if preOrder == nil {
		return nil, apperror.NewNotFoundError("Pre-order")
	}
	if preOrder.Status != enum.PreOrderStatusPending {
		return nil, apperror.NewBadRequestError("Only draft pre-orders can be edited")
	}

	store, err := s.storeRepo.GetByID(ctx, preOrder.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	overrides, err := s.priceOverrides(ctx, preOrder.PriceListID)
	if err != nil {
		return nil, err
	}

	items := fromPreOrderItems(preOrder.Items)
	for _, opIn := range ops {
		var op ordering.Op
		switch opIn.Op {
		case "add":
			product, err := s.productRepo.GetByID(ctx, opIn.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, apperror.NewNotFoundError("Product")
			}
			var price int64
			if overrides != nil {
				override, inList := overrides[product.ID]
				if !inList {
					return nil, apperror.NewBadRequestError(fmt.Sprintf("%s is not on the attached price list", product.Name))
				}
				price = ordering.ResolveUnitPriceWithOverride(product, opIn.PricingType, store.PriceCategory, override)
			} else {
				price = ordering.ResolveUnitPrice(product, opIn.PricingType, store.PriceCategory)
			}
			op = ordering.Add(product, opIn.Quantity, opIn.PricingType, price)
		case "update_qty":
			op = ordering.UpdateQty(opIn.Index, opIn.Delta)
		case "set_qty":
			op = ordering.SetQty(opIn.Index, opIn.Value)
		case "remove":
			op = ordering.Remove(opIn.Index)
		default:
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown item operation %q", opIn.Op))
		}

		items, err = ordering.Apply(items, op)
		if err != nil {
			return nil, translateItemError(err)
		}
	}

	pallets := ordering.SummarizePallets(items)
	preOrder.SubTotal = ordering.SubTotal(items)
	preOrder.ShippingTotal = ordering.ShippingTotal(items) + store.ShippingCost
	preOrder.Total = preOrder.SubTotal + preOrder.ShippingTotal
	preOrder.TotalBoxes = pallets.TotalBoxes

	if err := s.preOrderRepo.ReplaceItems(ctx, preOrderID, toPreOrderItems(items)); err != nil {
		return nil, err
	}

	preOrder.Items = nil
	preOrder.Store = entity.Store{}
	preOrder.PriceList = nil
	if err := s.preOrderRepo.Update(ctx, preOrder); err != nil {
		return nil, err
	}

	return s.preOrderRepo.GetWithDetails(ctx, preOrderID)
}

// ConfirmPreOrder converts a draft pre-order into an order. Line prices and
// totals carry over unchanged, stock is decremented, and the pre-order keeps
// a reference to the created order.
func (s *PreOrderService) ConfirmPreOrder(ctx context.Context, preOrderID uuid.UUID) (*entity.Order, error) {
	preOrder, err := s.preOrderRepo.GetWithDetails(ctx, preOrderID)
	if err != nil {
		return nil, err
	}
	if preOrder == nil {
		return nil, apperror.NewNotFoundError("Pre-order")
	}
	if preOrder.Status != enum.PreOrderStatusPending {
		return nil, apperror.NewBadRequestError("Pre-order has already been confirmed or cancelled")
	}
	if len(preOrder.Items) == 0 {
		return nil, apperror.NewBadRequestError("Pre-order has no items to convert")
	}

	items := fromPreOrderItems(preOrder.Items)
	decrements := stockDecrements(items)

	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, decrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, item := range items {
			for _, id := range failedIDs {
				if item.ProductID == id {
					failedNames = append(failedNames, item.ProductName)
				}
			}
		}
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	order := &entity.Order{
		StoreID:         preOrder.StoreID,
		UserID:          preOrder.UserID,
		InvoiceNo:       utils.GenerateInvoiceNo("INV-"),
		Status:          enum.OrderStatusPending,
		OrderDate:       time.Now(),
		BillingAddress:  preOrder.BillingAddress,
		ShippingAddress: preOrder.ShippingAddress,
		SubTotal:        preOrder.SubTotal,
		ShippingTotal:   preOrder.ShippingTotal,
		Total:           preOrder.Total,
		TotalBoxes:      preOrder.TotalBoxes,
		Notes:           preOrder.Notes,
		Items:           toOrderItems(items),
	}

	if err := s.preOrderRepo.Convert(ctx, preOrder, order); err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, decrements)
		return nil, err
	}

	return order, nil
}

// CancelPreOrder cancels a draft pre-order. No stock changes because drafts
// never reserve stock.
func (s *PreOrderService) CancelPreOrder(ctx context.Context, preOrderID uuid.UUID) error {
	preOrder, err := s.preOrderRepo.GetByID(ctx, preOrderID)
	if err != nil {
		return err
	}
	if preOrder == nil {
		return apperror.NewNotFoundError("Pre-order")
	}
	if preOrder.Status != enum.PreOrderStatusPending {
		return apperror.NewBadRequestError("Only draft pre-orders can be cancelled")
	}

	preOrder.Status = enum.PreOrderStatusCancelled
	return s.preOrderRepo.Update(ctx, preOrder)
}

// DeletePreOrder deletes a pre-order that has not been converted
func (s *PreOrderService) DeletePreOrder(ctx context.Context, preOrderID uuid.UUID) error {
	preOrder, err := s.preOrderRepo.GetByID(ctx, preOrderID)
	if err != nil {
		return err
	}
	if preOrder == nil {
		return apperror.NewNotFoundError("Pre-order")
	}
	if preOrder.Status == enum.PreOrderStatusConfirmed {
		return apperror.NewBadRequestError("Converted pre-orders cannot be deleted")
	}

	return s.preOrderRepo.Delete(ctx, preOrderID)
}
