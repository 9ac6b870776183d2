package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
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

// OrderService handles order intake and lifecycle
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository

	mu      sync.Mutex
	recents map[uuid.UUID]*ordering.RecentProducts
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		recents:     make(map[uuid.UUID]*ordering.RecentProducts),
	}
}

// OrderItemInput represents one requested order line
type OrderItemInput struct {
	ProductID   uuid.UUID
	Quantity    int
	PricingType enum.PricingType
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	StoreID         uuid.UUID
	UserID          uuid.UUID
	OrderDate       time.Time
	BillingAddress  entity.Address
	ShippingAddress entity.Address
	PalletCharge    float64
	Notes           *string
	Items           []OrderItemInput
}

// QuickAddResult is a resolved quick-add code ready to become an order line
type QuickAddResult struct {
	Product     *entity.Product  `json:"product"`
	Quantity    int              `json:"quantity"`
	PricingType enum.PricingType `json:"pricing_type"`
}

// ResolveQuickAdd parses a quick-add code and resolves it against the
// catalog. A nil result with no error means the input is not a quick-add
// code at all. An unresolved code escalates to a catalog substring search
// with the raw input as the query, taking the first hit.
func (s *OrderService) ResolveQuickAdd(ctx context.Context, raw string) (*QuickAddResult, error) {
	qa := ordering.ParseQuickAdd(raw)
	if qa == nil {
		return nil, nil
	}

	product, err := s.productRepo.GetByShortCode(ctx, qa.Code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		// Positional fallback over the full catalog
		products, err := s.productRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		product = ordering.ResolveCode(products, qa.Code)
	}
	if product == nil {
		product, err = s.searchFirst(ctx, raw)
		if err != nil {
			return nil, err
		}
	}
	if product == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Product with code %s", qa.Code))
	}

	return &QuickAddResult{
		Product:     product,
		Quantity:    qa.Quantity,
		PricingType: qa.PricingType,
	}, nil
}

// searchFirst runs the catalog name/short-code search and takes the first hit
func (s *OrderService) searchFirst(ctx context.Context, query string) (*entity.Product, error) {
	products, _, err := s.productRepo.List(ctx, &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
		Search:     query,
	})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

// recentFor returns one user's recently-added ring, creating it on first use
func (s *OrderService) recentFor(userID uuid.UUID) *ordering.RecentProducts {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.recents[userID]
	if !ok {
		r = ordering.NewRecentProducts(ordering.DefaultRecentCapacity)
		s.recents[userID] = r
	}
	return r
}

// RecentProductIDs returns the user's recently added product ids, most
// recent first
func (s *OrderService) RecentProductIDs(userID uuid.UUID) []uuid.UUID {
	return s.recentFor(userID).IDs()
}

// buildItems turns requested lines into aggregated, priced order lines for
// the given store. Duplicate (product, pricing type) pairs merge.
func (s *OrderService) buildItems(ctx context.Context, userID uuid.UUID, store *entity.Store, inputs []OrderItemInput) ([]ordering.Item, error) {
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

		price := ordering.ResolveUnitPrice(product, in.PricingType, store.PriceCategory)
		items, err = ordering.Apply(items, ordering.Add(product, in.Quantity, in.PricingType, price))
		if err != nil {
			return nil, translateItemError(err)
		}

		s.recentFor(userID).Record(product.ID)
	}

	return items, nil
}

func translateItemError(err error) error {
	var smErr *ordering.SalesModeError
	if errors.As(err, &smErr) {
		return apperror.NewUnprocessableError(smErr.Error())
	}
	if errors.Is(err, ordering.ErrQuantityNotPositive) {
		return apperror.NewUnprocessableError("Quantity must be at least 1")
	}
	if errors.Is(err, ordering.ErrIndexOutOfRange) {
		return apperror.NewBadRequestError("Line item does not exist")
	}
	return err
}

// toOrderItems converts aggregated lines into persistable order items
func toOrderItems(items []ordering.Item) []entity.OrderItem {
	out := make([]entity.OrderItem, len(items))
	for i, item := range items {
		out[i] = entity.OrderItem{
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

// stockDecrements sums requested quantities per product
func stockDecrements(items []ordering.Item) map[uuid.UUID]int {
	decrements := make(map[uuid.UUID]int)
	for _, item := range items {
		decrements[item.ProductID] += item.Quantity
	}
	return decrements
}

// CreateOrder creates a new order with aggregated, tier-priced lines
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	items, err := s.buildItems(ctx, input.UserID, store, input.Items)
	if err != nil {
		return nil, err
	}

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

	pallets := ordering.SummarizePallets(items)
	subTotal := ordering.SubTotal(items)
	shippingTotal := ordering.ShippingTotal(items) + store.ShippingCost
	palletCharge := toCents(input.PalletCharge)

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &entity.Order{
		StoreID:         store.ID,
		UserID:          input.UserID,
		InvoiceNo:       utils.GenerateInvoiceNo("INV-"),
		Status:          enum.OrderStatusPending,
		OrderDate:       orderDate,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		SubTotal:        subTotal,
		ShippingTotal:   shippingTotal,
		PalletCharge:    palletCharge,
		Total:           subTotal + shippingTotal + palletCharge,
		TotalBoxes:      pallets.TotalBoxes,
		Notes:           input.Notes,
		Items:           toOrderItems(items),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Stock was already decremented, restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, decrements)
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// GetOrder retrieves an order with its store and items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderPallets returns the pallet summary for an order
func (s *OrderService) GetOrderPallets(ctx context.Context, id uuid.UUID) (*ordering.PalletSummary, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := ordering.SummarizePallets(fromOrderItems(order.Items))
	return &summary, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// GetLatestByStore returns the store's most recent orders
func (s *OrderService) GetLatestByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]entity.Order, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}
	return s.orderRepo.GetLatestByStore(ctx, storeID, limit)
}

// fromOrderItems converts persisted items back into aggregation lines
func fromOrderItems(items []entity.OrderItem) []ordering.Item {
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

// ItemOpInput is one line-item edit against an existing order
type ItemOpInput struct {
	// Op is one of "add", "update_qty", "set_qty", "remove"
	Op          string
	ProductID   uuid.UUID
	Quantity    int
	PricingType enum.PricingType
	Index       int
	Delta       int
	Value       string
}

// UpdateOrderItems applies line-item edits to an order and recomputes
// totals. Stock is adjusted by the per-product quantity delta.
func (s *OrderService) UpdateOrderItems(ctx context.Context, orderID uuid.UUID, ops []ItemOpInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled || order.Status == enum.OrderStatusDelivered {
		return nil, apperror.NewBadRequestError("Order can no longer be edited")
	}

	store, err := s.storeRepo.GetByID(ctx, order.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	items := fromOrderItems(order.Items)
	before := stockDecrements(items)

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
			price := ordering.ResolveUnitPrice(product, opIn.PricingType, store.PriceCategory)
			op = ordering.Add(product, opIn.Quantity, opIn.PricingType, price)
			s.recentFor(order.UserID).Record(product.ID)
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

	after := stockDecrements(items)
	if err := s.adjustStock(ctx, before, after); err != nil {
		return nil, err
	}

	pallets := ordering.SummarizePallets(items)
	order.SubTotal = ordering.SubTotal(items)
	order.ShippingTotal = ordering.ShippingTotal(items) + store.ShippingCost
	order.Total = order.SubTotal + order.ShippingTotal + order.PalletCharge
	order.TotalBoxes = pallets.TotalBoxes

	if err := s.orderRepo.ReplaceItems(ctx, orderID, toOrderItems(items)); err != nil {
		return nil, err
	}

	order.Items = nil
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, orderID)
}

// adjustStock reconciles inventory with the quantity delta of an edit
func (s *OrderService) adjustStock(ctx context.Context, before, after map[uuid.UUID]int) error {
	decrements := make(map[uuid.UUID]int)
	increments := make(map[uuid.UUID]int)

	for id, qty := range after {
		if delta := qty - before[id]; delta > 0 {
			decrements[id] = delta
		}
	}
	for id, qty := range before {
		if delta := qty - after[id]; delta > 0 {
			increments[id] = delta
		}
	}

	if len(decrements) > 0 {
		failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, decrements)
		if err != nil {
			return err
		}
		if len(failedIDs) > 0 {
			return apperror.NewBadRequestError("Insufficient stock for requested quantities")
		}
	}
	if len(increments) > 0 {
		return s.productRepo.AtomicIncrementBatch(ctx, increments)
	}
	return nil
}

// UpdateOrderStatus updates the status of an order
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return apperror.NewBadRequestError("Cancelled orders cannot change status")
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// CancelOrder cancels an order and restores stock
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return apperror.NewBadRequestError("Order is already cancelled")
	}

	increments := make(map[uuid.UUID]int)
	for _, item := range order.Items {
		increments[item.ProductID] += item.Quantity
	}

	if err := s.productRepo.AtomicIncrementBatch(ctx, increments); err != nil {
		return err
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled)
}
