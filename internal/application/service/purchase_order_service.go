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

// PurchaseOrderService rolls store orders up into vendor purchase orders
type PurchaseOrderService struct {
	poRepo      repository.PurchaseOrderRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorRepository
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		poRepo:      poRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
	}
}

// AggregationResult is the product-by-store matrix for a date range plus the
// per-product rollup that seeds a purchase order.
type AggregationResult struct {
	Matrix       *ordering.Matrix                `json:"matrix"`
	RowTotals    map[uuid.UUID]ordering.QtyTotal `json:"row_totals"`
	ColumnTotals map[uuid.UUID]ordering.QtyTotal `json:"column_totals"`
	Products     []ordering.ProductAggregate     `json:"products"`
	OrderCount   int                             `json:"order_count"`
}

// BuildAggregation builds the product-by-store quantity matrix from all
// non-cancelled orders in the date range.
func (s *PurchaseOrderService) BuildAggregation(ctx context.Context, start, end time.Time) (*AggregationResult, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	orders, err := s.orderRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	matrix := ordering.BuildMatrix(orders)
	return &AggregationResult{
		Matrix:       matrix,
		RowTotals:    matrix.RowTotals(),
		ColumnTotals: matrix.ColumnTotals(),
		Products:     ordering.AggregateForPO(orders),
		OrderCount:   len(orders),
	}, nil
}

// CellSaveOutcome reports the result of writing one order's edited cells back
type CellSaveOutcome struct {
	OrderID uuid.UUID `json:"order_id"`
	Saved   bool      `json:"saved"`
	Error   string    `json:"error,omitempty"`
}

// MatrixSaveResult is the per-order outcome of a matrix save plus the edits
// that could not be attributed to a single order.
type MatrixSaveResult struct {
	Outcomes  []CellSaveOutcome   `json:"outcomes"`
	Conflicts []ordering.CellEdit `json:"conflicts,omitempty"`
}

// SaveMatrixEdits writes edited matrix cells back to their source orders.
// Each order saves independently so one failure does not roll back the rest.
// Edits on cells fed by more than one order are returned as conflicts.
func (s *PurchaseOrderService) SaveMatrixEdits(ctx context.Context, start, end time.Time, edits []ordering.CellEdit) (*MatrixSaveResult, error) {
	orders, err := s.orderRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	matrix := ordering.BuildMatrix(orders)
	grouped, conflicts := ordering.GroupEditsByOrder(matrix, edits)

	result := &MatrixSaveResult{Conflicts: conflicts}
	for orderID, orderEdits := range grouped {
		outcome := CellSaveOutcome{OrderID: orderID}
		if err := s.applyEditsToOrder(ctx, orderID, orderEdits); err != nil {
			outcome.Error = err.Error()
		} else {
			outcome.Saved = true
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	return result, nil
}

// applyEditsToOrder rewrites the edited lines of one order and recomputes
// its totals. Stock is reconciled with the quantity delta.
func (s *PurchaseOrderService) applyEditsToOrder(ctx context.Context, orderID uuid.UUID, edits []ordering.CellEdit) error {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	items := fromOrderItems(order.Items)
	before := stockDecrements(items)

	for _, edit := range edits {
		var boxApplied, unitApplied bool
		items, boxApplied, unitApplied = applyCellEdit(items, edit)

		// An edit component with no existing line of that pricing type
		// creates the line, subject to the product's sales mode.
		if !boxApplied && edit.BoxQty > 0 {
			items, err = s.addEditedLine(ctx, order, items, edit.ProductID, edit.BoxQty, enum.PricingTypeBox)
			if err != nil {
				return err
			}
		}
		if !unitApplied && edit.UnitQty > 0 {
			items, err = s.addEditedLine(ctx, order, items, edit.ProductID, edit.UnitQty, enum.PricingTypeUnit)
			if err != nil {
				return err
			}
		}
	}

	// Drop lines zeroed out by the edit
	kept := items[:0]
	for _, item := range items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	items = kept

	after := stockDecrements(items)
	if err := s.reconcileStock(ctx, before, after); err != nil {
		return err
	}

	pallets := ordering.SummarizePallets(items)
	order.SubTotal = ordering.SubTotal(items)
	order.ShippingTotal = ordering.ShippingTotal(items) + order.Store.ShippingCost
	order.Total = order.SubTotal + order.ShippingTotal + order.PalletCharge
	order.TotalBoxes = pallets.TotalBoxes

	if err := s.orderRepo.ReplaceItems(ctx, orderID, toOrderItems(items)); err != nil {
		return err
	}

	order.Items = nil
	order.Store = entity.Store{}
	return s.orderRepo.Update(ctx, order)
}

// applyCellEdit sets the box and unit quantities of one (product, order)
// cell and reports which pricing types had an existing line to edit
func applyCellEdit(items []ordering.Item, edit ordering.CellEdit) ([]ordering.Item, bool, bool) {
	var boxApplied, unitApplied bool
	for i := range items {
		if items[i].ProductID != edit.ProductID {
			continue
		}
		if items[i].PricingType == enum.PricingTypeBox {
			items[i].Quantity = edit.BoxQty
			boxApplied = true
		} else {
			items[i].Quantity = edit.UnitQty
			unitApplied = true
		}
	}
	return items, boxApplied, unitApplied
}

// addEditedLine creates the order line an edit targets when the order has
// no line of that pricing type for the product yet
func (s *PurchaseOrderService) addEditedLine(ctx context.Context, order *entity.Order, items []ordering.Item, productID uuid.UUID, quantity int, pricingType enum.PricingType) ([]ordering.Item, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", productID))
	}

	price := ordering.ResolveUnitPrice(product, pricingType, order.Store.PriceCategory)
	items, err = ordering.Apply(items, ordering.Add(product, quantity, pricingType, price))
	if err != nil {
		return nil, translateItemError(err)
	}
	return items, nil
}

func (s *PurchaseOrderService) reconcileStock(ctx context.Context, before, after map[uuid.UUID]int) error {
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
			return apperror.NewBadRequestError("Insufficient stock for edited quantities")
		}
	}
	if len(increments) > 0 {
		return s.productRepo.AtomicIncrementBatch(ctx, increments)
	}
	return nil
}

// POItemInput is one editable line on a purchase order being created
type POItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  float64
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	VendorID  uuid.UUID
	UserID    uuid.UUID
	OrderDate time.Time
	StartDate time.Time
	EndDate   time.Time
	// Items overrides the aggregated quantities; empty means take the
	// aggregation as-is with zero unit costs.
	Items []POItemInput
}

// CreateFromOrders creates a purchase order from the per-product aggregation
// of store orders in the date range. Contribution tuples are stored on each
// line for traceability.
func (s *PurchaseOrderService) CreateFromOrders(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	orders, err := s.orderRepo.ListByDateRange(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperror.NewBadRequestError("No orders found in the given date range")
	}

	aggregates := ordering.AggregateForPO(orders)

	overrides := make(map[uuid.UUID]POItemInput, len(input.Items))
	for _, item := range input.Items {
		overrides[item.ProductID] = item
	}

	var poItems []entity.PurchaseOrderItem
	var total int64
	for _, agg := range aggregates {
		quantity := agg.POQuantity
		var unitCost int64
		if override, ok := overrides[agg.ProductID]; ok {
			quantity = override.Quantity
			unitCost = toCents(override.UnitCost)
		}
		if quantity <= 0 {
			continue
		}

		lineTotal := unitCost * int64(quantity)
		total += lineTotal
		poItems = append(poItems, entity.PurchaseOrderItem{
			ProductID:     agg.ProductID,
			ProductName:   agg.ProductName,
			Quantity:      quantity,
			UnitCost:      unitCost,
			Total:         lineTotal,
			Contributions: agg.Contributions,
		})
	}

	if len(poItems) == 0 {
		return nil, apperror.NewBadRequestError("Purchase order has no lines after applying overrides")
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	po := &entity.PurchaseOrder{
		VendorID:  vendor.ID,
		UserID:    input.UserID,
		PONumber:  utils.GenerateReferenceNo("PO"),
		Status:    enum.PurchaseOrderStatusDraft,
		OrderDate: orderDate,
		Total:     total,
		Items:     poItems,
	}

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	return s.poRepo.GetWithDetails(ctx, po.ID)
}

// GetPurchaseOrder retrieves a purchase order with its vendor and items
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return po, nil
}

// ListPurchaseOrders lists purchase orders with filtering
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params *repository.PurchaseOrderFilterParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	pos, total, err := s.poRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(pos, pag), nil
}

// UpdatePurchaseOrderItem updates the quantity and unit cost of one PO line
func (s *PurchaseOrderService) UpdatePurchaseOrderItem(ctx context.Context, poID, itemID uuid.UUID, quantity int, unitCost float64) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetWithDetails(ctx, poID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if po.Status == enum.PurchaseOrderStatusReceived {
		return nil, apperror.NewBadRequestError("Received purchase orders cannot be edited")
	}
	if quantity < 1 {
		return nil, apperror.NewUnprocessableError("Quantity must be at least 1")
	}

	var target *entity.PurchaseOrderItem
	for i := range po.Items {
		if po.Items[i].ID == itemID {
			target = &po.Items[i]
			break
		}
	}
	if target == nil {
		return nil, apperror.NewNotFoundError("Purchase order item")
	}

	target.Quantity = quantity
	target.UnitCost = toCents(unitCost)
	target.Total = target.UnitCost * int64(target.Quantity)

	if err := s.poRepo.UpdateItem(ctx, target); err != nil {
		return nil, err
	}

	var total int64
	for _, item := range po.Items {
		total += item.Total
	}
	po.Total = total
	po.Items = nil
	po.Vendor = entity.Vendor{}
	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	return s.poRepo.GetWithDetails(ctx, poID)
}

// UpdateQualityCheck records the quality check result on a purchase order
func (s *PurchaseOrderService) UpdateQualityCheck(ctx context.Context, poID uuid.UUID, passed bool, notes *string) error {
	po, err := s.poRepo.GetByID(ctx, poID)
	if err != nil {
		return err
	}
	if po == nil {
		return apperror.NewNotFoundError("Purchase order")
	}

	po.QualityPassed = &passed
	po.QualityNotes = notes
	return s.poRepo.Update(ctx, po)
}

// UpdateStatus moves a purchase order through its lifecycle. Receiving a PO
// increments stock for every line.
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, poID uuid.UUID, status enum.PurchaseOrderStatus) error {
	po, err := s.poRepo.GetWithDetails(ctx, poID)
	if err != nil {
		return err
	}
	if po == nil {
		return apperror.NewNotFoundError("Purchase order")
	}
	if po.Status == enum.PurchaseOrderStatusReceived {
		return apperror.NewBadRequestError("Purchase order has already been received")
	}

	if status == enum.PurchaseOrderStatusReceived {
		increments := make(map[uuid.UUID]int, len(po.Items))
		for _, item := range po.Items {
			increments[item.ProductID] += item.Quantity
		}
		if err := s.productRepo.AtomicIncrementBatch(ctx, increments); err != nil {
			return err
		}
	}

	return s.poRepo.UpdateStatus(ctx, poID, status)
}

// UpdatePaymentStatus updates the payment status of a purchase order
func (s *PurchaseOrderService) UpdatePaymentStatus(ctx context.Context, poID uuid.UUID, status enum.PaymentStatus) error {
	po, err := s.poRepo.GetByID(ctx, poID)
	if err != nil {
		return err
	}
	if po == nil {
		return apperror.NewNotFoundError("Purchase order")
	}

	return s.poRepo.UpdatePaymentStatus(ctx, poID, status)
}

// DeletePurchaseOrder deletes a draft purchase order
func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, poID uuid.UUID) error {
	po, err := s.poRepo.GetByID(ctx, poID)
	if err != nil {
		return err
	}
	if po == nil {
		return apperror.NewNotFoundError("Purchase order")
	}
	if po.Status != enum.PurchaseOrderStatusDraft {
		return apperror.NewBadRequestError(fmt.Sprintf("Purchase orders in status %s cannot be deleted", po.Status))
	}

	return s.poRepo.Delete(ctx, poID)
}
