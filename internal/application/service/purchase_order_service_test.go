package service

import (
	"context"
	"testing"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newPOFixture(t *testing.T) (*PurchaseOrderService, *fakeProductRepo, *fakeStoreRepo, *fakeOrderRepo, *fakeVendorRepo, *fakePurchaseOrderRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	storeRepo := newFakeStoreRepo()
	orderRepo := newFakeOrderRepo(storeRepo)
	vendorRepo := newFakeVendorRepo()
	poRepo := newFakePurchaseOrderRepo()
	svc := NewPurchaseOrderService(poRepo, orderRepo, productRepo, vendorRepo)
	return svc, productRepo, storeRepo, orderRepo, vendorRepo, poRepo
}

func seedOrder(t *testing.T, orderRepo *fakeOrderRepo, store *entity.Store, date time.Time, items ...entity.OrderItem) *entity.Order {
	t.Helper()
	order := &entity.Order{
		StoreID:   store.ID,
		InvoiceNo: "INV-" + uuid.NewString()[:8],
		OrderDate: date,
		Items:     items,
	}
	require.NoError(t, orderRepo.Create(context.Background(), order))
	return order
}

func TestBuildAggregationSumsCells(t *testing.T) {
	svc, _, storeRepo, orderRepo, _, _ := newPOFixture(t)

	storeA := &entity.Store{Name: "Alpha Market"}
	storeB := &entity.Store{Name: "Beta Grocers"}
	require.NoError(t, storeRepo.Create(context.Background(), storeA))
	require.NoError(t, storeRepo.Create(context.Background(), storeB))

	productID := uuid.New()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Two orders from the same store contribute to the same cell
	o1 := seedOrder(t, orderRepo, storeA, day,
		entity.OrderItem{ProductID: productID, ProductName: "Apples", Quantity: 3, PricingType: enum.PricingTypeBox})
	o2 := seedOrder(t, orderRepo, storeA, day.Add(24*time.Hour),
		entity.OrderItem{ProductID: productID, ProductName: "Apples", Quantity: 2, PricingType: enum.PricingTypeBox})
	seedOrder(t, orderRepo, storeB, day,
		entity.OrderItem{ProductID: productID, ProductName: "Apples", Quantity: 4, PricingType: enum.PricingTypeBox},
		entity.OrderItem{ProductID: productID, ProductName: "Apples", Quantity: 6, PricingType: enum.PricingTypeUnit})

	result, err := svc.BuildAggregation(context.Background(), day, day.Add(48*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 3, result.OrderCount)

	cell := result.Matrix.Cell(productID, storeA.ID)
	require.NotNil(t, cell)
	require.Equal(t, 5, cell.BoxQty)
	require.ElementsMatch(t, []uuid.UUID{o1.ID, o2.ID}, cell.OrderIDs)

	cellB := result.Matrix.Cell(productID, storeB.ID)
	require.Equal(t, 4, cellB.BoxQty)
	require.Equal(t, 6, cellB.UnitQty)

	require.Equal(t, 9, result.RowTotals[productID].BoxQty)
	require.Equal(t, 6, result.RowTotals[productID].UnitQty)
	require.Equal(t, 5, result.ColumnTotals[storeA.ID].BoxQty)

	require.Len(t, result.Products, 1)
	require.Equal(t, 9, result.Products[0].TotalBoxes)
	require.Equal(t, 6, result.Products[0].TotalUnits)
	require.Equal(t, 15, result.Products[0].POQuantity)
}

func TestBuildAggregationRejectsInvertedRange(t *testing.T) {
	svc, _, _, _, _, _ := newPOFixture(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.BuildAggregation(context.Background(), day, day.Add(-24*time.Hour))
	require.Error(t, err)
}

func TestBuildAggregationExcludesCancelledOrders(t *testing.T) {
	svc, _, storeRepo, orderRepo, _, _ := newPOFixture(t)

	store := &entity.Store{Name: "Alpha Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	productID := uuid.New()

	cancelled := seedOrder(t, orderRepo, store, day,
		entity.OrderItem{ProductID: productID, ProductName: "Apples", Quantity: 3, PricingType: enum.PricingTypeBox})
	cancelled.Status = enum.OrderStatusCancelled

	result, err := svc.BuildAggregation(context.Background(), day, day)
	require.NoError(t, err)
	require.Equal(t, 0, result.OrderCount)
	require.Nil(t, result.Matrix.Cell(productID, store.ID))
}

func TestCreateFromOrders(t *testing.T) {
	svc, _, storeRepo, orderRepo, vendorRepo, _ := newPOFixture(t)

	store := &entity.Store{Name: "Alpha Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))
	vendor := &entity.Vendor{Name: "Fresh Farms"}
	require.NoError(t, vendorRepo.Create(context.Background(), vendor))

	apples := uuid.New()
	pears := uuid.New()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	seedOrder(t, orderRepo, store, day,
		entity.OrderItem{ProductID: apples, ProductName: "Apples", Quantity: 5, PricingType: enum.PricingTypeBox},
		entity.OrderItem{ProductID: pears, ProductName: "Pears", Quantity: 2, PricingType: enum.PricingTypeBox})

	po, err := svc.CreateFromOrders(context.Background(), &CreatePurchaseOrderInput{
		VendorID:  vendor.ID,
		StartDate: day,
		EndDate:   day,
		Items: []POItemInput{
			{ProductID: apples, Quantity: 6, UnitCost: 8.50},
			{ProductID: pears, Quantity: 0}, // dropped
		},
	})
	require.NoError(t, err)
	require.Equal(t, enum.PurchaseOrderStatusDraft, po.Status)
	require.NotEmpty(t, po.PONumber)
	require.Len(t, po.Items, 1)
	require.Equal(t, "Apples", po.Items[0].ProductName)
	require.Equal(t, 6, po.Items[0].Quantity)
	require.Equal(t, int64(850), po.Items[0].UnitCost)
	require.Equal(t, int64(5100), po.Items[0].Total)
	require.Equal(t, int64(5100), po.Total)
	require.Len(t, po.Items[0].Contributions, 1)
	require.Equal(t, "Alpha Market", po.Items[0].Contributions[0].StoreName)
}

func TestCreateFromOrdersEmptyRange(t *testing.T) {
	svc, _, _, _, vendorRepo, _ := newPOFixture(t)
	vendor := &entity.Vendor{Name: "Fresh Farms"}
	require.NoError(t, vendorRepo.Create(context.Background(), vendor))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateFromOrders(context.Background(), &CreatePurchaseOrderInput{
		VendorID:  vendor.ID,
		StartDate: day,
		EndDate:   day,
	})
	require.Error(t, err)
}

func TestSaveMatrixEditsWritesBackToOrder(t *testing.T) {
	svc, productRepo, storeRepo, orderRepo, _, _ := newPOFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Alpha Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	order := seedOrder(t, orderRepo, store, day, entity.OrderItem{
		ProductID:   product.ID,
		ProductName: "Apples",
		Quantity:    3,
		UnitPrice:   1000,
		PricingType: enum.PricingTypeBox,
		Total:       3000,
	})

	result, err := svc.SaveMatrixEdits(context.Background(), day, day, []ordering.CellEdit{
		{ProductID: product.ID, StoreID: store.ID, BoxQty: 5},
	})
	require.NoError(t, err)
	require.Empty(t, result.Conflicts)
	require.Len(t, result.Outcomes, 1)
	require.True(t, result.Outcomes[0].Saved)
	require.Equal(t, order.ID, result.Outcomes[0].OrderID)

	saved := orderRepo.orders[order.ID]
	require.Len(t, saved.Items, 1)
	require.Equal(t, 5, saved.Items[0].Quantity)
	require.Equal(t, int64(5000), saved.SubTotal)

	// Two extra boxes were taken from stock
	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 8, p.Quantity)
}

func TestSaveMatrixEditsCreatesMissingLine(t *testing.T) {
	svc, productRepo, storeRepo, orderRepo, _, _ := newPOFixture(t)

	product := &entity.Product{Name: "Apples", Price: 200, APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Alpha Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	order := seedOrder(t, orderRepo, store, day, entity.OrderItem{
		ProductID:   product.ID,
		ProductName: "Apples",
		Quantity:    2,
		UnitPrice:   1000,
		PricingType: enum.PricingTypeBox,
		Total:       2000,
	})

	// The unit component has no existing line; the save creates one at the
	// product's unit price instead of dropping it
	result, err := svc.SaveMatrixEdits(context.Background(), day, day, []ordering.CellEdit{
		{ProductID: product.ID, StoreID: store.ID, BoxQty: 2, UnitQty: 3},
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	require.True(t, result.Outcomes[0].Saved)

	saved := orderRepo.orders[order.ID]
	require.Len(t, saved.Items, 2)

	var unitQty int
	var unitPrice int64
	for _, item := range saved.Items {
		if item.PricingType == enum.PricingTypeUnit {
			unitQty = item.Quantity
			unitPrice = item.UnitPrice
		}
	}
	require.Equal(t, 3, unitQty)
	require.Equal(t, int64(200), unitPrice)
	require.Equal(t, int64(2600), saved.SubTotal)

	// Three extra units came out of stock
	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 7, p.Quantity)
}

func TestSaveMatrixEditsRejectsSalesModeViolation(t *testing.T) {
	svc, productRepo, storeRepo, orderRepo, _, _ := newPOFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeCase, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Alpha Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	order := seedOrder(t, orderRepo, store, day, entity.OrderItem{
		ProductID:   product.ID,
		ProductName: "Apples",
		Quantity:    2,
		UnitPrice:   1000,
		PricingType: enum.PricingTypeBox,
		Total:       2000,
	})

	result, err := svc.SaveMatrixEdits(context.Background(), day, day, []ordering.CellEdit{
		{ProductID: product.ID, StoreID: store.ID, BoxQty: 2, UnitQty: 4},
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	require.False(t, result.Outcomes[0].Saved)
	require.NotEmpty(t, result.Outcomes[0].Error)

	// The order and stock are untouched
	saved := orderRepo.orders[order.ID]
	require.Len(t, saved.Items, 1)
	require.Equal(t, 2, saved.Items[0].Quantity)
	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 10, p.Quantity)
}

func TestSaveMatrixEditsReportsConflicts(t *testing.T) {
	svc, _, storeRepo, orderRepo, _, _ := newPOFixture(t)

	store := &entity.Store{Name: "Alpha Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))
	productID := uuid.New()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Two orders feed the same cell, so the edit is ambiguous
	seedOrder(t, orderRepo, store, day,
		entity.OrderItem{ProductID: productID, ProductName: "Apples", Quantity: 1, PricingType: enum.PricingTypeBox})
	seedOrder(t, orderRepo, store, day,
		entity.OrderItem{ProductID: productID, ProductName: "Apples", Quantity: 2, PricingType: enum.PricingTypeBox})

	result, err := svc.SaveMatrixEdits(context.Background(), day, day, []ordering.CellEdit{
		{ProductID: productID, StoreID: store.ID, BoxQty: 9},
	})
	require.NoError(t, err)
	require.Empty(t, result.Outcomes)
	require.Len(t, result.Conflicts, 1)
}

func TestUpdateStatusReceivedIncrementsStock(t *testing.T) {
	svc, productRepo, storeRepo, orderRepo, vendorRepo, _ := newPOFixture(t)

	product := &entity.Product{Name: "Apples", SalesMode: enum.SalesModeBoth, Quantity: 1}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Alpha Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))
	vendor := &entity.Vendor{Name: "Fresh Farms"}
	require.NoError(t, vendorRepo.Create(context.Background(), vendor))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	seedOrder(t, orderRepo, store, day,
		entity.OrderItem{ProductID: product.ID, ProductName: "Apples", Quantity: 7, PricingType: enum.PricingTypeBox})

	po, err := svc.CreateFromOrders(context.Background(), &CreatePurchaseOrderInput{
		VendorID:  vendor.ID,
		StartDate: day,
		EndDate:   day,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), po.ID, enum.PurchaseOrderStatusOrdered))
	require.NoError(t, svc.UpdateStatus(context.Background(), po.ID, enum.PurchaseOrderStatusReceived))

	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 8, p.Quantity)

	// Received is terminal
	require.Error(t, svc.UpdateStatus(context.Background(), po.ID, enum.PurchaseOrderStatusOrdered))
}
