package service

import (
	"context"
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*OrderService, *fakeProductRepo, *fakeStoreRepo, *fakeOrderRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	storeRepo := newFakeStoreRepo()
	orderRepo := newFakeOrderRepo(storeRepo)
	return NewOrderService(orderRepo, productRepo, storeRepo), productRepo, storeRepo, orderRepo
}

func TestResolveQuickAdd(t *testing.T) {
	svc, productRepo, _, _ := newOrderFixture(t)
	apples := &entity.Product{Name: "Apples", ShortCode: "03", SalesMode: enum.SalesModeBoth}
	require.NoError(t, productRepo.Create(context.Background(), apples))

	result, err := svc.ResolveQuickAdd(context.Background(), "03x2")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, apples.ID, result.Product.ID)
	require.Equal(t, 2, result.Quantity)
	require.Equal(t, enum.PricingTypeBox, result.PricingType)

	// Single digit pads to the stored code, quantity defaults to 1
	result, err = svc.ResolveQuickAdd(context.Background(), "3")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, apples.ID, result.Product.ID)
	require.Equal(t, 1, result.Quantity)

	// Unit flag
	result, err = svc.ResolveQuickAdd(context.Background(), "3u5")
	require.NoError(t, err)
	require.Equal(t, enum.PricingTypeUnit, result.PricingType)
	require.Equal(t, 5, result.Quantity)

	// Free text is not a quick-add code
	result, err = svc.ResolveQuickAdd(context.Background(), "apples")
	require.NoError(t, err)
	require.Nil(t, result)

	// Unknown code
	_, err = svc.ResolveQuickAdd(context.Background(), "99x1")
	require.Error(t, err)
}

func TestResolveQuickAddEscalatesToNameSearch(t *testing.T) {
	svc, productRepo, _, _ := newOrderFixture(t)
	salsa := &entity.Product{Name: "Costena 77 Salsa", ShortCode: "03", SalesMode: enum.SalesModeBoth}
	require.NoError(t, productRepo.Create(context.Background(), salsa))

	// "77" is a valid code with no short-code or positional match; the raw
	// input escalates to the catalog search and the first hit wins
	result, err := svc.ResolveQuickAdd(context.Background(), "77")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, salsa.ID, result.Product.ID)
	require.Equal(t, 1, result.Quantity)
	require.Equal(t, enum.PricingTypeBox, result.PricingType)
}

func TestResolveQuickAddPositionalFallback(t *testing.T) {
	svc, productRepo, _, _ := newOrderFixture(t)
	// No stored short codes; position in the name-ordered catalog decides
	bananas := &entity.Product{Name: "Bananas", SalesMode: enum.SalesModeBoth}
	cherries := &entity.Product{Name: "Cherries", SalesMode: enum.SalesModeBoth}
	require.NoError(t, productRepo.Create(context.Background(), bananas))
	require.NoError(t, productRepo.Create(context.Background(), cherries))

	result, err := svc.ResolveQuickAdd(context.Background(), "02")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, cherries.ID, result.Product.ID)
}

func TestCreateOrderTierPricing(t *testing.T) {
	svc, productRepo, storeRepo, _ := newOrderFixture(t)

	product := &entity.Product{
		Name:      "Apples",
		ShortCode: "03",
		APrice:    1000,
		BPrice:    950,
		SalesMode: enum.SalesModeBoth,
		Quantity:  10,
	}
	require.NoError(t, productRepo.Create(context.Background(), product))

	store := &entity.Store{Name: "Corner Market", PriceCategory: enum.PriceCategoryA}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID:         store.ID,
		BillingAddress:  entity.Address{Line1: "1 Main St", City: "Springfield"},
		ShippingAddress: entity.Address{Line1: "1 Main St", City: "Springfield"},
		PalletCharge:    5,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Equal(t, int64(1000), order.Items[0].UnitPrice)
	require.Equal(t, 2, order.Items[0].Quantity)
	require.Equal(t, int64(2000), order.SubTotal)
	require.Equal(t, int64(500), order.PalletCharge)
	require.Equal(t, int64(2500), order.Total)
	require.Equal(t, 2, order.TotalBoxes)
	require.NotEmpty(t, order.InvoiceNo)

	// Stock was decremented
	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 8, p.Quantity)
}

func TestCreateOrderAggregatesDuplicateLines(t *testing.T) {
	svc, productRepo, storeRepo, _ := newOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market", PriceCategory: enum.PriceCategoryA}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2, PricingType: enum.PricingTypeBox},
			{ProductID: product.ID, Quantity: 3, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Equal(t, 5, order.Items[0].Quantity)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	svc, productRepo, storeRepo, orderRepo := newOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 1}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2, PricingType: enum.PricingTypeBox},
		},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Insufficient stock")

	// Nothing was created and stock is untouched
	require.Empty(t, orderRepo.orders)
	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 1, p.Quantity)
}

func TestCreateOrderRejectsSalesModeViolation(t *testing.T) {
	svc, productRepo, storeRepo, _ := newOrderFixture(t)

	// Case-only product cannot be sold by the unit
	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeCase, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1, PricingType: enum.PricingTypeUnit},
		},
	})
	require.Error(t, err)
}

func TestUpdateOrderItemsSetQtyAdjustsStock(t *testing.T) {
	svc, productRepo, storeRepo, _ := newOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market", PriceCategory: enum.PriceCategoryA}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderItems(context.Background(), order.ID, []ItemOpInput{
		{Op: "set_qty", Index: 0, Value: "5"},
	})
	require.NoError(t, err)
	require.Equal(t, 5, updated.Items[0].Quantity)
	require.Equal(t, int64(5000), updated.SubTotal)

	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 5, p.Quantity)
}

func TestUpdateOrderItemsRejectsCancelledOrder(t *testing.T) {
	svc, productRepo, storeRepo, _ := newOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelOrder(context.Background(), order.ID))

	_, err = svc.UpdateOrderItems(context.Background(), order.ID, []ItemOpInput{
		{Op: "remove", Index: 0},
	})
	require.Error(t, err)
}

func TestCancelOrderRestocks(t *testing.T) {
	svc, productRepo, storeRepo, orderRepo := newOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 4, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 6, p.Quantity)

	require.NoError(t, svc.CancelOrder(context.Background(), order.ID))

	p, _ = productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 10, p.Quantity)
	require.Equal(t, enum.OrderStatusCancelled, orderRepo.orders[order.ID].Status)

	// Cancelling twice is rejected
	require.Error(t, svc.CancelOrder(context.Background(), order.ID))
}

func TestRecentProductsTracksAdds(t *testing.T) {
	svc, productRepo, storeRepo, _ := newOrderFixture(t)

	a := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	b := &entity.Product{Name: "Bananas", APrice: 800, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), a))
	require.NoError(t, productRepo.Create(context.Background(), b))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	userID := uuid.New()
	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		UserID:  userID,
		Items: []OrderItemInput{
			{ProductID: a.ID, Quantity: 1, PricingType: enum.PricingTypeBox},
			{ProductID: b.ID, Quantity: 1, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)

	ids := svc.RecentProductIDs(userID)
	require.Equal(t, []uuid.UUID{b.ID, a.ID}, ids)
}

func TestRecentProductsAreKeptPerUser(t *testing.T) {
	svc, productRepo, storeRepo, _ := newOrderFixture(t)

	a := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	b := &entity.Product{Name: "Bananas", APrice: 800, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), a))
	require.NoError(t, productRepo.Create(context.Background(), b))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		UserID:  alice,
		Items:   []OrderItemInput{{ProductID: a.ID, Quantity: 1, PricingType: enum.PricingTypeBox}},
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), &CreateOrderInput{
		StoreID: store.ID,
		UserID:  bob,
		Items:   []OrderItemInput{{ProductID: b.ID, Quantity: 1, PricingType: enum.PricingTypeBox}},
	})
	require.NoError(t, err)

	require.Equal(t, []uuid.UUID{a.ID}, svc.RecentProductIDs(alice))
	require.Equal(t, []uuid.UUID{b.ID}, svc.RecentProductIDs(bob))
	require.Empty(t, svc.RecentProductIDs(uuid.New()))
}
