package service

import (
	"context"
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/stretchr/testify/require"
)

func newPreOrderFixture(t *testing.T) (*PreOrderService, *fakeProductRepo, *fakeStoreRepo, *fakePreOrderRepo, *fakePriceListRepo, *fakeOrderRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	storeRepo := newFakeStoreRepo()
	orderRepo := newFakeOrderRepo(storeRepo)
	preOrderRepo := newFakePreOrderRepo(orderRepo)
	priceListRepo := newFakePriceListRepo()
	svc := NewPreOrderService(preOrderRepo, productRepo, storeRepo, priceListRepo)
	return svc, productRepo, storeRepo, preOrderRepo, priceListRepo, orderRepo
}

func TestCreatePreOrderDoesNotTouchStock(t *testing.T) {
	svc, productRepo, storeRepo, _, _, _ := newPreOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 3}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market", PriceCategory: enum.PriceCategoryA}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	// Quantity exceeds stock on purpose; pre-orders do not reserve stock
	preOrder, err := svc.CreatePreOrder(context.Background(), &CreatePreOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 10, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)
	require.Equal(t, enum.PreOrderStatusPending, preOrder.Status)
	require.Equal(t, int64(10000), preOrder.SubTotal)
	require.NotEmpty(t, preOrder.ReferenceNo)

	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 3, p.Quantity)
}

func TestCreatePreOrderAppliesPriceListOverride(t *testing.T) {
	svc, productRepo, storeRepo, _, priceListRepo, _ := newPreOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market", PriceCategory: enum.PriceCategoryA}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	list := &entity.PriceList{
		Name:   "Summer promo",
		Active: true,
		Items:  []entity.PriceListItem{{ProductID: product.ID, BoxPrice: 700}},
	}
	require.NoError(t, priceListRepo.Create(context.Background(), list))

	preOrder, err := svc.CreatePreOrder(context.Background(), &CreatePreOrderInput{
		StoreID:     store.ID,
		PriceListID: &list.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)
	require.Len(t, preOrder.Items, 1)
	require.Equal(t, int64(700), preOrder.Items[0].UnitPrice)
	require.Equal(t, int64(1400), preOrder.SubTotal)
}

func TestCreatePreOrderRejectsProductOffAttachedList(t *testing.T) {
	svc, productRepo, storeRepo, _, priceListRepo, _ := newPreOrderFixture(t)

	onList := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth}
	offList := &entity.Product{Name: "Bananas", APrice: 800, SalesMode: enum.SalesModeBoth}
	require.NoError(t, productRepo.Create(context.Background(), onList))
	require.NoError(t, productRepo.Create(context.Background(), offList))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	list := &entity.PriceList{
		Name:   "Summer promo",
		Active: true,
		Items:  []entity.PriceListItem{{ProductID: onList.ID, BoxPrice: 700}},
	}
	require.NoError(t, priceListRepo.Create(context.Background(), list))

	_, err := svc.CreatePreOrder(context.Background(), &CreatePreOrderInput{
		StoreID:     store.ID,
		PriceListID: &list.ID,
		Items: []OrderItemInput{
			{ProductID: offList.ID, Quantity: 1, PricingType: enum.PricingTypeBox},
		},
	})
	require.Error(t, err)
}

func TestConfirmPreOrderCreatesOrderAndDecrementsStock(t *testing.T) {
	svc, productRepo, storeRepo, preOrderRepo, _, orderRepo := newPreOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market", PriceCategory: enum.PriceCategoryA}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	preOrder, err := svc.CreatePreOrder(context.Background(), &CreatePreOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 4, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)

	order, err := svc.ConfirmPreOrder(context.Background(), preOrder.ID)
	require.NoError(t, err)
	require.Equal(t, preOrder.SubTotal, order.SubTotal)
	require.Equal(t, preOrder.Total, order.Total)
	require.Len(t, order.Items, 1)

	p, _ := productRepo.GetByID(context.Background(), product.ID)
	require.Equal(t, 6, p.Quantity)

	stored := preOrderRepo.preOrders[preOrder.ID]
	require.Equal(t, enum.PreOrderStatusConfirmed, stored.Status)
	require.NotNil(t, stored.ConvertedOrderID)
	require.Contains(t, orderRepo.orders, *stored.ConvertedOrderID)

	// A second confirmation is rejected
	_, err = svc.ConfirmPreOrder(context.Background(), preOrder.ID)
	require.Error(t, err)
}

func TestConfirmPreOrderInsufficientStock(t *testing.T) {
	svc, productRepo, storeRepo, _, _, orderRepo := newPreOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 2}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	preOrder, err := svc.CreatePreOrder(context.Background(), &CreatePreOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 5, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)

	_, err = svc.ConfirmPreOrder(context.Background(), preOrder.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Insufficient stock")
	require.Empty(t, orderRepo.orders)
}

func TestDeletePreOrderRejectsConfirmed(t *testing.T) {
	svc, productRepo, storeRepo, _, _, _ := newPreOrderFixture(t)

	product := &entity.Product{Name: "Apples", APrice: 1000, SalesMode: enum.SalesModeBoth, Quantity: 10}
	require.NoError(t, productRepo.Create(context.Background(), product))
	store := &entity.Store{Name: "Corner Market"}
	require.NoError(t, storeRepo.Create(context.Background(), store))

	preOrder, err := svc.CreatePreOrder(context.Background(), &CreatePreOrderInput{
		StoreID: store.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1, PricingType: enum.PricingTypeBox},
		},
	})
	require.NoError(t, err)

	_, err = svc.ConfirmPreOrder(context.Background(), preOrder.ID)
	require.NoError(t, err)

	require.Error(t, svc.DeletePreOrder(context.Background(), preOrder.ID))
}
