package service

import (
	"context"
	"strings"
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (*ProductService, *fakeProductRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	return NewProductService(productRepo, nil), productRepo
}

func TestCreateProductConvertsPricesToCents(t *testing.T) {
	svc, _ := newProductFixture(t)

	product, err := svc.CreateProduct(context.Background(), &ProductInput{
		Name:        "Apples",
		ShortCode:   "03",
		Price:       2.50,
		PricePerBox: 24.99,
		APrice:      22.00,
		SalesMode:   enum.SalesModeBoth,
		Quantity:    10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(250), product.Price)
	require.Equal(t, int64(2499), product.PricePerBox)
	require.Equal(t, int64(2200), product.APrice)
}

func TestCreateProductRejectsDuplicateShortCode(t *testing.T) {
	svc, productRepo := newProductFixture(t)
	require.NoError(t, productRepo.Create(context.Background(),
		&entity.Product{Name: "Apples", ShortCode: "03"}))

	_, err := svc.CreateProduct(context.Background(), &ProductInput{
		Name:      "Pears",
		ShortCode: "03",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Short code already in use")
}

func TestGetLowStockProducts(t *testing.T) {
	svc, productRepo := newProductFixture(t)
	require.NoError(t, productRepo.Create(context.Background(),
		&entity.Product{Name: "Apples", Quantity: 2, QuantityAlert: 5}))
	require.NoError(t, productRepo.Create(context.Background(),
		&entity.Product{Name: "Pears", Quantity: 20, QuantityAlert: 5}))

	low, err := svc.GetLowStockProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "Apples", low[0].Name)
}

func TestExportCSV(t *testing.T) {
	svc, productRepo := newProductFixture(t)
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		Name:        "Apples",
		ShortCode:   "03",
		Price:       250,
		PricePerBox: 2499,
		SalesMode:   enum.SalesModeBoth,
		Quantity:    10,
	}))

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "Short Code")
	require.Contains(t, lines[1], "Apples")
	require.Contains(t, lines[1], "2.50")
	require.Contains(t, lines[1], "24.99")
}
