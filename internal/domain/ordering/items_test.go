package ordering

import (
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, mode enum.SalesMode) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		Name:         name,
		ShortCode:    "01",
		SalesMode:    mode,
		Price:        250,
		APrice:       1000,
		ShippingCost: 50,
	}
}

func TestAddAppendsSnapshot(t *testing.T) {
	p := testProduct("Tomatoes", enum.SalesModeBoth)

	items, err := Apply(nil, Add(p, 2, enum.PricingTypeBox, 1000))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, p.ID, items[0].ProductID)
	require.Equal(t, "Tomatoes", items[0].ProductName)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, int64(1000), items[0].UnitPrice)
	require.Equal(t, int64(50), items[0].ShippingCost)
}

func TestAddMergesOnProductAndPricingType(t *testing.T) {
	p := testProduct("Tomatoes", enum.SalesModeBoth)

	items, err := Apply(nil, Add(p, 3, enum.PricingTypeBox, 1000))
	require.NoError(t, err)
	items, err = Apply(items, Add(p, 4, enum.PricingTypeBox, 1000))
	require.NoError(t, err)

	require.Len(t, items, 1)
	require.Equal(t, 7, items[0].Quantity)
}

func TestAddSameProductDifferentPricingTypeIsSeparateLine(t *testing.T) {
	p := testProduct("Tomatoes", enum.SalesModeBoth)

	items, err := Apply(nil, Add(p, 1, enum.PricingTypeBox, 1000))
	require.NoError(t, err)
	items, err = Apply(items, Add(p, 1, enum.PricingTypeUnit, 250))
	require.NoError(t, err)

	require.Len(t, items, 2)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	p := testProduct("Tomatoes", enum.SalesModeBoth)

	_, err := Apply(nil, Add(p, 0, enum.PricingTypeBox, 1000))
	require.ErrorIs(t, err, ErrQuantityNotPositive)
}

func TestSalesModeGating(t *testing.T) {
	caseOnly := testProduct("Cases Only", enum.SalesModeCase)
	unitOnly := testProduct("Units Only", enum.SalesModeUnit)
	both := testProduct("Either", enum.SalesModeBoth)

	_, err := Apply(nil, Add(caseOnly, 1, enum.PricingTypeUnit, 250))
	var modeErr *SalesModeError
	require.ErrorAs(t, err, &modeErr)

	_, err = Apply(nil, Add(unitOnly, 1, enum.PricingTypeBox, 1000))
	require.ErrorAs(t, err, &modeErr)

	_, err = Apply(nil, Add(caseOnly, 1, enum.PricingTypeBox, 1000))
	require.NoError(t, err)
	_, err = Apply(nil, Add(unitOnly, 1, enum.PricingTypeUnit, 250))
	require.NoError(t, err)
	_, err = Apply(nil, Add(both, 1, enum.PricingTypeBox, 1000))
	require.NoError(t, err)
	_, err = Apply(nil, Add(both, 1, enum.PricingTypeUnit, 250))
	require.NoError(t, err)
}

func TestRejectionLeavesItemsUntouched(t *testing.T) {
	caseOnly := testProduct("Cases Only", enum.SalesModeCase)
	items, err := Apply(nil, Add(caseOnly, 2, enum.PricingTypeBox, 1000))
	require.NoError(t, err)

	_, err = Apply(items, Add(caseOnly, 1, enum.PricingTypeUnit, 250))
	require.Error(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQtyFloorsAtOne(t *testing.T) {
	p := testProduct("Tomatoes", enum.SalesModeBoth)
	items, err := Apply(nil, Add(p, 5, enum.PricingTypeBox, 1000))
	require.NoError(t, err)

	for _, delta := range []int{-1, -100, -3, -1000} {
		items, err = Apply(items, UpdateQty(0, delta))
		require.NoError(t, err)
		require.GreaterOrEqual(t, items[0].Quantity, 1)
	}
	require.Equal(t, 1, items[0].Quantity)

	items, err = Apply(items, UpdateQty(0, 4))
	require.NoError(t, err)
	require.Equal(t, 5, items[0].Quantity)
}

func TestSetQtyParsesAndClamps(t *testing.T) {
	p := testProduct("Tomatoes", enum.SalesModeBoth)
	items, err := Apply(nil, Add(p, 5, enum.PricingTypeBox, 1000))
	require.NoError(t, err)

	items, err = Apply(items, SetQty(0, "12"))
	require.NoError(t, err)
	require.Equal(t, 12, items[0].Quantity)

	items, err = Apply(items, SetQty(0, "not-a-number"))
	require.NoError(t, err)
	require.Equal(t, 1, items[0].Quantity)

	items, err = Apply(items, SetQty(0, ""))
	require.NoError(t, err)
	require.Equal(t, 1, items[0].Quantity)

	items, err = Apply(items, SetQty(0, "-4"))
	require.NoError(t, err)
	require.Equal(t, 1, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	a := testProduct("A", enum.SalesModeBoth)
	b := testProduct("B", enum.SalesModeBoth)

	items, err := Apply(nil, Add(a, 1, enum.PricingTypeBox, 1000))
	require.NoError(t, err)
	items, err = Apply(items, Add(b, 1, enum.PricingTypeBox, 1200))
	require.NoError(t, err)

	items, err = Apply(items, Remove(0))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, b.ID, items[0].ProductID)

	_, err = Apply(items, Remove(5))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPriceSnapshotImmutability(t *testing.T) {
	p := testProduct("Tomatoes", enum.SalesModeBoth)
	price := ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryA)

	items, err := Apply(nil, Add(p, 2, enum.PricingTypeBox, price))
	require.NoError(t, err)

	// Later changes to the product's price table must not alter the line
	p.APrice = 9999
	p.Price = 9999
	require.Equal(t, int64(1000), items[0].UnitPrice)
	require.Equal(t, int64(2000), items[0].LineTotal())
}

func TestTotals(t *testing.T) {
	a := testProduct("A", enum.SalesModeBoth)
	b := testProduct("B", enum.SalesModeBoth)

	items, err := Apply(nil, Add(a, 2, enum.PricingTypeBox, 1000))
	require.NoError(t, err)
	items, err = Apply(items, Add(b, 3, enum.PricingTypeUnit, 250))
	require.NoError(t, err)

	require.Equal(t, int64(2750), SubTotal(items))
	require.Equal(t, int64(250), ShippingTotal(items))
}
