package ordering

import (
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func matrixFixture() (store1, store2, productA, productB uuid.UUID, orders []entity.Order) {
	store1 = uuid.New()
	store2 = uuid.New()
	productA = uuid.New()
	productB = uuid.New()

	orders = []entity.Order{
		{
			ID:      uuid.New(),
			StoreID: store1,
			Store:   entity.Store{ID: store1, Name: "Acme Deli"},
			Items: []entity.OrderItem{
				{ProductID: productA, ProductName: "Tomatoes", Quantity: 10, PricingType: enum.PricingTypeBox},
				{ProductID: productB, ProductName: "Olive Oil", Quantity: 5, PricingType: enum.PricingTypeUnit},
			},
		},
		{
			ID:      uuid.New(),
			StoreID: store2,
			Store:   entity.Store{ID: store2, Name: "Corner Market"},
			Items: []entity.OrderItem{
				{ProductID: productA, ProductName: "Tomatoes", Quantity: 7, PricingType: enum.PricingTypeBox},
			},
		},
	}
	return
}

func TestBuildMatrix(t *testing.T) {
	store1, store2, productA, productB, orders := matrixFixture()

	m := BuildMatrix(orders)

	cell := m.Cell(productA, store1)
	require.NotNil(t, cell)
	require.Equal(t, 10, cell.BoxQty)
	require.Equal(t, 0, cell.UnitQty)
	require.Equal(t, []uuid.UUID{orders[0].ID}, cell.OrderIDs)

	cell = m.Cell(productA, store2)
	require.NotNil(t, cell)
	require.Equal(t, 7, cell.BoxQty)

	cell = m.Cell(productB, store1)
	require.NotNil(t, cell)
	require.Equal(t, 5, cell.UnitQty)

	require.Nil(t, m.Cell(productB, store2))
	require.Equal(t, "Acme Deli", m.StoreNames[store1])
	require.Equal(t, "Tomatoes", m.ProductNames[productA])
}

func TestBuildMatrixSumsSameCellContributions(t *testing.T) {
	// Two orders from the same store containing the same product: the cell
	// sums contributions and keeps both order ids instead of overwriting.
	store := uuid.New()
	product := uuid.New()
	orders := []entity.Order{
		{
			ID:      uuid.New(),
			StoreID: store,
			Store:   entity.Store{ID: store, Name: "Acme Deli"},
			Items: []entity.OrderItem{
				{ProductID: product, ProductName: "Tomatoes", Quantity: 10, PricingType: enum.PricingTypeBox},
			},
		},
		{
			ID:      uuid.New(),
			StoreID: store,
			Store:   entity.Store{ID: store, Name: "Acme Deli"},
			Items: []entity.OrderItem{
				{ProductID: product, ProductName: "Tomatoes", Quantity: 4, PricingType: enum.PricingTypeBox},
			},
		},
	}

	m := BuildMatrix(orders)
	cell := m.Cell(product, store)
	require.NotNil(t, cell)
	require.Equal(t, 14, cell.BoxQty)
	require.Len(t, cell.OrderIDs, 2)
}

func TestMatrixTotals(t *testing.T) {
	store1, store2, productA, productB, orders := matrixFixture()

	m := BuildMatrix(orders)

	rows := m.RowTotals()
	require.Equal(t, QtyTotal{BoxQty: 17}, rows[productA])
	require.Equal(t, QtyTotal{UnitQty: 5}, rows[productB])

	cols := m.ColumnTotals()
	require.Equal(t, QtyTotal{BoxQty: 10, UnitQty: 5}, cols[store1])
	require.Equal(t, QtyTotal{BoxQty: 7}, cols[store2])
}

func TestMatrixCellOverride(t *testing.T) {
	store1, _, productA, _, orders := matrixFixture()

	m := BuildMatrix(orders)
	m.SetCell(productA, store1, 20, 0)

	require.Equal(t, 20, m.Cell(productA, store1).BoxQty)
	require.Equal(t, QtyTotal{BoxQty: 27}, m.RowTotals()[productA])
}

func TestAggregateForPO(t *testing.T) {
	_, _, productA, productB, orders := matrixFixture()

	aggs := AggregateForPO(orders)
	require.Len(t, aggs, 2)

	// Sorted by product name: Olive Oil, Tomatoes
	require.Equal(t, productB, aggs[0].ProductID)
	require.Equal(t, 5, aggs[0].TotalUnits)
	require.Equal(t, 5, aggs[0].POQuantity)
	require.Len(t, aggs[0].Contributions, 1)

	require.Equal(t, productA, aggs[1].ProductID)
	require.Equal(t, 17, aggs[1].TotalBoxes)
	require.Equal(t, 17, aggs[1].POQuantity)
	require.Len(t, aggs[1].Contributions, 2)
	require.Equal(t, "Acme Deli", aggs[1].Contributions[0].StoreName)
	require.Equal(t, 10, aggs[1].Contributions[0].BoxQty)
	require.Equal(t, "Corner Market", aggs[1].Contributions[1].StoreName)
	require.Equal(t, 7, aggs[1].Contributions[1].BoxQty)
}

func TestGroupEditsByOrder(t *testing.T) {
	store1, store2, productA, productB, orders := matrixFixture()

	m := BuildMatrix(orders)
	edits := []CellEdit{
		{ProductID: productA, StoreID: store1, BoxQty: 12},
		{ProductID: productA, StoreID: store2, BoxQty: 8},
		{ProductID: productB, StoreID: store1, UnitQty: 6},
	}

	grouped, conflicts := GroupEditsByOrder(m, edits)
	require.Empty(t, conflicts)
	require.Len(t, grouped, 2)
	require.Len(t, grouped[orders[0].ID], 2)
	require.Len(t, grouped[orders[1].ID], 1)
}

func TestGroupEditsByOrderFlagsAmbiguousCells(t *testing.T) {
	store := uuid.New()
	product := uuid.New()
	orders := []entity.Order{
		{ID: uuid.New(), StoreID: store, Store: entity.Store{Name: "Acme"},
			Items: []entity.OrderItem{{ProductID: product, ProductName: "T", Quantity: 1, PricingType: enum.PricingTypeBox}}},
		{ID: uuid.New(), StoreID: store, Store: entity.Store{Name: "Acme"},
			Items: []entity.OrderItem{{ProductID: product, ProductName: "T", Quantity: 2, PricingType: enum.PricingTypeBox}}},
	}

	m := BuildMatrix(orders)
	edits := []CellEdit{
		{ProductID: product, StoreID: store, BoxQty: 9},
		{ProductID: uuid.New(), StoreID: store, BoxQty: 1}, // unknown cell
	}

	grouped, conflicts := GroupEditsByOrder(m, edits)
	require.Empty(t, grouped)
	require.Len(t, conflicts, 2)
}
