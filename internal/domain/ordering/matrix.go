package ordering

import (
	"sort"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
)

// MatrixCell holds the quantities one store ordered of one product, with the
// contributing order ids retained. Contributions to the same cell are summed,
// never overwritten.
type MatrixCell struct {
	BoxQty   int         `json:"box_qty"`
	UnitQty  int         `json:"unit_qty"`
	OrderIDs []uuid.UUID `json:"order_ids"`
}

// Matrix is a product-by-store pivot of ordered quantities, used to roll many
// store orders up into one vendor purchase order.
type Matrix struct {
	// Cells is keyed by product id, then store id
	Cells        map[uuid.UUID]map[uuid.UUID]*MatrixCell `json:"cells"`
	ProductNames map[uuid.UUID]string                    `json:"product_names"`
	StoreNames   map[uuid.UUID]string                    `json:"store_names"`
}

// BuildMatrix accumulates every (order, item) pair into its
// (product, store) cell.
func BuildMatrix(orders []entity.Order) *Matrix {
	m := &Matrix{
		Cells:        make(map[uuid.UUID]map[uuid.UUID]*MatrixCell),
		ProductNames: make(map[uuid.UUID]string),
		StoreNames:   make(map[uuid.UUID]string),
	}

	for _, order := range orders {
		m.StoreNames[order.StoreID] = order.Store.Name
		for _, item := range order.Items {
			m.ProductNames[item.ProductID] = item.ProductName
			cell := m.cell(item.ProductID, order.StoreID)

			if item.PricingType == enum.PricingTypeBox {
				cell.BoxQty += item.Quantity
			} else {
				cell.UnitQty += item.Quantity
			}
			cell.OrderIDs = appendOrderID(cell.OrderIDs, order.ID)
		}
	}
	return m
}

func (m *Matrix) cell(productID, storeID uuid.UUID) *MatrixCell {
	row, ok := m.Cells[productID]
	if !ok {
		row = make(map[uuid.UUID]*MatrixCell)
		m.Cells[productID] = row
	}
	cell, ok := row[storeID]
	if !ok {
		cell = &MatrixCell{}
		row[storeID] = cell
	}
	return cell
}

func appendOrderID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// SetCell overrides a cell's quantities. Overrides take precedence over the
// originally fetched values until saved back to the source orders.
func (m *Matrix) SetCell(productID, storeID uuid.UUID, boxQty, unitQty int) {
	cell := m.cell(productID, storeID)
	cell.BoxQty = boxQty
	cell.UnitQty = unitQty
}

// Cell returns the cell for (product, store), or nil when empty
func (m *Matrix) Cell(productID, storeID uuid.UUID) *MatrixCell {
	if row, ok := m.Cells[productID]; ok {
		return row[storeID]
	}
	return nil
}

// QtyTotal is a box/unit quantity pair
type QtyTotal struct {
	BoxQty  int `json:"box_qty"`
	UnitQty int `json:"unit_qty"`
}

// RowTotals sums each product row across all stores
func (m *Matrix) RowTotals() map[uuid.UUID]QtyTotal {
	totals := make(map[uuid.UUID]QtyTotal, len(m.Cells))
	for productID, row := range m.Cells {
		t := QtyTotal{}
		for _, cell := range row {
			t.BoxQty += cell.BoxQty
			t.UnitQty += cell.UnitQty
		}
		totals[productID] = t
	}
	return totals
}

// ColumnTotals sums each store column across all products
func (m *Matrix) ColumnTotals() map[uuid.UUID]QtyTotal {
	totals := make(map[uuid.UUID]QtyTotal)
	for _, row := range m.Cells {
		for storeID, cell := range row {
			t := totals[storeID]
			t.BoxQty += cell.BoxQty
			t.UnitQty += cell.UnitQty
			totals[storeID] = t
		}
	}
	return totals
}

// ProductAggregate is the per-product rollup used to seed a purchase order
type ProductAggregate struct {
	ProductID     uuid.UUID               `json:"product_id"`
	ProductName   string                  `json:"product_name"`
	TotalBoxes    int                     `json:"total_boxes"`
	TotalUnits    int                     `json:"total_units"`
	POQuantity    int                     `json:"po_quantity"` // editable, seeded from the total
	Contributions []entity.POContribution `json:"contributions"`
}

// AggregateForPO collapses the full order set into per-product totals,
// retaining contribution tuples for traceability. Results are sorted by
// product name for stable output.
func AggregateForPO(orders []entity.Order) []ProductAggregate {
	byProduct := make(map[uuid.UUID]*ProductAggregate)

	for _, order := range orders {
		perOrder := make(map[uuid.UUID]*entity.POContribution)
		for _, item := range order.Items {
			agg, ok := byProduct[item.ProductID]
			if !ok {
				agg = &ProductAggregate{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
				}
				byProduct[item.ProductID] = agg
			}

			contrib, ok := perOrder[item.ProductID]
			if !ok {
				agg.Contributions = append(agg.Contributions, entity.POContribution{
					OrderID:   order.ID,
					StoreName: order.Store.Name,
				})
				contrib = &agg.Contributions[len(agg.Contributions)-1]
				perOrder[item.ProductID] = contrib
			}

			if item.PricingType == enum.PricingTypeBox {
				agg.TotalBoxes += item.Quantity
				contrib.BoxQty += item.Quantity
			} else {
				agg.TotalUnits += item.Quantity
				contrib.UnitQty += item.Quantity
			}
		}
	}

	result := make([]ProductAggregate, 0, len(byProduct))
	for _, agg := range byProduct {
		agg.POQuantity = agg.TotalBoxes + agg.TotalUnits
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ProductName < result[j].ProductName
	})
	return result
}

// CellEdit is one edited matrix cell to be written back to its source order
type CellEdit struct {
	ProductID uuid.UUID `json:"product_id"`
	StoreID   uuid.UUID `json:"store_id"`
	BoxQty    int       `json:"box_qty"`
	UnitQty   int       `json:"unit_qty"`
}

// GroupEditsByOrder maps each edit to the order that sourced its cell so
// edits can be saved back one order at a time. Edits whose cell has more
// than one contributing order are ambiguous and returned separately for the
// caller to reject; edits on unknown cells are returned as conflicts too.
func GroupEditsByOrder(m *Matrix, edits []CellEdit) (map[uuid.UUID][]CellEdit, []CellEdit) {
	grouped := make(map[uuid.UUID][]CellEdit)
	var conflicts []CellEdit

	for _, edit := range edits {
		cell := m.Cell(edit.ProductID, edit.StoreID)
		if cell == nil || len(cell.OrderIDs) != 1 {
			conflicts = append(conflicts, edit)
			continue
		}
		orderID := cell.OrderIDs[0]
		grouped[orderID] = append(grouped[orderID], edit)
	}
	return grouped, conflicts
}
