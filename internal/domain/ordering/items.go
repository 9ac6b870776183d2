package ordering

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
)

var (
	// ErrIndexOutOfRange is returned when an operation targets a line that
	// does not exist.
	ErrIndexOutOfRange = errors.New("line item index out of range")
	// ErrQuantityNotPositive is returned when an Add carries a quantity < 1.
	ErrQuantityNotPositive = errors.New("quantity must be at least 1")
)

// SalesModeError reports an attempt to add a product with a pricing type its
// sales mode forbids.
type SalesModeError struct {
	ProductName string
	SalesMode   enum.SalesMode
	PricingType enum.PricingType
}

func (e *SalesModeError) Error() string {
	return fmt.Sprintf("%s is sold by %s only and cannot be ordered by %s",
		e.ProductName, e.SalesMode, e.PricingType)
}

// Item is one order line. Within one item list the pair
// (ProductID, PricingType) is unique; Add merges instead of duplicating.
type Item struct {
	ProductID    uuid.UUID        `json:"product_id"`
	ProductName  string           `json:"product_name"`
	ShortCode    string           `json:"short_code,omitempty"`
	Quantity     int              `json:"quantity"`
	UnitPrice    int64            `json:"unit_price"`    // cents, snapshot at add time
	PricingType  enum.PricingType `json:"pricing_type"`
	ShippingCost int64            `json:"shipping_cost"` // cents
}

// LineTotal returns the line total in cents
func (i Item) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Op is a line-item operation. Exactly one of the constructors below builds
// a valid op; Apply dispatches on the kind.
type Op struct {
	kind    opKind
	product *entity.Product
	qty     int
	pricing enum.PricingType
	price   int64
	index   int
	delta   int
	raw     string
}

type opKind int

const (
	opAdd opKind = iota
	opUpdateQty
	opSetQty
	opRemove
)

// Add merges quantity into an existing (product, pricing type) line or
// appends a new snapshot line priced at unitPrice cents.
func Add(product *entity.Product, quantity int, pricingType enum.PricingType, unitPrice int64) Op {
	return Op{kind: opAdd, product: product, qty: quantity, pricing: pricingType, price: unitPrice}
}

// UpdateQty shifts the quantity at index by delta, clamped to a minimum of 1
func UpdateQty(index, delta int) Op {
	return Op{kind: opUpdateQty, index: index, delta: delta}
}

// SetQty sets the quantity at index from a raw string; unparsable or empty
// input becomes 1, and the result is clamped to a minimum of 1.
func SetQty(index int, value string) Op {
	return Op{kind: opSetQty, index: index, raw: value}
}

// Remove drops the line at index
func Remove(index int) Op {
	return Op{kind: opRemove, index: index}
}

// Apply runs one operation against an item list and returns the new list.
// The input slice is never mutated.
func Apply(items []Item, op Op) ([]Item, error) {
	switch op.kind {
	case opAdd:
		return applyAdd(items, op)
	case opUpdateQty:
		return applyQuantity(items, op.index, func(q int) int { return q + op.delta })
	case opSetQty:
		value, err := strconv.Atoi(strings.TrimSpace(op.raw))
		if err != nil {
			value = 1
		}
		return applyQuantity(items, op.index, func(int) int { return value })
	case opRemove:
		if op.index < 0 || op.index >= len(items) {
			return nil, ErrIndexOutOfRange
		}
		out := make([]Item, 0, len(items)-1)
		out = append(out, items[:op.index]...)
		out = append(out, items[op.index+1:]...)
		return out, nil
	}
	return nil, errors.New("unknown line item operation")
}

func applyAdd(items []Item, op Op) ([]Item, error) {
	if op.qty < 1 {
		return nil, ErrQuantityNotPositive
	}
	if !op.product.SalesMode.Allows(op.pricing) {
		return nil, &SalesModeError{
			ProductName: op.product.Name,
			SalesMode:   op.product.SalesMode,
			PricingType: op.pricing,
		}
	}

	out := make([]Item, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ProductID == op.product.ID && out[i].PricingType == op.pricing {
			out[i].Quantity += op.qty
			return out, nil
		}
	}

	return append(out, Item{
		ProductID:    op.product.ID,
		ProductName:  op.product.Name,
		ShortCode:    op.product.ShortCode,
		Quantity:     op.qty,
		UnitPrice:    op.price,
		PricingType:  op.pricing,
		ShippingCost: op.product.ShippingCost,
	}), nil
}

func applyQuantity(items []Item, index int, next func(int) int) ([]Item, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]Item, len(items))
	copy(out, items)

	q := next(out[index].Quantity)
	if q < 1 {
		q = 1
	}
	out[index].Quantity = q
	return out, nil
}

// SubTotal sums line totals in cents
func SubTotal(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// ShippingTotal sums per-line shipping attribution in cents
func ShippingTotal(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.ShippingCost * int64(item.Quantity)
	}
	return total
}
