// Package ordering holds the shared order-intake logic: quick-add code
// parsing, line-item aggregation, tiered price resolution, pallet arithmetic
// and the product-by-store aggregation matrix. Everything here is pure; all
// I/O stays in the services that call it.
package ordering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
)

// quickAddPattern is the quick-add grammar: a numeric short code, an optional
// pricing-type flag (X=box, U=unit) and an optional quantity.
var quickAddPattern = regexp.MustCompile(`^(\d+)([XU])?(\d+)?$`)

// QuickAdd is the structured intent parsed from a quick-add code like
// "15", "15x5" or "15u3".
type QuickAdd struct {
	Code        string           `json:"code"`
	PricingType enum.PricingType `json:"pricing_type"`
	Quantity    int              `json:"quantity"`
}

// ParseQuickAdd interprets a free-text quick-add input. It returns nil when
// the input does not match the grammar. Quantity defaults to 1 when omitted;
// an explicit zero ("15x0") is reported verbatim and rejected later by the
// mutation path.
func ParseQuickAdd(raw string) *QuickAdd {
	input := strings.ToUpper(strings.TrimSpace(raw))
	m := quickAddPattern.FindStringSubmatch(input)
	if m == nil {
		return nil
	}

	pricingType := enum.PricingTypeBox
	if m[2] == "U" {
		pricingType = enum.PricingTypeUnit
	}

	quantity := 1
	if m[3] != "" {
		quantity, _ = strconv.Atoi(m[3])
	}

	return &QuickAdd{
		Code:        PadCode(m[1]),
		PricingType: pricingType,
		Quantity:    quantity,
	}
}

// PadCode zero-pads a numeric short code to a minimum width of 2
func PadCode(code string) string {
	if len(code) >= 2 {
		return code
	}
	return fmt.Sprintf("%02s", code)
}

// ImplicitCode returns the positional fallback code for a product without a
// stored short code. Positional codes are unstable across reordering and are
// a display aid only; stored codes always win during resolution.
func ImplicitCode(index int) string {
	return PadCode(strconv.Itoa(index + 1))
}

// ResolveCode looks a short code up in the loaded product set. Stored short
// codes are checked first; products without one match their positional
// fallback. Returns nil when nothing matches.
func ResolveCode(products []entity.Product, code string) *entity.Product {
	code = PadCode(code)
	for i := range products {
		if products[i].ShortCode != "" && PadCode(products[i].ShortCode) == code {
			return &products[i]
		}
	}
	for i := range products {
		if products[i].ShortCode == "" && ImplicitCode(i) == code {
			return &products[i]
		}
	}
	return nil
}
