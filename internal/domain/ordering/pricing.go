package ordering

import (
	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
)

// ResolveUnitPrice returns the applicable price in cents for one box or one
// unit of a product, honoring the store's price category for box pricing.
//
// Unit pricing always uses the product's unit price; tier fields never apply.
// Box pricing uses the store's tier when it is priced (> 0), then falls back
// to the A tier, then the default box price, then 0. The result is snapshotted
// into the order line at add time and never retroactively updated.
func ResolveUnitPrice(p *entity.Product, pricingType enum.PricingType, category enum.PriceCategory) int64 {
	if pricingType == enum.PricingTypeUnit {
		return p.Price
	}

	if tier := p.BoxPriceForCategory(category); tier > 0 {
		return tier
	}
	if p.APrice > 0 {
		return p.APrice
	}
	if p.PricePerBox > 0 {
		return p.PricePerBox
	}
	return 0
}

// ResolveUnitPriceWithOverride is ResolveUnitPrice with a price-list override.
// A positive override wins for box pricing; unit pricing is unaffected.
func ResolveUnitPriceWithOverride(p *entity.Product, pricingType enum.PricingType, category enum.PriceCategory, override int64) int64 {
	if pricingType == enum.PricingTypeBox && override > 0 {
		return override
	}
	return ResolveUnitPrice(p, pricingType, category)
}
