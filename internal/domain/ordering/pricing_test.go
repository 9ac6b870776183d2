package ordering

import (
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/stretchr/testify/require"
)

func TestResolveUnitPriceUnitIgnoresTiers(t *testing.T) {
	p := &entity.Product{
		Price:           250,
		APrice:          1000,
		RestaurantPrice: 900,
	}

	got := ResolveUnitPrice(p, enum.PricingTypeUnit, enum.PriceCategoryRestaurant)
	require.Equal(t, int64(250), got)

	// Absent unit price resolves to zero
	p.Price = 0
	require.Equal(t, int64(0), ResolveUnitPrice(p, enum.PricingTypeUnit, enum.PriceCategoryA))
}

func TestResolveUnitPriceBoxUsesStoreCategory(t *testing.T) {
	p := &entity.Product{
		APrice:          1000,
		BPrice:          950,
		CPrice:          900,
		RestaurantPrice: 850,
	}

	require.Equal(t, int64(1000), ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryA))
	require.Equal(t, int64(950), ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryB))
	require.Equal(t, int64(900), ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryC))
	require.Equal(t, int64(850), ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryRestaurant))
}

func TestResolveUnitPriceBoxFallbackChain(t *testing.T) {
	// Unpriced tier falls back to aPrice
	p := &entity.Product{APrice: 1000, PricePerBox: 800}
	require.Equal(t, int64(1000), ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryC))

	// Then to pricePerBox
	p = &entity.Product{PricePerBox: 800}
	require.Equal(t, int64(800), ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryC))

	// Then to zero
	p = &entity.Product{}
	require.Equal(t, int64(0), ResolveUnitPrice(p, enum.PricingTypeBox, enum.PriceCategoryC))
}

func TestResolveUnitPriceWithOverride(t *testing.T) {
	p := &entity.Product{Price: 250, APrice: 1000}

	// Positive override wins for box pricing
	require.Equal(t, int64(700), ResolveUnitPriceWithOverride(p, enum.PricingTypeBox, enum.PriceCategoryA, 700))
	// Zero override falls through to tier resolution
	require.Equal(t, int64(1000), ResolveUnitPriceWithOverride(p, enum.PricingTypeBox, enum.PriceCategoryA, 0))
	// Unit pricing is unaffected by the override
	require.Equal(t, int64(250), ResolveUnitPriceWithOverride(p, enum.PricingTypeUnit, enum.PriceCategoryA, 700))
}
