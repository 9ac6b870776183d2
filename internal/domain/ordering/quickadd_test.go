package ordering

import (
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseQuickAdd(t *testing.T) {
	tests := []struct {
		input string
		want  *QuickAdd
	}{
		{"15", &QuickAdd{Code: "15", PricingType: enum.PricingTypeBox, Quantity: 1}},
		{"15x5", &QuickAdd{Code: "15", PricingType: enum.PricingTypeBox, Quantity: 5}},
		{"15X5", &QuickAdd{Code: "15", PricingType: enum.PricingTypeBox, Quantity: 5}},
		{"7u3", &QuickAdd{Code: "07", PricingType: enum.PricingTypeUnit, Quantity: 3}},
		{"7U3", &QuickAdd{Code: "07", PricingType: enum.PricingTypeUnit, Quantity: 3}},
		{"  15u2  ", &QuickAdd{Code: "15", PricingType: enum.PricingTypeUnit, Quantity: 2}},
		{"5", &QuickAdd{Code: "05", PricingType: enum.PricingTypeBox, Quantity: 1}},
		{"123", &QuickAdd{Code: "123", PricingType: enum.PricingTypeBox, Quantity: 1}},
		{"abc", nil},
		{"", nil},
		{"15y2", nil},
		{"x5", nil},
		{"15x", &QuickAdd{Code: "15", PricingType: enum.PricingTypeBox, Quantity: 1}},
	}

	for _, tc := range tests {
		got := ParseQuickAdd(tc.input)
		require.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParseQuickAddExplicitZeroQuantity(t *testing.T) {
	// An explicit zero is syntactically accepted and reported verbatim; the
	// mutation path rejects it later.
	got := ParseQuickAdd("15x0")
	require.NotNil(t, got)
	require.Equal(t, 0, got.Quantity)
	require.Equal(t, "15", got.Code)
}

func TestPadCode(t *testing.T) {
	require.Equal(t, "05", PadCode("5"))
	require.Equal(t, "15", PadCode("15"))
	require.Equal(t, "123", PadCode("123"))
}

func TestResolveCodePrefersStoredShortCode(t *testing.T) {
	products := []entity.Product{
		{ID: uuid.New(), Name: "Olive Oil", ShortCode: "03"},
		{ID: uuid.New(), Name: "Tomatoes", ShortCode: "15"},
	}

	got := ResolveCode(products, "15")
	require.NotNil(t, got)
	require.Equal(t, "Tomatoes", got.Name)

	got = ResolveCode(products, "3")
	require.NotNil(t, got)
	require.Equal(t, "Olive Oil", got.Name)

	require.Nil(t, ResolveCode(products, "99"))
}

func TestResolveCodePositionalFallback(t *testing.T) {
	products := []entity.Product{
		{ID: uuid.New(), Name: "First"},  // implicit 01
		{ID: uuid.New(), Name: "Second"}, // implicit 02
	}

	got := ResolveCode(products, "2")
	require.NotNil(t, got)
	require.Equal(t, "Second", got.Name)
}

func TestResolveCodeStoredCodeWinsOverPositional(t *testing.T) {
	// The second product's implicit position would be 02, but the first
	// product's stored code claims it.
	products := []entity.Product{
		{ID: uuid.New(), Name: "Stored", ShortCode: "02"},
		{ID: uuid.New(), Name: "Positional"},
	}

	got := ResolveCode(products, "02")
	require.NotNil(t, got)
	require.Equal(t, "Stored", got.Name)
}
