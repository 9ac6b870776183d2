package ordering

import (
	"testing"

	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/stretchr/testify/require"
)

func TestPalletProgress(t *testing.T) {
	s := PalletProgress(95)
	require.Equal(t, 1, s.PalletsComplete)
	require.Equal(t, 1, s.BoxesToNextPallet)
	require.InDelta(t, float64(47)/48*100, s.Progress, 0.001)

	s = PalletProgress(96)
	require.Equal(t, 2, s.PalletsComplete)
	require.Equal(t, 48, s.BoxesToNextPallet) // full pallet at exact multiples
	require.Equal(t, float64(0), s.Progress)

	s = PalletProgress(0)
	require.Equal(t, 0, s.PalletsComplete)
	require.Equal(t, 48, s.BoxesToNextPallet)
	require.Equal(t, float64(0), s.Progress)

	s = PalletProgress(24)
	require.Equal(t, 0, s.PalletsComplete)
	require.Equal(t, 24, s.BoxesToNextPallet)
	require.Equal(t, float64(50), s.Progress)
}

func TestSummarizePalletsCountsOnlyBoxLines(t *testing.T) {
	items := []Item{
		{Quantity: 40, PricingType: enum.PricingTypeBox},
		{Quantity: 10, PricingType: enum.PricingTypeBox},
		{Quantity: 99, PricingType: enum.PricingTypeUnit}, // units never count
	}

	s := SummarizePallets(items)
	require.Equal(t, 50, s.TotalBoxes)
	require.Equal(t, 1, s.PalletsComplete)
	require.Equal(t, 46, s.BoxesToNextPallet)
}
