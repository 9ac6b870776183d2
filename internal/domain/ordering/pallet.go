package ordering

import "github.com/distroflow/distribution-api/internal/domain/enum"

// PalletSize is the fixed pallet capacity in boxes
const PalletSize = 48

// PalletSummary expresses an order's box count in pallet terms. It is used
// for display and merchandising nudges only and never gates submission.
type PalletSummary struct {
	TotalBoxes        int     `json:"total_boxes"`
	PalletsComplete   int     `json:"pallets_complete"`
	BoxesToNextPallet int     `json:"boxes_to_next_pallet"`
	Progress          float64 `json:"progress"` // 0-100 within the current pallet
}

// SummarizePallets counts box-priced lines and expresses them in pallets.
// At an exact multiple of the pallet size the current pallet is closed, so
// BoxesToNextPallet uniformly reads a full pallet (48), never 0.
func SummarizePallets(items []Item) PalletSummary {
	total := 0
	for _, item := range items {
		if item.PricingType == enum.PricingTypeBox {
			total += item.Quantity
		}
	}
	return PalletProgress(total)
}

// PalletProgress computes the pallet summary for a raw box count
func PalletProgress(totalBoxes int) PalletSummary {
	remainder := totalBoxes % PalletSize

	toNext := PalletSize - remainder
	return PalletSummary{
		TotalBoxes:        totalBoxes,
		PalletsComplete:   totalBoxes / PalletSize,
		BoxesToNextPallet: toNext,
		Progress:          float64(remainder) / float64(PalletSize) * 100,
	}
}
