package pricing

import (
	"math"

	"mrdaebak/internal/catalog"
)

// All money is integer KRW. The single rounding point is the style
// adjustment; every other step is exact integer arithmetic.

// StyleAdjustedBase applies the serving style's multiplier to the
// dinner's base price: round(basePrice × multiplier). Style legality is
// enforced when a cart entry is created; pricing stays defensive and
// always computes a number, so an unknown style falls back to the
// unadjusted base and a nil menu prices at zero.
func StyleAdjustedBase(menu *catalog.DinnerMenu, style catalog.StyleType) int64 {
	if menu == nil {
		return 0
	}
	s := catalog.StyleByType(style)
	if s == nil {
		return menu.BasePrice
	}
	return int64(math.Round(float64(menu.BasePrice) * s.Multiplier))
}

// ItemDeltaPrice is the signed price contribution of one item relative
// to its bundled default: removing below default discounts the entry,
// adding above it (or adding an extra, defaultQty 0) charges for it.
func ItemDeltaPrice(item catalog.CatalogItem, effectiveQty, defaultQty int) int64 {
	return item.UnitPrice * int64(effectiveQty-defaultQty)
}
