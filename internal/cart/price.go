package cart

import "mrdaebak/internal/pricing"

// Entry-level price aggregation. The arithmetic itself (style
// adjustment, signed item deltas, discount policy) lives in
// internal/pricing; these methods fold it over the resolved selection
// set of one entry.

// UnitPrice prices a single dinner set: the style-adjusted base plus
// every item delta over the resolved union set. Degraded entries (menu
// no longer in the catalog) pass through their remote-supplied unit
// price; other entries with an unknown menu price at zero.
func (e *Entry) UnitPrice() int64 {
	menu := e.Menu()
	if menu == nil {
		if e.Degraded {
			return e.RemotePrice
		}
		return 0
	}

	price := pricing.StyleAdjustedBase(menu, e.Style)
	for _, sel := range Resolve(e) {
		price += pricing.ItemDeltaPrice(sel.Item, sel.Qty, sel.Item.DefaultQty)
	}
	return price
}

// TotalPrice multiplies the unit price by the number of sets.
func (e *Entry) TotalPrice() int64 {
	return e.UnitPrice() * int64(e.Quantity)
}

// Subtotal sums all valid entries. Entries referencing an unknown menu
// (and not degraded) are excluded rather than crashing the total.
func Subtotal(entries []Entry) int64 {
	var subtotal int64
	for i := range entries {
		if !entries[i].Valid() {
			continue
		}
		subtotal += entries[i].TotalPrice()
	}
	return subtotal
}
