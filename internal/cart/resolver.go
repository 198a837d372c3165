package cart

import "mrdaebak/internal/catalog"

// SelectionKind tags how an item's effective quantity was resolved, so
// the branches of the resolver stay exhaustive instead of being inferred
// from an optional field.
type SelectionKind int

const (
	// SelectionDefault: no override; bundled items use the catalog
	// default quantity, extras resolve to zero.
	SelectionDefault SelectionKind = iota
	// SelectionRemoved: explicit override of zero.
	SelectionRemoved
	// SelectionExplicit: explicit non-zero override.
	SelectionExplicit
)

// Selection is the resolved state of one item within an entry.
// Item.DefaultQty is relative to the entry's own dinner: 0 when the
// item is an extra borrowed from another menu.
type Selection struct {
	Item catalog.CatalogItem
	Kind SelectionKind
	Qty  int
}

// Resolve computes the effective quantity of every item in the union of
// the dinner's own items and the whole catalog (so extras from other
// menus can be added). Order is deterministic: bundled items first in
// menu order, then the remaining catalog items.
func Resolve(e *Entry) []Selection {
	menu := e.Menu()

	var out []Selection
	seen := make(map[string]bool)

	if menu != nil {
		for _, it := range menu.Items {
			seen[it.Name] = true
			out = append(out, resolveOne(e, it))
		}
	}
	for _, it := range catalog.AllItems() {
		if seen[it.Name] {
			continue
		}
		seen[it.Name] = true
		// extras carry DefaultQty 0 relative to this dinner
		out = append(out, resolveOne(e, it))
	}
	return out
}

func resolveOne(e *Entry, it catalog.CatalogItem) Selection {
	if ov, ok := e.Overrides[it.Name]; ok {
		if ov < 0 {
			ov = 0
		}
		kind := SelectionExplicit
		if ov == 0 {
			kind = SelectionRemoved
		}
		return Selection{Item: it, Kind: kind, Qty: ov}
	}
	return Selection{Item: it, Kind: SelectionDefault, Qty: it.DefaultQty}
}

// EffectiveQty resolves a single item by name. Never negative.
func EffectiveQty(e *Entry, name string) int {
	if ov, ok := e.Overrides[name]; ok {
		if ov < 0 {
			return 0
		}
		return ov
	}
	if menu := e.Menu(); menu != nil {
		if it, ok := menu.Item(name); ok {
			return it.DefaultQty
		}
	}
	return 0
}

// --------------------------------------------------
// Editing operations
// --------------------------------------------------
// Each records the result as an explicit override so the entry keeps
// the distinction between "touched" and "untouched" items.

// Increase adds one of the item. An untouched bundled item starts from
// its default, an untouched extra starts from zero.
func (e *Entry) Increase(name string) {
	e.ensureOverrides()
	if ov, ok := e.Overrides[name]; ok {
		e.Overrides[name] = ov + 1
		return
	}
	e.Overrides[name] = e.untouchedQty(name) + 1
}

// Decrease removes one of the item, stopping at zero. Reaching zero
// still records the override, so a decreased-away default does not
// silently revert to the catalog quantity. Decreasing an untouched item
// records an explicit zero.
func (e *Entry) Decrease(name string) {
	e.ensureOverrides()
	if ov, ok := e.Overrides[name]; ok {
		if ov > 0 {
			e.Overrides[name] = ov - 1
		}
		return
	}
	e.Overrides[name] = 0
}

// RemoveItem sets the override to zero unconditionally. Idempotent.
func (e *Entry) RemoveItem(name string) {
	e.ensureOverrides()
	e.Overrides[name] = 0
}

func (e *Entry) untouchedQty(name string) int {
	if menu := e.Menu(); menu != nil {
		if it, ok := menu.Item(name); ok {
			return it.DefaultQty
		}
	}
	return 0
}

func (e *Entry) ensureOverrides() {
	if e.Overrides == nil {
		e.Overrides = make(map[string]int)
	}
}
