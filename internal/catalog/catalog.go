package catalog

// Static reference data. Prices are integer KRW.
// Lookups never error: a missing id/type returns nil and callers
// treat the entry as invalid instead of crashing.

var styles = []ServingStyle{
	{
		Type:       StyleSimple,
		Name:       "Simple",
		Multiplier: 1.0,
		Features:   []string{"plastic tray", "paper napkin"},
	},
	{
		Type:       StyleGrand,
		Name:       "Grand",
		Multiplier: 1.3,
		Features:   []string{"porcelain dishes", "linen napkin"},
	},
	{
		Type:       StyleDeluxe,
		Name:       "Deluxe",
		Multiplier: 1.6,
		Features:   []string{"silver dishes", "linen napkin", "fresh flowers"},
	},
}

var menus = []DinnerMenu{
	{
		ID:        "valentine",
		Name:      "Valentine Dinner",
		BasePrice: 89000,
		Items: []CatalogItem{
			{Name: "wine", UnitPrice: 25000, DefaultQty: 1},
			{Name: "steak", UnitPrice: 30000, DefaultQty: 1},
		},
		Styles: []StyleType{StyleSimple, StyleGrand, StyleDeluxe},
	},
	{
		ID:        "french",
		Name:      "French Dinner",
		BasePrice: 78000,
		Items: []CatalogItem{
			{Name: "coffee", UnitPrice: 5000, DefaultQty: 1},
			{Name: "wine", UnitPrice: 25000, DefaultQty: 1},
			{Name: "salad", UnitPrice: 8000, DefaultQty: 1},
			{Name: "steak", UnitPrice: 30000, DefaultQty: 1},
			{Name: "cheese plate", UnitPrice: 14500, DefaultQty: 1},
		},
		Styles: []StyleType{StyleSimple, StyleGrand, StyleDeluxe},
	},
	{
		ID:        "english",
		Name:      "English Dinner",
		BasePrice: 65000,
		Items: []CatalogItem{
			{Name: "scrambled eggs", UnitPrice: 6000, DefaultQty: 1},
			{Name: "bacon", UnitPrice: 7000, DefaultQty: 2},
			{Name: "bread", UnitPrice: 3000, DefaultQty: 2},
			{Name: "steak", UnitPrice: 30000, DefaultQty: 1},
		},
		Styles: []StyleType{StyleSimple, StyleGrand, StyleDeluxe},
	},
	{
		ID:        "champagne",
		Name:      "Champagne Feast Dinner",
		BasePrice: 180000,
		Items: []CatalogItem{
			{Name: "champagne", UnitPrice: 45000, DefaultQty: 1},
			{Name: "baguette", UnitPrice: 4000, DefaultQty: 4},
			{Name: "coffee", UnitPrice: 5000, DefaultQty: 1},
			{Name: "wine", UnitPrice: 25000, DefaultQty: 1},
		},
		// not served in the simple style
		Styles: []StyleType{StyleGrand, StyleDeluxe},
	},
}

// MenuByID returns nil when the id is unknown.
func MenuByID(id string) *DinnerMenu {
	for i := range menus {
		if menus[i].ID == id {
			return &menus[i]
		}
	}
	return nil
}

// StyleByType returns nil when the style is unknown.
func StyleByType(t StyleType) *ServingStyle {
	for i := range styles {
		if styles[i].Type == t {
			return &styles[i]
		}
	}
	return nil
}

func AllMenus() []DinnerMenu {
	out := make([]DinnerMenu, len(menus))
	copy(out, menus)
	return out
}

func AllStyles() []ServingStyle {
	out := make([]ServingStyle, len(styles))
	copy(out, styles)
	return out
}

// ItemsForMenu returns the bundled items of a dinner, empty for unknown ids.
func ItemsForMenu(menuID string) []CatalogItem {
	m := MenuByID(menuID)
	if m == nil {
		return nil
	}
	out := make([]CatalogItem, len(m.Items))
	copy(out, m.Items)
	return out
}

// AllItems returns every catalog item across all menus, deduplicated by
// name. On a name collision the first-seen unit price wins. Default
// quantities are menu-relative, so the deduplicated view reports 0.
func AllItems() []CatalogItem {
	seen := make(map[string]bool)
	var out []CatalogItem
	for _, m := range menus {
		for _, it := range m.Items {
			if seen[it.Name] {
				continue
			}
			seen[it.Name] = true
			out = append(out, CatalogItem{
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
			})
		}
	}
	return out
}

// ItemByName looks an item up across all menus, first-seen price wins.
func ItemByName(name string) (CatalogItem, bool) {
	for _, m := range menus {
		for _, it := range m.Items {
			if it.Name == name {
				return CatalogItem{Name: it.Name, UnitPrice: it.UnitPrice}, true
			}
		}
	}
	return CatalogItem{}, false
}
