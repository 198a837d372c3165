package catalog

// StyleType identifies a serving style tier.
type StyleType string

const (
	StyleSimple StyleType = "simple"
	StyleGrand  StyleType = "grand"
	StyleDeluxe StyleType = "deluxe"
)

// ServingStyle adjusts a dinner's base price by a multiplier.
// Features are presentation-only descriptors shown to the customer.
type ServingStyle struct {
	Type       StyleType `json:"type"`
	Name       string    `json:"name"`
	Multiplier float64   `json:"multiplier"`
	Features   []string  `json:"features"`
}

// CatalogItem is an item bundled with a dinner at a default quantity.
// An item with DefaultQty 0 relative to a given dinner is an "extra".
type CatalogItem struct {
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	DefaultQty int    `json:"default_qty"`
}

// DinnerMenu is a fixed-price offering with bundled items.
// BasePrice is for the simple style; other styles apply their multiplier.
type DinnerMenu struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	BasePrice int64         `json:"base_price"`
	Items     []CatalogItem `json:"items"`
	Styles    []StyleType   `json:"styles"`
}

func (m *DinnerMenu) SupportsStyle(t StyleType) bool {
	for _, s := range m.Styles {
		if s == t {
			return true
		}
	}
	return false
}

// Item returns the bundled item with the given name, if this dinner has it.
func (m *DinnerMenu) Item(name string) (CatalogItem, bool) {
	for _, it := range m.Items {
		if it.Name == name {
			return it, true
		}
	}
	return CatalogItem{}, false
}
