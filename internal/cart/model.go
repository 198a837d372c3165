package cart

import "mrdaebak/internal/catalog"

// Entry is one line of an in-progress order: a dinner, a serving style,
// a set count, and explicit per-item quantity overrides.
//
// Overrides distinguishes "explicitly removed" (present with value 0)
// from "never touched" (absent). An absent item resolves to the catalog
// default if the dinner bundles it, otherwise to zero.
type Entry struct {
	ID       string            `json:"id"`
	MenuID   string            `json:"menu_id"`
	Style    catalog.StyleType `json:"style"`
	Quantity int               `json:"quantity"`

	Overrides map[string]int `json:"overrides,omitempty"`

	// Degraded entries come from remote orders whose menu id has no
	// local catalog match. They carry the remote-supplied name and
	// unit price directly so the order stays visible in history.
	Degraded    bool   `json:"degraded,omitempty"`
	MenuName    string `json:"menu_name,omitempty"`
	RemotePrice int64  `json:"remote_price,omitempty"`
}

// Menu resolves the entry's dinner, nil when the id left the catalog.
func (e *Entry) Menu() *catalog.DinnerMenu {
	return catalog.MenuByID(e.MenuID)
}

// Valid reports whether the entry can be priced. Entries referencing an
// unknown menu are excluded from totals unless they are degraded remote
// entries carrying their own price.
func (e *Entry) Valid() bool {
	return e.Menu() != nil || e.Degraded
}

// DisplayName falls back to the remote-supplied name for degraded entries.
func (e *Entry) DisplayName() string {
	if m := e.Menu(); m != nil {
		return m.Name
	}
	return e.MenuName
}
