package catalog

import "testing"

func TestMenuByID_Known(t *testing.T) {
	menu := MenuByID("valentine")
	if menu == nil {
		t.Fatal("expected valentine dinner to exist")
	}
	if menu.BasePrice != 89000 {
		t.Errorf("expected base price 89000, got %d", menu.BasePrice)
	}
	if !menu.SupportsStyle(StyleGrand) {
		t.Error("valentine should support the grand style")
	}
}

func TestMenuByID_Unknown(t *testing.T) {
	if menu := MenuByID("dragon-feast"); menu != nil {
		t.Fatalf("expected nil for unknown menu, got %+v", menu)
	}
}

func TestStyleByType(t *testing.T) {
	grand := StyleByType(StyleGrand)
	if grand == nil {
		t.Fatal("grand style missing")
	}
	if grand.Multiplier != 1.3 {
		t.Errorf("expected grand multiplier 1.3, got %v", grand.Multiplier)
	}

	if s := StyleByType("royal"); s != nil {
		t.Fatalf("expected nil for unknown style, got %+v", s)
	}
}

func TestChampagneFeastNotServedSimple(t *testing.T) {
	menu := MenuByID("champagne")
	if menu == nil {
		t.Fatal("champagne feast missing")
	}
	if menu.SupportsStyle(StyleSimple) {
		t.Error("champagne feast must not be served in the simple style")
	}
}

func TestItemsForMenu_UnknownIsEmpty(t *testing.T) {
	if items := ItemsForMenu("nope"); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestAllItems_DeduplicatesByName(t *testing.T) {
	items := AllItems()

	seen := make(map[string]int64)
	for _, it := range items {
		if _, dup := seen[it.Name]; dup {
			t.Fatalf("duplicate item %q in AllItems", it.Name)
		}
		seen[it.Name] = it.UnitPrice
		if it.DefaultQty != 0 {
			t.Errorf("AllItems should report menu-neutral default 0, got %d for %q", it.DefaultQty, it.Name)
		}
	}

	// wine appears in valentine, french and champagne; first-seen price wins
	if seen["wine"] != 25000 {
		t.Errorf("expected wine at 25000, got %d", seen["wine"])
	}
	if _, ok := seen["cheese plate"]; !ok {
		t.Error("cheese plate should be reachable as an extra")
	}
}

func TestItemByName(t *testing.T) {
	it, ok := ItemByName("cheese plate")
	if !ok {
		t.Fatal("cheese plate not found")
	}
	if it.UnitPrice != 14500 {
		t.Errorf("expected 14500, got %d", it.UnitPrice)
	}

	if _, ok := ItemByName("caviar"); ok {
		t.Error("caviar should not exist in the catalog")
	}
}
