package cart

import (
	"context"
	"testing"

	"mrdaebak/internal/catalog"
	"mrdaebak/internal/kv"
)

func newTestStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	backend := kv.NewMemory()
	return NewStore(context.Background(), backend, StoreKey("cust-1")), backend
}

func TestAdd_CreatesEntryWithQuantityOne(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "valentine", catalog.StyleGrand, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected an id")
	}

	entries := store.List(ctx)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", entries[0].Quantity)
	}
}

func TestAdd_RejectsUnknownMenu(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Add(context.Background(), "ghost", catalog.StyleSimple, nil); err != ErrUnknownMenu {
		t.Fatalf("expected ErrUnknownMenu, got %v", err)
	}
	if len(store.List(context.Background())) != 0 {
		t.Error("rejected add must not create an entry")
	}
}

func TestAdd_RejectsUnsupportedStyle(t *testing.T) {
	store, _ := newTestStore(t)

	// champagne feast is not served simple
	if _, err := store.Add(context.Background(), "champagne", catalog.StyleSimple, nil); err != ErrStyleNotAvailable {
		t.Fatalf("expected ErrStyleNotAvailable, got %v", err)
	}
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, "valentine", catalog.StyleSimple, nil)

	qty := 5
	if err := store.Update(ctx, "no-such-id", Patch{Quantity: &qty}); err != nil {
		t.Fatalf("update on unknown id must be a silent no-op, got %v", err)
	}

	if got := store.List(ctx)[0].Quantity; got != 1 {
		t.Errorf("entry mutated by unknown-id update: quantity %d", got)
	}
}

func TestUpdate_RejectsQuantityBelowOne(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, _ := store.Add(ctx, "valentine", catalog.StyleSimple, nil)

	zero := 0
	if err := store.Update(ctx, id, Patch{Quantity: &zero}); err == nil {
		t.Fatal("expected rejection of quantity 0")
	}
	if got := store.List(ctx)[0].Quantity; got != 1 {
		t.Errorf("prior state not retained, quantity %d", got)
	}
}

func TestUpdate_RejectsNegativeOverride(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, _ := store.Add(ctx, "valentine", catalog.StyleSimple, nil)

	err := store.Update(ctx, id, Patch{Overrides: map[string]int{"wine": -1}})
	if err == nil {
		t.Fatal("expected rejection of negative override")
	}
}

func TestUpdate_RejectsUnsupportedStyleChange(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, _ := store.Add(ctx, "champagne", catalog.StyleGrand, nil)

	simple := catalog.StyleSimple
	if err := store.Update(ctx, id, Patch{Style: &simple}); err != ErrStyleNotAvailable {
		t.Fatalf("expected ErrStyleNotAvailable, got %v", err)
	}
	if got := store.List(ctx)[0].Style; got != catalog.StyleGrand {
		t.Errorf("style mutated to %s", got)
	}
}

func TestUpdate_AppliesPatch(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, _ := store.Add(ctx, "valentine", catalog.StyleSimple, nil)

	qty := 3
	deluxe := catalog.StyleDeluxe
	err := store.Update(ctx, id, Patch{
		Quantity:  &qty,
		Style:     &deluxe,
		Overrides: map[string]int{"wine": 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := store.List(ctx)[0]
	if e.Quantity != 3 || e.Style != catalog.StyleDeluxe || e.Overrides["wine"] != 0 {
		t.Errorf("patch not applied: %+v", e)
	}
}

func TestRemoveAndClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id1, _ := store.Add(ctx, "valentine", catalog.StyleSimple, nil)
	store.Add(ctx, "english", catalog.StyleSimple, nil)

	store.Remove(ctx, id1)
	if entries := store.List(ctx); len(entries) != 1 || entries[0].MenuID != "english" {
		t.Fatalf("remove did not drop the right entry: %+v", entries)
	}

	store.Clear(ctx)
	if entries := store.List(ctx); len(entries) != 0 {
		t.Fatalf("expected empty cart after clear, got %d entries", len(entries))
	}
}

func TestList_ReflectsPersistedState(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()

	// two screens of the flow share the same persisted cart
	first := NewStore(ctx, backend, StoreKey("cust-1"))
	first.Add(ctx, "valentine", catalog.StyleSimple, nil)

	second := NewStore(ctx, backend, StoreKey("cust-1"))
	if entries := second.List(ctx); len(entries) != 1 {
		t.Fatalf("second store should see the persisted entry, got %d", len(entries))
	}

	second.Add(ctx, "french", catalog.StyleDeluxe, nil)
	if entries := first.List(ctx); len(entries) != 2 {
		t.Fatalf("first store should reload the second's mutation, got %d", len(entries))
	}
}

func TestPersistFailure_KeepsInMemoryState(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()

	store := NewStore(ctx, backend, StoreKey("cust-1"))
	store.Add(ctx, "valentine", catalog.StyleSimple, nil)

	backend.FailWrites = true
	id, err := store.Add(ctx, "english", catalog.StyleSimple, nil)
	if err != nil {
		t.Fatalf("storage failure must not surface as an error: %v", err)
	}
	if id == "" {
		t.Fatal("entry should still be created in memory")
	}

	// the failed write is a logged no-op; memory does not roll back
	if entries := store.List(ctx); len(entries) != 2 {
		t.Fatalf("expected 2 in-memory entries after failed persist, got %d", len(entries))
	}
}
