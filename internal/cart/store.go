package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"mrdaebak/internal/catalog"
	"mrdaebak/internal/kv"

	"github.com/google/uuid"
)

var (
	ErrUnknownMenu       = errors.New("unknown menu id")
	ErrStyleNotAvailable = errors.New("style not available for this dinner")
)

// Store holds the ordered cart entries for one customer, persisted as a
// JSON blob under a single key. Every mutation writes through and then
// reloads, because several screens of the ordering flow mutate the same
// persisted cart sequentially and staleness between them is not
// tolerated.
//
// Persistence failures are logged no-ops: the in-memory state is kept
// so the worst observable outcome is a stale price display, never a
// crash or a rolled-back edit.
type Store struct {
	backend kv.Backend
	key     string
	entries []Entry

	// dirty marks in-memory edits that never reached storage. While
	// set, reloads are skipped so a failed write cannot roll the cart
	// back to the stale persisted blob.
	dirty bool
}

func NewStore(ctx context.Context, backend kv.Backend, key string) *Store {
	s := &Store{backend: backend, key: key}
	s.reload(ctx)
	return s
}

// Patch is a partial update. Nil fields are left unchanged; Overrides,
// when non-nil, replaces the whole override map.
type Patch struct {
	Quantity  *int
	Style     *catalog.StyleType
	Overrides map[string]int
}

// Add creates a new entry with quantity 1. The menu must exist and
// support the chosen style; invalid selections are rejected here so the
// store never holds an entry that violates its invariants.
func (s *Store) Add(ctx context.Context, menuID string, style catalog.StyleType, overrides map[string]int) (string, error) {
	menu := catalog.MenuByID(menuID)
	if menu == nil {
		return "", ErrUnknownMenu
	}
	if !menu.SupportsStyle(style) {
		return "", ErrStyleNotAvailable
	}

	entry := Entry{
		ID:       uuid.New().String(),
		MenuID:   menuID,
		Style:    style,
		Quantity: 1,
	}
	for name, qty := range overrides {
		if qty < 0 {
			continue
		}
		if entry.Overrides == nil {
			entry.Overrides = make(map[string]int)
		}
		entry.Overrides[name] = qty
	}

	s.entries = append(s.entries, entry)
	if s.persist(ctx) {
		s.reload(ctx)
	}
	return entry.ID, nil
}

// Update merges a patch into an entry. Unknown ids are a no-op.
// A patch that would break an invariant (quantity below 1, negative
// override, unsupported style) is rejected and the prior state kept.
func (s *Store) Update(ctx context.Context, id string, patch Patch) error {
	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}

		if patch.Quantity != nil && *patch.Quantity < 1 {
			return errors.New("quantity must be at least 1")
		}
		for _, qty := range patch.Overrides {
			if qty < 0 {
				return errors.New("override quantity must not be negative")
			}
		}
		if patch.Style != nil {
			menu := s.entries[i].Menu()
			if menu != nil && !menu.SupportsStyle(*patch.Style) {
				return ErrStyleNotAvailable
			}
		}

		if patch.Quantity != nil {
			s.entries[i].Quantity = *patch.Quantity
		}
		if patch.Style != nil {
			s.entries[i].Style = *patch.Style
		}
		if patch.Overrides != nil {
			s.entries[i].Overrides = patch.Overrides
		}

		if s.persist(ctx) {
			s.reload(ctx)
		}
		return nil
	}
	// unknown id: no-op by contract
	return nil
}

func (s *Store) Remove(ctx context.Context, id string) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			if s.persist(ctx) {
				s.reload(ctx)
			}
			return
		}
	}
}

// Get returns a copy of one entry.
func (s *Store) Get(ctx context.Context, id string) (Entry, bool) {
	s.reload(ctx)
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// List reloads from storage and returns the entries in order.
func (s *Store) List(ctx context.Context) []Entry {
	s.reload(ctx)
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Clear(ctx context.Context) {
	s.entries = nil
	if err := s.backend.Remove(ctx, s.key); err != nil {
		log.Println("cart: clear failed:", err)
		s.dirty = true
		return
	}
	s.dirty = false
}

// --------------------------------------------------
// Persistence
// --------------------------------------------------

// persist reports success so callers only reload state that actually
// reached storage; after a failed write the in-memory entries stand.
func (s *Store) persist(ctx context.Context) bool {
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Println("cart: marshal failed:", err)
		s.dirty = true
		return false
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		log.Println("cart: persist failed:", err)
		s.dirty = true
		return false
	}
	s.dirty = false
	return true
}

func (s *Store) reload(ctx context.Context) {
	if s.dirty {
		return
	}
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		log.Println("cart: reload failed:", err)
		return
	}
	if data == nil {
		// nothing persisted yet; keep whatever is in memory
		return
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Println("cart: corrupt cart blob:", err)
		return
	}
	s.entries = entries
}
