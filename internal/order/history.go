package order

import (
	"context"
	"encoding/json"
	"log"

	"mrdaebak/internal/kv"
)

// History is the append-only local order history, persisted as a JSON
// blob with the most recent record first. Records are prepended and
// read, never rewritten; storage failures are logged no-ops.
type History struct {
	backend kv.Backend
	key     string
}

func NewHistory(backend kv.Backend, key string) *History {
	return &History{backend: backend, key: key}
}

func (h *History) Prepend(ctx context.Context, rec HistoryRecord) {
	records := h.load(ctx)
	records = append([]HistoryRecord{rec}, records...)

	data, err := json.Marshal(records)
	if err != nil {
		log.Println("history: marshal failed:", err)
		return
	}
	if err := h.backend.Set(ctx, h.key, data); err != nil {
		log.Println("history: persist failed:", err)
	}
}

// List returns the records most recent first.
func (h *History) List(ctx context.Context) []HistoryRecord {
	return h.load(ctx)
}

func (h *History) load(ctx context.Context) []HistoryRecord {
	data, err := h.backend.Get(ctx, h.key)
	if err != nil {
		log.Println("history: load failed:", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var records []HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Println("history: corrupt history blob:", err)
		return nil
	}
	return records
}
