package kv

import (
	"context"
	"sync"
)

// Memory is the in-memory backend used by tests.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites makes Set/Remove return an error, for testing the
	// logged-no-op behavior of the stores.
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return errWriteFailed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return errWriteFailed
	}
	delete(m.data, key)
	return nil
}
