package store

import (
	"context"
	"sync"
)

// MemoryKV is an in-process KV backend. It backs tests and the
// STORE_BACKEND=memory mode, where data lives only for the process.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}}
}

// Get returns the stored value, or nil if the key was never written.
func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete removes a key.
func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
