package storage

import (
	"context"
	"sync"
)

// Memory is an in-process medium. It backs the tests and the
// MARKET_STORAGE=memory mode, where the catalog lives only as long as the
// process.
type Memory struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// NewMemory creates an empty in-process medium.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns a copy of the stored payload.
func (m *Memory) Read(_ context.Context) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.set {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

// Write replaces the stored payload.
func (m *Memory) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}

// Erase drops the stored payload.
func (m *Memory) Erase(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = nil
	m.set = false
	return nil
}
