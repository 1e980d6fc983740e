package store

import (
	"errors"
	"sync"
)

// MemoryGateway is an in-process gateway, used by tests and the
// "memory" backend.
type MemoryGateway struct {
	mu     sync.Mutex
	values map[string][]byte
	saves  int

	// FailSave, when set, is returned by every Save.
	FailSave error
}

// NewMemory returns an empty MemoryGateway.
func NewMemory() *MemoryGateway {
	return &MemoryGateway{values: make(map[string][]byte)}
}

func (m *MemoryGateway) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryGateway) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	if key == "" {
		return errors.New("store: empty key")
	}
	m.values[key] = append([]byte(nil), value...)
	m.saves++
	return nil
}

// Saves counts successful Save calls.
func (m *MemoryGateway) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *MemoryGateway) Close() error {
	return nil
}
