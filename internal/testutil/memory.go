// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"encoding/json"
	"errors"
	"sync"
)

// MemoryStore is a map-backed persistence backend for tests. Values are
// round-tripped through JSON so tests exercise the same serialization
// boundary the real backends have. FailNextSet makes the next write
// fail, for exercising rollback paths.
type MemoryStore struct {
	mu          sync.Mutex
	data        map[string][]byte
	failNextSet bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// FailNextSet makes the next Set call return an error.
func (m *MemoryStore) FailNextSet() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNextSet = true
}

// Get unmarshals the stored document for key into dest.
func (m *MemoryStore) Get(key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the JSON document for key.
func (m *MemoryStore) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNextSet {
		m.failNextSet = false
		return errors.New("injected write failure")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}
