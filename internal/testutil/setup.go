package testutil

import (
	"testing"

	"schoolledger/internal/store"
)

// SetupTestStore creates an entity store over a fresh MemoryStore
// backend. The backend is returned too so tests can inject failures.
func SetupTestStore(t *testing.T) (*store.Store, *MemoryStore) {
	t.Helper()

	backend := NewMemoryStore()
	s, err := store.Open(backend)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return s, backend
}
