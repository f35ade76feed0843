package storage

import (
	"os"
	"path/filepath"
	"testing"

	"schoolledger/internal/models"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	parents := []models.Parent{{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}}
	if err := store.Set(KeyParents, parents); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var loaded []models.Parent
	found, err := store.Get(KeyParents, &loaded)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected the key to be present")
	}
	if len(loaded) != 1 || loaded[0].FirstName != "Jane" {
		t.Errorf("unexpected round-trip result: %+v", loaded)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	var loaded []models.Parent
	found, err := store.Get(KeyParents, &loaded)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected a never-written key to report absence")
	}
}

func TestFileStore_OverwriteReplacesDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := store.Set(KeyParents, []models.Parent{{FirstName: "Jane"}, {FirstName: "John"}}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(KeyParents, []models.Parent{{FirstName: "Only"}}); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	var loaded []models.Parent
	if _, err := store.Get(KeyParents, &loaded); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].FirstName != "Only" {
		t.Errorf("expected the document to be replaced, got %+v", loaded)
	}

	// No temp files should survive a completed write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("leftover temp file: %s", entry.Name())
		}
	}
}

func TestFileStore_EmptyCollection(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := store.Set(KeyStudents, []models.Student{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var loaded []models.Student
	found, err := store.Get(KeyStudents, &loaded)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Error("expected an explicitly written empty collection to be present")
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty collection, got %+v", loaded)
	}
}
