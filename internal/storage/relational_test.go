package storage

import (
	"testing"

	"schoolledger/internal/models"
)

func setupSQLite(t *testing.T) *RelationalStore {
	t.Helper()

	store, err := OpenSQLite("file::memory:")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := store.DB().DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store
}

func TestRelationalStore_RoundTrip(t *testing.T) {
	store := setupSQLite(t)

	items := []models.IncomeItem{
		{Base: models.Base{ID: "11111111-1111-1111-1111-111111111111"}, Name: "Tuition", Price: 500, Type: models.IncomeItemPerStudent},
		{Base: models.Base{ID: "22222222-2222-2222-2222-222222222222"}, Name: "Uniform", Price: 100, Type: models.IncomeItemPerParent},
	}
	if err := store.Set(KeyIncomeItems, items); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var loaded []models.IncomeItem
	found, err := store.Get(KeyIncomeItems, &loaded)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected rows to be present")
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded))
	}
}

func TestRelationalStore_SetReplacesTable(t *testing.T) {
	store := setupSQLite(t)

	first := []models.Parent{
		{Base: models.Base{ID: "11111111-1111-1111-1111-111111111111"}, FirstName: "Jane", LastName: "Doe"},
		{Base: models.Base{ID: "22222222-2222-2222-2222-222222222222"}, FirstName: "John", LastName: "Doe"},
	}
	if err := store.Set(KeyParents, first); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	second := []models.Parent{
		{Base: models.Base{ID: "33333333-3333-3333-3333-333333333333"}, FirstName: "Only", LastName: "One"},
	}
	if err := store.Set(KeyParents, second); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	var loaded []models.Parent
	if _, err := store.Get(KeyParents, &loaded); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].FirstName != "Only" {
		t.Errorf("expected the table contents to be replaced, got %+v", loaded)
	}
}

func TestRelationalStore_SerializedColumns(t *testing.T) {
	store := setupSQLite(t)

	txs := []models.IncomeTransaction{{
		Base:       models.Base{ID: "11111111-1111-1111-1111-111111111111"},
		ParentID:   "22222222-2222-2222-2222-222222222222",
		StudentIDs: []string{"a", "b"},
		Items: []models.IncomeItem{
			{Base: models.Base{ID: "33333333-3333-3333-3333-333333333333"}, Name: "Tuition", Price: 500, Type: models.IncomeItemPerStudent},
		},
		Total:      1000,
		Status:     models.IncomeStatusPending,
		LoggedUser: "admin",
	}}
	if err := store.Set(KeyIncomeTransactions, txs); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var loaded []models.IncomeTransaction
	if _, err := store.Get(KeyIncomeTransactions, &loaded); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(loaded))
	}
	if len(loaded[0].StudentIDs) != 2 {
		t.Errorf("expected studentIds to survive the round trip, got %v", loaded[0].StudentIDs)
	}
	if len(loaded[0].Items) != 1 || loaded[0].Items[0].Name != "Tuition" {
		t.Errorf("expected item snapshots to survive the round trip, got %+v", loaded[0].Items)
	}
}

func TestRelationalStore_UnknownKey(t *testing.T) {
	store := setupSQLite(t)

	if err := store.Set("nonsense", []models.Parent{}); err == nil {
		t.Error("expected an error for an unknown collection key")
	}
	var dest []models.Parent
	if _, err := store.Get("nonsense", &dest); err == nil {
		t.Error("expected an error for an unknown collection key")
	}
}
