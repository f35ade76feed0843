package store

import (
	"testing"

	"schoolledger/internal/models"
)

func openTestStore(t *testing.T) (*Store, *memBackend) {
	t.Helper()
	backend := newMemBackend()
	s, err := Open(backend)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s, backend
}

func TestSeed(t *testing.T) {
	t.Run("installs sample data into empty collections", func(t *testing.T) {
		s, _ := openTestStore(t)

		if err := Seed(s); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}

		if s.Parents.Count() != 2 {
			t.Errorf("expected 2 seeded parents, got %d", s.Parents.Count())
		}
		if s.Students.Count() != 3 {
			t.Errorf("expected 3 seeded students, got %d", s.Students.Count())
		}

		for _, student := range s.Students.All() {
			if _, err := s.Parents.Get(student.ParentID); err != nil {
				t.Errorf("seeded student %s references missing parent %s", student.FullName(), student.ParentID)
			}
		}
	})

	t.Run("leaves populated collections alone", func(t *testing.T) {
		s, _ := openTestStore(t)

		existing := models.Parent{FirstName: "Existing", LastName: "Parent"}
		if err := s.Parents.Add(&existing); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		if err := Seed(s); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}

		if s.Parents.Count() != 1 {
			t.Errorf("expected the existing parent only, got %d records", s.Parents.Count())
		}
	})
}
