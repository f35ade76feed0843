package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"schoolledger/internal/models"
	"schoolledger/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestParent creates a parent with a unique name.
func CreateTestParent(t *testing.T, s *store.Store) *models.Parent {
	t.Helper()

	n := nextID()
	parent := &models.Parent{
		FirstName: fmt.Sprintf("Parent%d", n),
		LastName:  "Test",
		Email:     fmt.Sprintf("parent%d@test.com", n),
	}
	if err := s.Parents.Add(parent); err != nil {
		t.Fatalf("failed to create test parent: %v", err)
	}
	return parent
}

// CreateTestStudent creates a student linked to the given parent.
func CreateTestStudent(t *testing.T, s *store.Store, parentID string) *models.Student {
	t.Helper()

	student := &models.Student{
		FirstName: fmt.Sprintf("Student%d", nextID()),
		LastName:  "Test",
		ParentID:  parentID,
	}
	if err := s.Students.Add(student); err != nil {
		t.Fatalf("failed to create test student: %v", err)
	}
	return student
}

// CreateTestIncomeItem creates a fee item with the given price and type.
func CreateTestIncomeItem(t *testing.T, s *store.Store, price float64, itemType models.IncomeItemType) *models.IncomeItem {
	t.Helper()

	item := &models.IncomeItem{
		Name:  fmt.Sprintf("Fee%d", nextID()),
		Price: price,
		Type:  itemType,
	}
	if err := s.IncomeItems.Add(item); err != nil {
		t.Fatalf("failed to create test income item: %v", err)
	}
	return item
}

// CreateTestCostCenter creates a cost center with a unique name and code.
func CreateTestCostCenter(t *testing.T, s *store.Store) *models.CostCenter {
	t.Helper()

	n := nextID()
	costCenter := &models.CostCenter{
		Name: fmt.Sprintf("CostCenter%d", n),
		Code: fmt.Sprintf("CC%d", n),
	}
	if err := s.CostCenters.Add(costCenter); err != nil {
		t.Fatalf("failed to create test cost center: %v", err)
	}
	return costCenter
}
