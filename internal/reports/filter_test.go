package reports

import (
	"testing"
	"time"

	"schoolledger/internal/models"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func incomeTx(id string, date time.Time, status models.IncomeStatus, total float64) models.IncomeTransaction {
	tx := models.IncomeTransaction{
		ParentID:   "parent-1",
		StudentIDs: []string{"student-1"},
		Items:      []models.IncomeItem{{Name: "Tuition", Price: total, Type: models.IncomeItemPerStudent}},
		Total:      total,
		Date:       date,
		Status:     status,
		LoggedUser: "admin",
	}
	tx.ID = id
	return tx
}

func testResolver() Resolver {
	parent := models.Parent{FirstName: "John", LastName: "Smith"}
	parent.ID = "parent-1"
	student := models.Student{FirstName: "Emma", LastName: "Smith", ParentID: "parent-1"}
	student.ID = "student-1"
	return NewResolver([]models.Parent{parent}, []models.Student{student}, nil)
}

func TestFilterIncome_DateRange(t *testing.T) {
	today := incomeTx("a", testNow.Add(-2*time.Hour), models.IncomeStatusPaid, 100)
	threeDays := incomeTx("b", testNow.AddDate(0, 0, -3), models.IncomeStatusPaid, 200)
	fortyDays := incomeTx("c", testNow.AddDate(0, 0, -40), models.IncomeStatusPaid, 300)
	txs := []models.IncomeTransaction{today, threeDays, fortyDays}

	t.Run("week keeps only transactions inside the window", func(t *testing.T) {
		got := FilterIncome(txs, IncomeFilter{Range: RangeWeek}, Resolver{}, testNow)
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
		if got[0].ID != "a" || got[1].ID != "b" {
			t.Errorf("expected [a b] in insertion order, got [%s %s]", got[0].ID, got[1].ID)
		}
	})

	t.Run("today matches the calendar day", func(t *testing.T) {
		got := FilterIncome(txs, IncomeFilter{Range: RangeToday}, Resolver{}, testNow)
		if len(got) != 1 || got[0].ID != "a" {
			t.Errorf("expected only today's transaction, got %d", len(got))
		}
	})

	t.Run("all keeps everything", func(t *testing.T) {
		got := FilterIncome(txs, IncomeFilter{Range: RangeAll}, Resolver{}, testNow)
		if len(got) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(got))
		}
	})

	t.Run("zero date is excluded unless range is all", func(t *testing.T) {
		broken := incomeTx("z", time.Time{}, models.IncomeStatusPaid, 50)
		withBroken := append([]models.IncomeTransaction{broken}, txs...)

		got := FilterIncome(withBroken, IncomeFilter{Range: RangeYear}, Resolver{}, testNow)
		for _, tx := range got {
			if tx.ID == "z" {
				t.Error("expected the zero-date transaction to be excluded")
			}
		}

		got = FilterIncome(withBroken, IncomeFilter{Range: RangeAll}, Resolver{}, testNow)
		if len(got) != 4 {
			t.Errorf("expected range all to include the zero-date transaction, got %d", len(got))
		}
	})
}

func TestFilterIncome_StatusPartition(t *testing.T) {
	txs := []models.IncomeTransaction{
		incomeTx("a", testNow, models.IncomeStatusPaid, 100),
		incomeTx("b", testNow, models.IncomeStatusPending, 50),
		incomeTx("c", testNow, models.IncomeStatusPaid, 75),
	}

	paid := FilterIncome(txs, IncomeFilter{Status: StatusPaid}, Resolver{}, testNow)
	pending := FilterIncome(txs, IncomeFilter{Status: StatusPending}, Resolver{}, testNow)
	all := FilterIncome(txs, IncomeFilter{Status: StatusAll}, Resolver{}, testNow)

	if len(paid)+len(pending) != len(all) {
		t.Errorf("paid (%d) + pending (%d) must partition all (%d)", len(paid), len(pending), len(all))
	}
	for _, tx := range paid {
		for _, p := range pending {
			if tx.ID == p.ID {
				t.Errorf("transaction %s appears in both partitions", tx.ID)
			}
		}
	}
}

func TestFilterIncome_Search(t *testing.T) {
	res := testResolver()
	txs := []models.IncomeTransaction{
		incomeTx("a", testNow, models.IncomeStatusPaid, 100),
		incomeTx("b", testNow, models.IncomeStatusPending, 250),
	}

	t.Run("matches the resolved parent name case-insensitively", func(t *testing.T) {
		got := FilterIncome(txs, IncomeFilter{Search: "john sm"}, res, testNow)
		if len(got) != 2 {
			t.Errorf("expected both transactions to match the parent name, got %d", len(got))
		}
	})

	t.Run("matches the resolved student name", func(t *testing.T) {
		got := FilterIncome(txs, IncomeFilter{Search: "EMMA"}, res, testNow)
		if len(got) != 2 {
			t.Errorf("expected both transactions to match the student name, got %d", len(got))
		}
	})

	t.Run("matches the total", func(t *testing.T) {
		got := FilterIncome(txs, IncomeFilter{Search: "250"}, res, testNow)
		if len(got) != 1 || got[0].ID != "b" {
			t.Errorf("expected only the 250 transaction, got %d", len(got))
		}
	})

	t.Run("dangling ids resolve to placeholders and still match", func(t *testing.T) {
		orphan := incomeTx("o", testNow, models.IncomeStatusPaid, 10)
		orphan.ParentID = "missing-parent"
		orphan.StudentIDs = []string{"missing-student"}

		got := FilterIncome([]models.IncomeTransaction{orphan}, IncomeFilter{Search: "unknown parent"}, res, testNow)
		if len(got) != 1 {
			t.Errorf("expected the placeholder name to be searchable, got %d", len(got))
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		filter := IncomeFilter{Search: "tuition"}
		once := FilterIncome(txs, filter, res, testNow)
		twice := FilterIncome(once, filter, res, testNow)
		if len(once) != len(twice) {
			t.Errorf("filtering twice changed the result: %d vs %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Errorf("filtering twice reordered the result at %d", i)
			}
		}
	})
}

func TestFilterExpenses(t *testing.T) {
	expense := func(id string, date time.Time, total float64, itemName, desc string) models.ExpenseTransaction {
		tx := models.ExpenseTransaction{
			Items:       []models.ExpenseItem{{Name: itemName, Amount: total}},
			Total:       total,
			Date:        date,
			LoggedUser:  "admin",
			Description: desc,
		}
		tx.ID = id
		return tx
	}

	txs := []models.ExpenseTransaction{
		expense("a", testNow.Add(-time.Hour), 40, "Chalk", "classroom supplies"),
		expense("b", testNow.AddDate(0, 0, -60), 900, "Projector", ""),
	}

	t.Run("filters by range", func(t *testing.T) {
		got := FilterExpenses(txs, ExpenseFilter{Range: RangeMonth}, testNow)
		if len(got) != 1 || got[0].ID != "a" {
			t.Errorf("expected only the recent expense, got %d", len(got))
		}
	})

	t.Run("searches item names and description", func(t *testing.T) {
		got := FilterExpenses(txs, ExpenseFilter{Search: "projector"}, testNow)
		if len(got) != 1 || got[0].ID != "b" {
			t.Errorf("expected the projector expense, got %d", len(got))
		}

		got = FilterExpenses(txs, ExpenseFilter{Search: "classroom"}, testNow)
		if len(got) != 1 || got[0].ID != "a" {
			t.Errorf("expected the supplies expense, got %d", len(got))
		}
	})
}
