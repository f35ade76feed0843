package reports

import (
	"time"

	"schoolledger/internal/models"
)

// Summary holds aggregate statistics over a filtered income set.
type Summary struct {
	Count         int     `json:"count"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	PendingAmount float64 `json:"pendingAmount"`
}

// Summarize aggregates a filtered income transaction set.
func Summarize(txs []models.IncomeTransaction) Summary {
	s := Summary{Count: len(txs)}
	for _, tx := range txs {
		s.TotalAmount += tx.Total
		switch tx.Status {
		case models.IncomeStatusPaid:
			s.PaidAmount += tx.Total
		case models.IncomeStatusPending:
			s.PendingAmount += tx.Total
		}
	}
	return s
}

// monthStart returns midnight on the first day of the month containing t.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthlyIncomeTotals returns this month's and last month's income
// totals using calendar-month windows anchored at now.
func monthlyIncomeTotals(txs []models.IncomeTransaction, now time.Time) (thisMonth, lastMonth float64) {
	thisStart := monthStart(now)
	lastStart := monthStart(thisStart.AddDate(0, -1, 0))

	for _, tx := range txs {
		switch {
		case !tx.Date.Before(thisStart) && !tx.Date.After(now):
			thisMonth += tx.Total
		case !tx.Date.Before(lastStart) && tx.Date.Before(thisStart):
			lastMonth += tx.Total
		}
	}
	return thisMonth, lastMonth
}

// GrowthRate computes month-over-month income growth as a percentage:
// (thisMonth − lastMonth) / lastMonth × 100, or 0 when last month had
// no income.
func GrowthRate(txs []models.IncomeTransaction, now time.Time) float64 {
	thisMonth, lastMonth := monthlyIncomeTotals(txs, now)
	if lastMonth == 0 {
		return 0
	}
	return (thisMonth - lastMonth) / lastMonth * 100
}

// PaymentRate computes the share of students that appear in any income
// transaction, as a percentage of totalStudents. Zero when the school
// has no students.
func PaymentRate(txs []models.IncomeTransaction, totalStudents int) float64 {
	if totalStudents == 0 {
		return 0
	}
	return float64(PaidStudents(txs)) / float64(totalStudents) * 100
}

// PaidStudents counts the distinct students appearing in any income
// transaction.
func PaidStudents(txs []models.IncomeTransaction) int {
	seen := make(map[string]struct{})
	for _, tx := range txs {
		for _, id := range tx.StudentIDs {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// TypeFilter selects which ledger a report lists.
type TypeFilter string

const (
	TypeAll      TypeFilter = "all"
	TypeIncome   TypeFilter = "income"
	TypeExpenses TypeFilter = "expenses"
)

// Report is the financial report view: date-filtered transaction lists
// plus combined totals. The totals always span both ledgers for the
// date range; the type filter only narrows which list is displayed.
type Report struct {
	Income        []models.IncomeTransaction  `json:"income"`
	Expenses      []models.ExpenseTransaction `json:"expenses"`
	TotalIncome   float64                     `json:"totalIncome"`
	TotalExpenses float64                     `json:"totalExpenses"`
	NetIncome     float64                     `json:"netIncome"`
}

// BuildReport assembles the report for a date range and type filter.
func BuildReport(income []models.IncomeTransaction, expenses []models.ExpenseTransaction, r DateRange, t TypeFilter, now time.Time) Report {
	filteredIncome := FilterIncome(income, IncomeFilter{Range: r}, Resolver{}, now)
	filteredExpenses := FilterExpenses(expenses, ExpenseFilter{Range: r}, now)

	report := Report{
		Income:   filteredIncome,
		Expenses: filteredExpenses,
	}
	for _, tx := range filteredIncome {
		report.TotalIncome += tx.Total
	}
	for _, tx := range filteredExpenses {
		report.TotalExpenses += tx.Total
	}
	report.NetIncome = report.TotalIncome - report.TotalExpenses

	if t == TypeIncome {
		report.Expenses = []models.ExpenseTransaction{}
	}
	if t == TypeExpenses {
		report.Income = []models.IncomeTransaction{}
	}
	return report
}
