package reports

import (
	"strconv"
	"strings"
	"time"

	"schoolledger/internal/logger"
	"schoolledger/internal/models"
)

// DateRange is a symbolic filter window anchored at "now".
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
	RangeYear  DateRange = "year"
)

// window returns the rolling window duration for a range. Today is
// handled separately as an exact calendar-day match.
func (r DateRange) window() time.Duration {
	switch r {
	case RangeWeek:
		return 7 * 24 * time.Hour
	case RangeMonth:
		return 30 * 24 * time.Hour
	case RangeYear:
		return 365 * 24 * time.Hour
	}
	return 0
}

// inRange reports whether date falls within [now − window, now]. A zero
// date cannot be placed in any window: it is excluded (with a warning)
// unless the range is "all". This is the graceful-degradation path for
// records whose date failed to parse upstream.
func inRange(date time.Time, r DateRange, now time.Time) bool {
	if r == RangeAll {
		return true
	}
	if date.IsZero() {
		logger.Named("reports").Warnw("transaction has an invalid date, excluding from filtered view",
			"range", string(r),
		)
		return false
	}
	if r == RangeToday {
		y1, m1, d1 := date.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	cutoff := now.Add(-r.window())
	return !date.Before(cutoff) && !date.After(now)
}

// StatusFilter selects income transactions by payment status.
type StatusFilter string

const (
	StatusAll     StatusFilter = "all"
	StatusPaid    StatusFilter = "paid"
	StatusPending StatusFilter = "pending"
)

// IncomeFilter holds the filter criteria for the income ledger.
type IncomeFilter struct {
	Range  DateRange
	Status StatusFilter
	Search string
}

// FilterIncome returns the income transactions matching the filter, in
// insertion order. Search matches a case-insensitive substring against
// the resolved parent name, resolved student names, item names, and the
// string form of the total.
func FilterIncome(txs []models.IncomeTransaction, f IncomeFilter, res Resolver, now time.Time) []models.IncomeTransaction {
	if f.Range == "" {
		f.Range = RangeAll
	}
	if f.Status == "" {
		f.Status = StatusAll
	}
	term := strings.ToLower(f.Search)

	out := make([]models.IncomeTransaction, 0, len(txs))
	for _, tx := range txs {
		if f.Status != StatusAll && string(tx.Status) != string(f.Status) {
			continue
		}
		if !inRange(tx.Date, f.Range, now) {
			continue
		}
		if term != "" && !matchesIncome(tx, term, res) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesIncome(tx models.IncomeTransaction, term string, res Resolver) bool {
	if strings.Contains(strings.ToLower(res.ParentName(tx.ParentID)), term) {
		return true
	}
	if strings.Contains(strings.ToLower(res.studentNamesJoined(tx.StudentIDs)), term) {
		return true
	}
	for _, item := range tx.Items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			return true
		}
	}
	return strings.Contains(formatTotal(tx.Total), term)
}

// ExpenseFilter holds the filter criteria for the expense ledger.
type ExpenseFilter struct {
	Range  DateRange
	Search string
}

// FilterExpenses returns the expense transactions matching the filter,
// in insertion order. Search matches item names, the description, and
// the string form of the total.
func FilterExpenses(txs []models.ExpenseTransaction, f ExpenseFilter, now time.Time) []models.ExpenseTransaction {
	if f.Range == "" {
		f.Range = RangeAll
	}
	term := strings.ToLower(f.Search)

	out := make([]models.ExpenseTransaction, 0, len(txs))
	for _, tx := range txs {
		if !inRange(tx.Date, f.Range, now) {
			continue
		}
		if term != "" && !matchesExpense(tx, term) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesExpense(tx models.ExpenseTransaction, term string) bool {
	for _, item := range tx.Items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(tx.Description), term) {
		return true
	}
	return strings.Contains(formatTotal(tx.Total), term)
}

// formatTotal renders a total the way the UI shows raw numbers: no
// trailing zeros, no exponent for typical magnitudes.
func formatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
