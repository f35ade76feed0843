package reports

import (
	"time"

	"schoolledger/internal/models"
)

// KPISnapshot holds the derived metrics shown on the KPI dashboard.
type KPISnapshot struct {
	MonthlyIncome       float64 `json:"monthlyIncome"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	NetIncome           float64 `json:"netIncome"`
	IncomeGrowth        float64 `json:"incomeGrowth"`
	AvgTransactionValue float64 `json:"avgTransactionValue"`
	ActiveParents       int     `json:"activeParents"`
	TotalStudents       int     `json:"totalStudents"`
	PaidStudents        int     `json:"paidStudents"`
	PaymentRate         float64 `json:"paymentRate"`
	MonthlyTarget       float64 `json:"monthlyTarget"`
	TargetProgress      float64 `json:"targetProgress"`
}

// BuildKPIs computes the dashboard snapshot from the two ledgers and
// the student roll. monthlyTarget is the configured income goal used
// for the progress gauge.
func BuildKPIs(income []models.IncomeTransaction, expenses []models.ExpenseTransaction, totalStudents int, monthlyTarget float64, now time.Time) KPISnapshot {
	thisStart := monthStart(now)

	var monthlyIncome, totalIncome float64
	parents := make(map[string]struct{})
	for _, tx := range income {
		totalIncome += tx.Total
		if !tx.Date.Before(thisStart) && !tx.Date.After(now) {
			monthlyIncome += tx.Total
		}
		parents[tx.ParentID] = struct{}{}
	}

	var monthlyExpenses, totalExpenses float64
	for _, tx := range expenses {
		totalExpenses += tx.Total
		if !tx.Date.Before(thisStart) && !tx.Date.After(now) {
			monthlyExpenses += tx.Total
		}
	}

	snapshot := KPISnapshot{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		NetIncome:       totalIncome - totalExpenses,
		IncomeGrowth:    GrowthRate(income, now),
		ActiveParents:   len(parents),
		TotalStudents:   totalStudents,
		PaidStudents:    PaidStudents(income),
		PaymentRate:     PaymentRate(income, totalStudents),
		MonthlyTarget:   monthlyTarget,
	}
	if len(income) > 0 {
		snapshot.AvgTransactionValue = totalIncome / float64(len(income))
	}
	if monthlyTarget > 0 {
		snapshot.TargetProgress = monthlyIncome / monthlyTarget * 100
	}
	return snapshot
}
