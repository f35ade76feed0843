package reports

import (
	"sort"

	"schoolledger/internal/models"
)

// SortField selects the income ledger sort key.
type SortField string

const (
	SortByDate      SortField = "date"
	SortByParent    SortField = "parent"
	SortByTotal     SortField = "total"
	SortByStatus    SortField = "status"
	SortByCreatedAt SortField = "createdAt"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortIncome returns a sorted copy of the transactions. The ascending
// sort is stable with insertion order as the tie-break; descending is
// the exact reverse of ascending, so reversing an ascending sort always
// equals sorting descending.
func SortIncome(txs []models.IncomeTransaction, field SortField, order SortOrder, res Resolver) []models.IncomeTransaction {
	out := make([]models.IncomeTransaction, len(txs))
	copy(out, txs)

	sort.SliceStable(out, func(i, j int) bool {
		return incomeLess(out[i], out[j], field, res)
	})
	if order == OrderDesc {
		reverse(out)
	}
	return out
}

func incomeLess(a, b models.IncomeTransaction, field SortField, res Resolver) bool {
	switch field {
	case SortByParent:
		return res.ParentName(a.ParentID) < res.ParentName(b.ParentID)
	case SortByTotal:
		return a.Total < b.Total
	case SortByStatus:
		return a.Status < b.Status
	case SortByCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	default: // SortByDate
		return a.Date.Before(b.Date)
	}
}

func reverse(txs []models.IncomeTransaction) {
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
}
