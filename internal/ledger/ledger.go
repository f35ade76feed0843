// Package ledger records income and expense transactions. Recording is
// the one piece of real business logic in the system: it validates the
// selection, snapshots the chosen fee items, computes the total, and
// appends to the ledger. Ledgers are append-only; the only mutation
// after creation is the pending→paid status transition.
package ledger

import (
	"strings"
	"time"

	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/store"
	"schoolledger/internal/uuid"
)

// IncomeInput describes a fee payment to record. Items are selected by
// id from the IncomeItem master data and snapshotted into the
// transaction.
type IncomeInput struct {
	ParentID     string
	StudentIDs   []string
	ItemIDs      []string
	Date         time.Time
	Status       models.IncomeStatus
	ReceiptImage string
	LoggedUser   string
}

// ExpenseInput describes school spending to record. Line items are
// free-form and live only inside the transaction.
type ExpenseInput struct {
	Items        []models.ExpenseItem
	Date         time.Time
	ReceiptImage string
	LoggedUser   string
	Description  string
}

// Servicer defines the contract for transaction recording.
type Servicer interface {
	RecordIncome(in IncomeInput) (*models.IncomeTransaction, error)
	RecordExpense(in ExpenseInput) (*models.ExpenseTransaction, error)
	MarkPaid(transactionID string) (*models.IncomeTransaction, error)
}

type service struct {
	store *store.Store
}

// NewService creates a new ledger Servicer over the given store.
func NewService(s *store.Store) Servicer {
	return &service{store: s}
}

// IncomeTotal computes a transaction total from item snapshots: a
// per_student item contributes its price once per selected student, a
// per_parent item contributes its price once.
func IncomeTotal(items []models.IncomeItem, studentCount int) float64 {
	var total float64
	for _, item := range items {
		if item.Type == models.IncomeItemPerStudent {
			total += item.Price * float64(studentCount)
		} else {
			total += item.Price
		}
	}
	return total
}

// ExpenseTotal computes a transaction total as the sum of line item
// amounts. No multiplier logic applies on the expense side.
func ExpenseTotal(items []models.ExpenseItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// RecordIncome validates the selection, snapshots the selected items,
// computes the total, and appends the transaction with status pending
// unless an explicit status is given. The ledger is untouched when
// validation fails.
func (s *service) RecordIncome(in IncomeInput) (*models.IncomeTransaction, error) {
	var missing []string
	if in.ParentID == "" {
		missing = append(missing, "parent")
	}
	if len(in.StudentIDs) == 0 {
		missing = append(missing, "students")
	}
	if len(in.ItemIDs) == 0 {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation,
			"missing required fields: "+strings.Join(missing, ", "))
	}

	items := make([]models.IncomeItem, 0, len(in.ItemIDs))
	for _, itemID := range in.ItemIDs {
		item, err := s.store.IncomeItems.Get(itemID)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrIncomeItemNotFound,
				"income item "+itemID+" not found")
		}
		items = append(items, item)
	}

	status := in.Status
	if status == "" {
		status = models.IncomeStatusPending
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &models.IncomeTransaction{
		ParentID:     in.ParentID,
		StudentIDs:   in.StudentIDs,
		Items:        items,
		Total:        IncomeTotal(items, len(in.StudentIDs)),
		Date:         date,
		Status:       status,
		ReceiptImage: in.ReceiptImage,
		LoggedUser:   in.LoggedUser,
	}
	if err := s.store.IncomeTransactions.Add(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// RecordExpense validates the line items, computes the total, and
// appends the transaction. Line items get fresh identifiers when the
// caller supplies none.
func (s *service) RecordExpense(in ExpenseInput) (*models.ExpenseTransaction, error) {
	if len(in.Items) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation,
			"missing required fields: items")
	}
	for i := range in.Items {
		if in.Items[i].ID == "" {
			in.Items[i].ID = uuid.New()
		}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &models.ExpenseTransaction{
		Items:        in.Items,
		Total:        ExpenseTotal(in.Items),
		Date:         date,
		ReceiptImage: in.ReceiptImage,
		LoggedUser:   in.LoggedUser,
		Description:  in.Description,
	}
	if err := s.store.ExpenseTransactions.Add(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// MarkPaid transitions a pending income transaction to paid. Paid
// transactions stay paid; any other transition is rejected.
func (s *service) MarkPaid(transactionID string) (*models.IncomeTransaction, error) {
	tx, err := s.store.IncomeTransactions.Get(transactionID)
	if err != nil {
		return nil, err
	}
	if tx.Status != models.IncomeStatusPending {
		return nil, apperrors.ErrInvalidStatusChange
	}

	tx.Status = models.IncomeStatusPaid
	if err := s.store.IncomeTransactions.Update(tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
