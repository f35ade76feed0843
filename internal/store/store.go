// Package store provides the in-memory entity store. A Store owns one
// typed collection per entity, hydrated from the persistence backend at
// startup and constructed once per process; consumers receive it by
// reference instead of touching ambient globals.
package store

import (
	apperrors "schoolledger/internal/errors"
	"schoolledger/internal/models"
	"schoolledger/internal/storage"
)

// Store holds the current snapshot of every entity collection and the
// two transaction ledgers.
type Store struct {
	Parents             *Collection[models.Parent]
	Students            *Collection[models.Student]
	IncomeItems         *Collection[models.IncomeItem]
	IncomeTransactions  *Collection[models.IncomeTransaction]
	ExpenseTransactions *Collection[models.ExpenseTransaction]
	CostCenters         *Collection[models.CostCenter]
	Teachers            *Collection[models.Teacher]
	Sections            *Collection[models.Section]
	Users               *Collection[models.User]
	Roles               *Collection[models.Role]
}

// Open constructs the store over the given persistence backend and
// hydrates every collection from it.
func Open(backend storage.Store) (*Store, error) {
	s := &Store{
		Parents:             newCollection[models.Parent](storage.KeyParents, backend, apperrors.ErrParentNotFound),
		Students:            newCollection[models.Student](storage.KeyStudents, backend, apperrors.ErrStudentNotFound),
		IncomeItems:         newCollection[models.IncomeItem](storage.KeyIncomeItems, backend, apperrors.ErrIncomeItemNotFound),
		IncomeTransactions:  newCollection[models.IncomeTransaction](storage.KeyIncomeTransactions, backend, apperrors.ErrTransactionNotFound),
		ExpenseTransactions: newCollection[models.ExpenseTransaction](storage.KeyExpenseTransactions, backend, apperrors.ErrTransactionNotFound),
		CostCenters:         newCollection[models.CostCenter](storage.KeyCostCenters, backend, apperrors.ErrCostCenterNotFound),
		Teachers:            newCollection[models.Teacher](storage.KeyTeachers, backend, apperrors.ErrTeacherNotFound),
		Sections:            newCollection[models.Section](storage.KeySections, backend, apperrors.ErrSectionNotFound),
		Users:               newCollection[models.User](storage.KeyUsers, backend, apperrors.ErrUserNotFound),
		Roles:               newCollection[models.Role](storage.KeyRoles, backend, apperrors.ErrRoleNotFound),
	}

	for _, hydrate := range []func() error{
		s.Parents.hydrate,
		s.Students.hydrate,
		s.IncomeItems.hydrate,
		s.IncomeTransactions.hydrate,
		s.ExpenseTransactions.hydrate,
		s.CostCenters.hydrate,
		s.Teachers.hydrate,
		s.Sections.hydrate,
		s.Users.hydrate,
		s.Roles.hydrate,
	} {
		if err := hydrate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}
