// Package errors provides custom error types for the school ledger API.
// All store-, ledger-, and report-layer errors should use AppError so
// handlers can produce consistent JSON responses without leaking internals.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrPersistence    = &AppError{Code: "PERSISTENCE_ERROR", Message: "Failed to persist data", StatusCode: http.StatusInternalServerError}
	ErrDateParse      = &AppError{Code: "DATE_PARSE_ERROR", Message: "Malformed date", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Master data errors.
var (
	ErrParentNotFound     = &AppError{Code: "PARENT_NOT_FOUND", Message: "Parent not found", StatusCode: http.StatusNotFound}
	ErrStudentNotFound    = &AppError{Code: "STUDENT_NOT_FOUND", Message: "Student not found", StatusCode: http.StatusNotFound}
	ErrIncomeItemNotFound = &AppError{Code: "INCOME_ITEM_NOT_FOUND", Message: "Income item not found", StatusCode: http.StatusNotFound}
	ErrTeacherNotFound    = &AppError{Code: "TEACHER_NOT_FOUND", Message: "Teacher not found", StatusCode: http.StatusNotFound}
	ErrSectionNotFound    = &AppError{Code: "SECTION_NOT_FOUND", Message: "Section not found", StatusCode: http.StatusNotFound}
	ErrCostCenterNotFound = &AppError{Code: "COST_CENTER_NOT_FOUND", Message: "Cost center not found", StatusCode: http.StatusNotFound}
	ErrUserNotFound       = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrRoleNotFound       = &AppError{Code: "ROLE_NOT_FOUND", Message: "Role not found", StatusCode: http.StatusNotFound}
)

// Ledger errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidStatusChange = &AppError{Code: "INVALID_STATUS_CHANGE", Message: "Only pending transactions can be marked paid", StatusCode: http.StatusBadRequest}
)
