package models

import "time"

// ExpenseItem is a line item inside an expense transaction. It is a
// value type, not a stored collection: expense items only exist embedded
// in the transaction that recorded them. CostCenterID tags the item with
// an expense category; a dangling reference renders as "Unassigned".
type ExpenseItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	CostCenterID string  `json:"costCenterId"`
	Description  string  `json:"description,omitempty"`
}

// ExpenseTransaction is an append-only ledger record of school spending.
type ExpenseTransaction struct {
	Base
	Items        []ExpenseItem `gorm:"serializer:json;not null" json:"items"`
	Total        float64       `gorm:"not null" json:"total"`
	Date         time.Time     `gorm:"not null" json:"date"`
	ReceiptImage string        `gorm:"type:text" json:"receiptImage,omitempty"`
	LoggedUser   string        `gorm:"size:100;not null" json:"loggedUser"`
	Description  string        `gorm:"type:text" json:"description,omitempty"`
}
