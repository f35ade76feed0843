package models

import "time"

// IncomeStatus is the payment status of an income transaction.
type IncomeStatus string

const (
	IncomeStatusPending IncomeStatus = "pending"
	IncomeStatusPaid    IncomeStatus = "paid"
)

// IncomeTransaction is an append-only ledger record of a fee payment.
// Items are snapshots of the fee items at recording time, so later edits
// to the IncomeItem master data never change historical totals. The
// record is immutable after creation except for the pending→paid status
// transition.
type IncomeTransaction struct {
	Base
	ParentID     string       `gorm:"type:uuid;not null" json:"parentId"`
	StudentIDs   []string     `gorm:"serializer:json;not null" json:"studentIds"`
	Items        []IncomeItem `gorm:"serializer:json;not null" json:"items"`
	Total        float64      `gorm:"not null" json:"total"`
	Date         time.Time    `gorm:"not null" json:"date"`
	Status       IncomeStatus `gorm:"size:20;not null" json:"status"`
	ReceiptImage string       `gorm:"type:text" json:"receiptImage,omitempty"`
	LoggedUser   string       `gorm:"size:100;not null" json:"loggedUser"`
}
