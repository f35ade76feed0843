package models

// CostCenter is an expense categorization tag, independent of the
// income side.
type CostCenter struct {
	Base
	Name        string `gorm:"size:100;not null" json:"name"`
	Code        string `gorm:"size:20;not null" json:"code"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}
