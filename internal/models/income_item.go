package models

// IncomeItemType determines how an item's price contributes to a
// transaction total.
type IncomeItemType string

const (
	// IncomeItemPerStudent items multiply their price by the number of
	// selected students.
	IncomeItemPerStudent IncomeItemType = "per_student"
	// IncomeItemPerParent items contribute their price once per transaction.
	IncomeItemPerParent IncomeItemType = "per_parent"
)

// IncomeItem represents a billable fee item (tuition, uniform, trip fee).
type IncomeItem struct {
	Base
	Name        string         `gorm:"size:200;not null" json:"name"`
	Price       float64        `gorm:"not null" json:"price"`
	Type        IncomeItemType `gorm:"size:20;not null" json:"type"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
}
