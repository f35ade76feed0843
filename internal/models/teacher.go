package models

// Teacher represents a staff member. Subjects is free-form; EmployeeID
// is the school's own staff identifier, not a foreign key.
type Teacher struct {
	Base
	FirstName  string   `gorm:"size:100;not null" json:"firstName"`
	LastName   string   `gorm:"size:100;not null" json:"lastName"`
	Email      string   `gorm:"size:255" json:"email,omitempty"`
	Phone      string   `gorm:"size:20" json:"phone,omitempty"`
	Subjects   []string `gorm:"serializer:json" json:"subjects,omitempty"`
	EmployeeID string   `gorm:"size:50" json:"employeeId,omitempty"`
}

// FullName returns the display name used in section listings.
func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
