package models

// Parent represents a paying parent or guardian. Email and phone are
// optional contact fields; absent values render as empty strings.
type Parent struct {
	Base
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"size:255" json:"email,omitempty"`
	Phone     string `gorm:"size:20" json:"phone,omitempty"`
}

// FullName returns the display name used in transaction listings.
func (p Parent) FullName() string {
	return p.FirstName + " " + p.LastName
}
