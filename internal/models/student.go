package models

// Student represents an enrolled student. ParentID references a Parent
// record; the reference is resolved for display only and a dangling ID
// renders as "Unknown Student" in listings rather than failing.
type Student struct {
	Base
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	ParentID  string `gorm:"type:uuid;not null" json:"parentId"`
	Teacher   string `gorm:"size:100" json:"teacher,omitempty"`
	Section   string `gorm:"size:50" json:"section,omitempty"`
}

// FullName returns the display name used in transaction listings.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
