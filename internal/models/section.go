package models

// Section represents a class section. TeacherID optionally references a
// Teacher; an absent or dangling reference renders as "Unassigned".
type Section struct {
	Base
	Name        string `gorm:"size:100;not null" json:"name"`
	Grade       string `gorm:"size:50;not null" json:"grade"`
	Capacity    int    `gorm:"not null" json:"capacity"`
	TeacherID   string `gorm:"type:uuid" json:"teacherId,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}
