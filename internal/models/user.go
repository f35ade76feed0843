package models

import "time"

// User represents an administrative user account. RoleID references a
// Role record. Accounts carry no credentials: authentication is handled
// outside this system and roles are informational.
type User struct {
	Base
	Username  string     `gorm:"size:100;not null" json:"username"`
	Email     string     `gorm:"size:255;not null" json:"email"`
	FirstName string     `gorm:"size:100;not null" json:"firstName"`
	LastName  string     `gorm:"size:100;not null" json:"lastName"`
	RoleID    string     `gorm:"type:uuid;not null" json:"roleId"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
