package models

// Role represents a named set of permissions. Permissions are free-text
// strings held as data only; nothing in the API enforces them.
type Role struct {
	Base
	Name        string   `gorm:"size:100;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Permissions []string `gorm:"serializer:json;not null" json:"permissions"`
	IsActive    bool     `gorm:"default:true" json:"isActive"`
}
