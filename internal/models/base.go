package models

import "time"

// Base contains the common columns shared by all master-data and
// transaction records.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID returns the record's unique identifier.
func (b *Base) EntityID() string { return b.ID }

// SetEntityID assigns the record's unique identifier.
func (b *Base) SetEntityID(id string) { b.ID = id }

// StampCreated fills in the creation and update timestamps for a new record.
// An explicitly provided CreatedAt is preserved.
func (b *Base) StampCreated(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// CreatedTime returns the creation timestamp.
func (b *Base) CreatedTime() time.Time { return b.CreatedAt }

// StampUpdated refreshes the update timestamp.
func (b *Base) StampUpdated(now time.Time) {
	b.UpdatedAt = now
}
