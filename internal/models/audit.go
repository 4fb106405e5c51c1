package models

import "time"

// AuditEntry records one field-level change made by an administrator to a
// session. Entries are append-only and never updated or deleted.
type AuditEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID uint   `gorm:"not null;index" json:"session_id"`
	AdminID   uint   `gorm:"not null" json:"admin_id"`
	Field     string `gorm:"not null" json:"field"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
}
