package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// User represents a driver or an administrator
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"unique;not null" json:"name"`
	Role string `gorm:"default:driver" json:"role"` // driver, admin

	// Relationships
	Sessions []Session `gorm:"foreignKey:UserID" json:"sessions,omitempty"`
}

// IsAdmin reports whether the user has admin rights
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
