package models

import (
	"time"

	"gorm.io/gorm"
)

// Session lifecycle statuses
const (
	StatusWorking = "working"
	StatusOnBreak = "on_break"
	StatusEnded   = "ended"
)

// DateLayout is the calendar-date format sessions are keyed by
const DateLayout = "2006-01-02"

// Session represents one driver's workday, from clock-in to clock-out
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// LocalID identifies the session before its first successful save
	LocalID string `gorm:"uniqueIndex" json:"local_id"`

	UserID     uint       `gorm:"not null;index" json:"user_id"`
	Date       string     `gorm:"not null;index" json:"date"` // local calendar day, YYYY-MM-DD
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
	Status     string     `gorm:"default:working" json:"status"` // working, on_break, ended

	// End-of-day report
	RouteNumber      string   `json:"route_number"`
	DeliveriesOK     int      `json:"deliveries_ok"`
	DeliveriesFailed int      `json:"deliveries_failed"`
	PickupsOK        int      `json:"pickups_ok"`
	PickupsFailed    int      `json:"pickups_failed"`
	DeliveryComment  string   `json:"delivery_comment"`
	PickupComment    string   `json:"pickup_comment"`
	StartKm          *float64 `json:"start_km"`
	EndKm            *float64 `json:"end_km"`

	// Relationships
	User   User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Breaks []Break `gorm:"foreignKey:SessionID" json:"breaks"`
}

// Break is a rest interval nested within a session. FinishedAt is nil
// while the break is still running.
type Break struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SessionID  uint       `gorm:"not null;index" json:"session_id"`
	StartedAt  time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
}

// OpenBreakIndex returns the index of the currently running break, or -1
func (s *Session) OpenBreakIndex() int {
	for i := range s.Breaks {
		if s.Breaks[i].FinishedAt == nil {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the session, breaks included. Lifecycle
// operations mutate a clone so a guard or validation failure leaves the
// original untouched.
func (s *Session) Clone() *Session {
	c := *s
	c.Breaks = make([]Break, len(s.Breaks))
	copy(c.Breaks, s.Breaks)
	for i := range c.Breaks {
		if s.Breaks[i].FinishedAt != nil {
			t := *s.Breaks[i].FinishedAt
			c.Breaks[i].FinishedAt = &t
		}
	}
	if s.FinishedAt != nil {
		t := *s.FinishedAt
		c.FinishedAt = &t
	}
	if s.StartKm != nil {
		v := *s.StartKm
		c.StartKm = &v
	}
	if s.EndKm != nil {
		v := *s.EndKm
		c.EndKm = &v
	}
	return &c
}
