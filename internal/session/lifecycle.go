package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aldiyarseitov/shiftlog/internal/models"
)

// Report carries the end-of-day figures a driver submits when clocking out.
type Report struct {
	RouteNumber      string
	DeliveriesOK     int
	DeliveriesFailed int
	PickupsOK        int
	PickupsFailed    int
	DeliveryComment  string
	PickupComment    string
	EndKm            *float64
}

// StartDay creates a fresh working session for a driver. The local id stands
// in for the storage id until the first successful save.
func StartDay(userID uint, now time.Time, startKm *float64) *models.Session {
	return &models.Session{
		LocalID:   uuid.NewString(),
		UserID:    userID,
		Date:      now.Format(models.DateLayout),
		StartedAt: now,
		Status:    models.StatusWorking,
		StartKm:   startKm,
	}
}

// StartBreak opens a new break on a working session. The session is left
// unchanged when the transition is not legal.
func StartBreak(s *models.Session, now time.Time) error {
	if s.Status == models.StatusEnded {
		return fmt.Errorf("shift already ended")
	}
	if s.Status == models.StatusOnBreak || s.OpenBreakIndex() >= 0 {
		return fmt.Errorf("a break is already in progress. End it first with 'shiftlog resume'")
	}

	s.Breaks = append(s.Breaks, models.Break{
		SessionID: s.ID,
		StartedAt: now,
	})
	s.Status = models.StatusOnBreak

	return nil
}

// EndBreak closes the currently open break and puts the session back to
// working.
func EndBreak(s *models.Session, now time.Time) error {
	if s.Status == models.StatusEnded {
		return fmt.Errorf("shift already ended")
	}
	open := s.OpenBreakIndex()
	if open < 0 {
		return fmt.Errorf("no break in progress")
	}

	s.Breaks[open].FinishedAt = &now
	s.Status = models.StatusWorking

	return nil
}

// EndDay applies the end-of-day report and closes the session. The report is
// applied to a copy first and validated; on any violation the session is left
// exactly as it was and the violations are returned for display. A non-nil
// error means the transition itself was not legal.
func EndDay(s *models.Session, now time.Time, report Report) ([]string, error) {
	if s.Status == models.StatusEnded {
		return nil, fmt.Errorf("shift already ended")
	}
	if s.OpenBreakIndex() >= 0 {
		return nil, fmt.Errorf("a break is still in progress. End it first with 'shiftlog resume'")
	}

	candidate := s.Clone()
	candidate.FinishedAt = &now
	candidate.Status = models.StatusEnded
	candidate.RouteNumber = report.RouteNumber
	candidate.DeliveriesOK = report.DeliveriesOK
	candidate.DeliveriesFailed = report.DeliveriesFailed
	candidate.PickupsOK = report.PickupsOK
	candidate.PickupsFailed = report.PickupsFailed
	candidate.DeliveryComment = report.DeliveryComment
	candidate.PickupComment = report.PickupComment
	candidate.EndKm = report.EndKm

	if !now.After(s.StartedAt) {
		return []string{"shift must end after it starts"}, nil
	}
	if violations := Validate(candidate); len(violations) > 0 {
		return violations, nil
	}

	*s = *candidate

	return nil, nil
}
