package session

import (
	"fmt"
	"math"

	"github.com/aldiyarseitov/shiftlog/internal/models"
)

// Validate checks a candidate session and returns every violation found,
// in check order. An empty slice means the session is safe to persist.
// Validation never fails hard; callers decide what to do with the list.
func Validate(s *models.Session) []string {
	var violations []string

	violations = append(violations, checkMileage(s)...)
	violations = append(violations, checkCounters(s)...)
	violations = append(violations, checkBreakOrdering(s)...)
	violations = append(violations, checkBreakContainment(s)...)
	violations = append(violations, checkBreakOverlap(s)...)
	violations = append(violations, checkStatusConsistency(s)...)

	return violations
}

// checkStatusConsistency rejects a lifecycle status that disagrees with the
// break sequence. Such a session cannot be produced by the lifecycle
// transitions, only by a careless correction.
func checkStatusConsistency(s *models.Session) []string {
	open := s.OpenBreakIndex() >= 0
	switch {
	case s.Status == models.StatusOnBreak && !open:
		return []string{"status is on_break but no break is open"}
	case s.Status != models.StatusOnBreak && open:
		return []string{fmt.Sprintf("a break is still open but the status is %s", s.Status)}
	}
	return nil
}

func checkMileage(s *models.Session) []string {
	var violations []string

	if s.StartKm != nil && math.IsNaN(*s.StartKm) {
		violations = append(violations, "starting odometer must be a valid number")
	}
	if s.EndKm != nil && math.IsNaN(*s.EndKm) {
		violations = append(violations, "ending odometer must be a valid number")
	}
	if len(violations) > 0 {
		return violations
	}

	if s.StartKm != nil && s.EndKm != nil && *s.EndKm < *s.StartKm {
		violations = append(violations,
			"ending odometer must be greater than or equal to starting odometer")
	}

	return violations
}

func checkCounters(s *models.Session) []string {
	var violations []string

	counters := []struct {
		value int
		name  string
	}{
		{s.DeliveriesOK, "successful deliveries"},
		{s.DeliveriesFailed, "failed deliveries"},
		{s.PickupsOK, "successful pickups"},
		{s.PickupsFailed, "failed pickups"},
	}

	for _, c := range counters {
		if c.value < 0 {
			violations = append(violations, fmt.Sprintf("%s cannot be negative", c.name))
		}
	}

	return violations
}

func checkBreakOrdering(s *models.Session) []string {
	var violations []string

	for i := range s.Breaks {
		b := &s.Breaks[i]
		if b.FinishedAt == nil {
			continue
		}
		if !b.FinishedAt.After(b.StartedAt) {
			violations = append(violations,
				fmt.Sprintf("break %d must end after it starts", i+1))
		}
	}

	return violations
}

// checkBreakContainment only applies once the day has ended; while the
// driver is still working the end of the day is unbounded.
func checkBreakContainment(s *models.Session) []string {
	if s.StartedAt.IsZero() || s.FinishedAt == nil {
		return nil
	}

	var violations []string
	for i := range s.Breaks {
		b := &s.Breaks[i]
		outside := b.StartedAt.Before(s.StartedAt) || b.StartedAt.After(*s.FinishedAt)
		if b.FinishedAt != nil {
			outside = outside || b.FinishedAt.Before(s.StartedAt) || b.FinishedAt.After(*s.FinishedAt)
		}
		if outside {
			violations = append(violations,
				fmt.Sprintf("break %d must be within the work period", i+1))
		}
	}

	return violations
}

// checkBreakOverlap compares every pair of completed breaks, not just
// neighbours in insertion order.
func checkBreakOverlap(s *models.Session) []string {
	var violations []string

	for i := range s.Breaks {
		a := &s.Breaks[i]
		if a.FinishedAt == nil {
			continue
		}
		for j := i + 1; j < len(s.Breaks); j++ {
			b := &s.Breaks[j]
			if b.FinishedAt == nil {
				continue
			}
			if a.StartedAt.Before(*b.FinishedAt) && a.FinishedAt.After(b.StartedAt) {
				violations = append(violations,
					fmt.Sprintf("break %d overlaps break %d", i+1, j+1))
			}
		}
	}

	return violations
}
