package session

import (
	"time"

	"github.com/aldiyarseitov/shiftlog/internal/models"
)

// TimeMetrics holds the derived durations of a workday in fractional hours.
// WorkHours + BreakHours always equals TotalHours.
type TimeMetrics struct {
	TotalHours float64
	BreakHours float64
	WorkHours  float64
}

// Metrics computes total, break and work time for a session. A session
// without a finish timestamp has no total yet, so all three values are zero.
// Breaks still running contribute nothing to break time.
func Metrics(s *models.Session) TimeMetrics {
	if s == nil || s.StartedAt.IsZero() || s.FinishedAt == nil {
		return TimeMetrics{}
	}

	total := s.FinishedAt.Sub(s.StartedAt)

	var breaks time.Duration
	for i := range s.Breaks {
		b := &s.Breaks[i]
		if b.FinishedAt == nil {
			continue
		}
		breaks += b.FinishedAt.Sub(b.StartedAt)
	}

	return TimeMetrics{
		TotalHours: total.Hours(),
		BreakHours: breaks.Hours(),
		WorkHours:  (total - breaks).Hours(),
	}
}

// ElapsedWork returns the running work time of an unfinished session as of
// now, with completed and ongoing breaks subtracted. Used by the live shift
// view; finished sessions should use Metrics instead.
func ElapsedWork(s *models.Session, now time.Time) time.Duration {
	if s == nil || s.StartedAt.IsZero() {
		return 0
	}

	elapsed := now.Sub(s.StartedAt)
	for i := range s.Breaks {
		b := &s.Breaks[i]
		if b.FinishedAt != nil {
			elapsed -= b.FinishedAt.Sub(b.StartedAt)
		} else {
			elapsed -= now.Sub(b.StartedAt)
		}
	}
	return elapsed
}
