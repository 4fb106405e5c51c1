package session

import (
	"fmt"

	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/parser"
)

// Bound names which side of a break interval is being edited.
type Bound string

const (
	BoundStart Bound = "start"
	BoundEnd   Bound = "end"
)

// EditBreak applies a retroactive edit to one bound of one break and returns
// the updated break sequence, leaving the session untouched. The new value is
// a time of day resolved against the session's calendar date. The edit is
// rejected when it would invert the break, push it outside a finished work
// period, or make it overlap any other break in the sequence.
//
// Callers persist the result through the normal session save path, which
// re-runs Validate as a second line of defense.
func EditBreak(s *models.Session, index int, bound Bound, clock string) ([]models.Break, error) {
	if index < 0 || index >= len(s.Breaks) {
		return nil, fmt.Errorf("session has no break %d", index+1)
	}

	at, err := parser.ResolveClock(s.Date, clock)
	if err != nil {
		return nil, err
	}

	edited := s.Breaks[index]
	switch bound {
	case BoundStart:
		edited.StartedAt = at
	case BoundEnd:
		edited.FinishedAt = &at
	default:
		return nil, fmt.Errorf("unknown break bound '%s'", bound)
	}

	if edited.FinishedAt != nil && !edited.FinishedAt.After(edited.StartedAt) {
		return nil, fmt.Errorf("break %d must end after it starts", index+1)
	}

	if !s.StartedAt.IsZero() && s.FinishedAt != nil {
		if at.Before(s.StartedAt) || at.After(*s.FinishedAt) {
			return nil, fmt.Errorf("break %d must be within the work period", index+1)
		}
	}

	// Full pairwise overlap check against every sibling break
	for i := range s.Breaks {
		if i == index {
			continue
		}
		other := &s.Breaks[i]
		if other.FinishedAt == nil || edited.FinishedAt == nil {
			continue
		}
		if edited.StartedAt.Before(*other.FinishedAt) && edited.FinishedAt.After(other.StartedAt) {
			return nil, fmt.Errorf("break %d would overlap break %d", index+1, i+1)
		}
	}

	updated := make([]models.Break, len(s.Breaks))
	copy(updated, s.Breaks)
	updated[index] = edited

	return updated, nil
}

// RemoveBreak drops the break at index from the session. Removing the
// currently open break puts the session back to working so the status never
// disagrees with the break sequence.
func RemoveBreak(s *models.Session, index int) (models.Break, error) {
	if index < 0 || index >= len(s.Breaks) {
		return models.Break{}, fmt.Errorf("session has no break %d", index+1)
	}

	removed := s.Breaks[index]

	updated := make([]models.Break, 0, len(s.Breaks)-1)
	updated = append(updated, s.Breaks[:index]...)
	updated = append(updated, s.Breaks[index+1:]...)
	s.Breaks = updated

	if removed.FinishedAt == nil && s.Status == models.StatusOnBreak {
		s.Status = models.StatusWorking
	}

	return removed, nil
}
