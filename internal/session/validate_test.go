package session_test

import (
	"math"
	"strings"
	"testing"

	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

func hasViolation(violations []string, substr string) bool {
	for _, v := range violations {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}

func TestValidateCleanSession(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.StartKm = km(200)
	s.EndKm = km(310)

	if violations := session.Validate(s); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateMileageOrdering(t *testing.T) {
	t.Parallel()

	s := &models.Session{StartKm: km(200), EndKm: km(100)}
	violations := session.Validate(s)

	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %v", violations)
	}
	if !hasViolation(violations, "greater than or equal to starting") {
		t.Fatalf("expected mileage ordering violation, got %v", violations)
	}
}

func TestValidateMileageNaN(t *testing.T) {
	t.Parallel()

	s := &models.Session{StartKm: km(math.NaN()), EndKm: km(100)}
	violations := session.Validate(s)

	if !hasViolation(violations, "valid number") {
		t.Fatalf("expected 'valid number' violation, got %v", violations)
	}
	if hasViolation(violations, "greater than or equal") {
		t.Fatalf("NaN readings should not also fail the ordering check: %v", violations)
	}
}

func TestValidateNegativeCounters(t *testing.T) {
	t.Parallel()

	s := &models.Session{
		DeliveriesOK:     -1,
		DeliveriesFailed: 2,
		PickupsOK:        -5,
		PickupsFailed:    0,
	}
	violations := session.Validate(s)

	if !hasViolation(violations, "successful deliveries cannot be negative") {
		t.Fatalf("missing deliveries violation: %v", violations)
	}
	if !hasViolation(violations, "successful pickups cannot be negative") {
		t.Fatalf("missing pickups violation: %v", violations)
	}
	if len(violations) != 2 {
		t.Fatalf("expected two violations, got %v", violations)
	}
}

func TestValidateBreakOrdering(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.Breaks = []models.Break{
		{StartedAt: at(12, 30), FinishedAt: atPtr(12, 0)}, // inverted
	}

	violations := session.Validate(s)
	if !hasViolation(violations, "break 1 must end after it starts") {
		t.Fatalf("expected break ordering violation, got %v", violations)
	}
}

func TestValidateBreakContainment(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.Breaks = []models.Break{
		{StartedAt: at(7, 30), FinishedAt: atPtr(8, 30)}, // starts before the shift
	}

	violations := session.Validate(s)
	if !hasViolation(violations, "break 1 must be within the work period") {
		t.Fatalf("expected containment violation, got %v", violations)
	}

	// While the day is still running the end is unbounded
	s.FinishedAt = nil
	s.Breaks = []models.Break{
		{StartedAt: at(12, 0), FinishedAt: atPtr(23, 0)},
	}
	if violations := session.Validate(s); len(violations) != 0 {
		t.Fatalf("open day should not bound breaks from above: %v", violations)
	}
}

func TestValidateBreakOverlap(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.Breaks = []models.Break{
		{StartedAt: at(10, 0), FinishedAt: atPtr(10, 45)},
		{StartedAt: at(10, 30), FinishedAt: atPtr(11, 0)},
	}

	violations := session.Validate(s)
	if !hasViolation(violations, "break 1 overlaps break 2") {
		t.Fatalf("expected overlap violation naming both breaks, got %v", violations)
	}
}

func TestValidateBreakOverlapNonAdjacent(t *testing.T) {
	t.Parallel()

	// The conflicting pair is not adjacent in insertion order; the check is
	// full pairwise, not neighbour-only.
	s := fullDay()
	s.Breaks = []models.Break{
		{StartedAt: at(10, 0), FinishedAt: atPtr(10, 45)},
		{StartedAt: at(13, 0), FinishedAt: atPtr(13, 15)},
		{StartedAt: at(10, 30), FinishedAt: atPtr(11, 0)},
	}

	violations := session.Validate(s)
	if !hasViolation(violations, "break 1 overlaps break 3") {
		t.Fatalf("expected non-adjacent overlap violation, got %v", violations)
	}
}

func TestValidateTouchingBreaksDoNotOverlap(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.Breaks = []models.Break{
		{StartedAt: at(10, 0), FinishedAt: atPtr(10, 30)},
		{StartedAt: at(10, 30), FinishedAt: atPtr(11, 0)},
	}

	if violations := session.Validate(s); len(violations) != 0 {
		t.Fatalf("back-to-back breaks should be legal: %v", violations)
	}
}

func TestValidateStatusMustMatchBreaks(t *testing.T) {
	t.Parallel()

	// on_break with every break closed can only come from a correction
	s := fullDay()
	s.FinishedAt = nil
	s.Status = models.StatusOnBreak

	violations := session.Validate(s)
	if !hasViolation(violations, "status is on_break but no break is open") {
		t.Fatalf("expected status/break mismatch violation, got %v", violations)
	}

	// The other direction: a break left open under a working status
	s = fullDay()
	s.FinishedAt = nil
	s.Status = models.StatusWorking
	s.Breaks = []models.Break{{StartedAt: at(12, 0)}}

	violations = session.Validate(s)
	if !hasViolation(violations, "a break is still open but the status is working") {
		t.Fatalf("expected open-break violation, got %v", violations)
	}

	// Matching pairs stay legal
	s.Status = models.StatusOnBreak
	if violations := session.Validate(s); len(violations) != 0 {
		t.Fatalf("consistent on_break session flagged: %v", violations)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.StartKm = km(300)
	s.EndKm = km(200)
	s.DeliveriesFailed = -1
	s.Breaks = []models.Break{
		{StartedAt: at(12, 30), FinishedAt: atPtr(12, 0)},
	}

	violations := session.Validate(s)
	if len(violations) < 3 {
		t.Fatalf("expected all checks to report, got %v", violations)
	}
}
