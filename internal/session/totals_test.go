package session_test

import (
	"testing"

	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

func km(v float64) *float64 {
	return &v
}

func TestTotalsSums(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ok, failed int
	}{
		{0, 0},
		{12, 0},
		{0, 3},
		{47, 5},
	}

	for _, tc := range cases {
		s := &models.Session{
			DeliveriesOK:     tc.ok,
			DeliveriesFailed: tc.failed,
			PickupsOK:        tc.failed,
			PickupsFailed:    tc.ok,
		}
		got := session.Totals(s)
		if got.Deliveries != tc.ok+tc.failed {
			t.Fatalf("deliveries %d+%d: got %d", tc.ok, tc.failed, got.Deliveries)
		}
		if got.Pickups != tc.ok+tc.failed {
			t.Fatalf("pickups %d+%d: got %d", tc.failed, tc.ok, got.Pickups)
		}
	}
}

func TestTotalsDistance(t *testing.T) {
	t.Parallel()

	s := &models.Session{StartKm: km(1200.5), EndKm: km(1287.838)}
	got := session.Totals(s)

	if !got.DistanceKnown {
		t.Fatalf("distance should be known")
	}
	if got.Distance != 87.34 {
		t.Fatalf("want 87.34 km rounded to two decimals, got %v", got.Distance)
	}
}

func TestTotalsDistanceUnknownIsNotZero(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		start *float64
		end   *float64
	}{
		{"no readings", nil, nil},
		{"start only", km(100), nil},
		{"end only", nil, km(100)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := session.Totals(&models.Session{StartKm: tc.start, EndKm: tc.end})
			if got.DistanceKnown {
				t.Fatalf("distance should be unknown")
			}
			if got.FormatDistance() != "unknown" {
				t.Fatalf("want explicit unknown marker, got %q", got.FormatDistance())
			}
		})
	}

	// Zero distance is a real value, distinct from unknown
	got := session.Totals(&models.Session{StartKm: km(500), EndKm: km(500)})
	if !got.DistanceKnown || got.Distance != 0 {
		t.Fatalf("same readings should be a known zero distance, got %+v", got)
	}
}

func TestTotalsIdempotent(t *testing.T) {
	t.Parallel()

	s := &models.Session{
		DeliveriesOK:     10,
		DeliveriesFailed: 2,
		PickupsOK:        4,
		PickupsFailed:    1,
		StartKm:          km(100),
		EndKm:            km(150),
	}

	first := session.Totals(s)
	second := session.Totals(s)
	if first != second {
		t.Fatalf("totals must be stable: %+v vs %+v", first, second)
	}
}
