package session

import (
	"fmt"
	"math"

	"github.com/aldiyarseitov/shiftlog/internal/models"
)

// DerivedTotals are the computed end-of-day figures. They are always
// recomputed from the underlying counters and odometer readings, never
// stored or edited on their own.
type DerivedTotals struct {
	Deliveries int
	Pickups    int

	// Distance is only meaningful when DistanceKnown is true. A missing
	// odometer reading makes the distance unknown, which is not the same
	// as zero kilometers driven.
	Distance      float64
	DistanceKnown bool
}

// Totals derives delivery/pickup totals and distance from a session.
func Totals(s *models.Session) DerivedTotals {
	t := DerivedTotals{
		Deliveries: s.DeliveriesOK + s.DeliveriesFailed,
		Pickups:    s.PickupsOK + s.PickupsFailed,
	}

	if s.StartKm != nil && s.EndKm != nil {
		t.Distance = round2(*s.EndKm - *s.StartKm)
		t.DistanceKnown = true
	}

	return t
}

// FormatDistance renders the distance in kilometers with two decimals, or
// an explicit unknown marker when either odometer reading is missing.
func (t DerivedTotals) FormatDistance() string {
	if !t.DistanceKnown {
		return "unknown"
	}
	return fmt.Sprintf("%.2f km", t.Distance)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
