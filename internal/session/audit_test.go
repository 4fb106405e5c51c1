package session_test

import (
	"testing"

	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

func TestDiffSingleFieldChange(t *testing.T) {
	t.Parallel()

	prev := fullDay()
	prev.ID = 12
	prev.RouteNumber = "R1"
	next := prev.Clone()
	next.RouteNumber = "R2"

	entries := session.Diff(prev, next, 3)

	if len(entries) != 1 {
		t.Fatalf("want exactly one entry, got %+v", entries)
	}
	e := entries[0]
	if e.Field != session.FieldRouteNumber || e.OldValue != "R1" || e.NewValue != "R2" {
		t.Fatalf("wrong entry: %+v", e)
	}
	if e.SessionID != 12 || e.AdminID != 3 {
		t.Fatalf("entry not attributed: %+v", e)
	}
}

func TestDiffIdenticalSnapshots(t *testing.T) {
	t.Parallel()

	prev := fullDay()
	if entries := session.Diff(prev, prev.Clone(), 3); len(entries) != 0 {
		t.Fatalf("identical snapshots must produce no entries: %+v", entries)
	}
}

func TestDiffSerializesValuesAsText(t *testing.T) {
	t.Parallel()

	prev := fullDay()
	prev.DeliveriesOK = 10
	prev.StartKm = km(1200.5)
	next := prev.Clone()
	next.DeliveriesOK = 12
	next.StartKm = km(1201)

	entries := session.Diff(prev, next, 3)
	byField := map[string]models.AuditEntry{}
	for _, e := range entries {
		byField[e.Field] = e
	}

	if e := byField[session.FieldDeliveriesOK]; e.OldValue != "10" || e.NewValue != "12" {
		t.Fatalf("counter not serialized as text: %+v", e)
	}
	if e := byField[session.FieldStartKm]; e.OldValue != "1200.50" || e.NewValue != "1201.00" {
		t.Fatalf("odometer not serialized as text: %+v", e)
	}
}

func TestDiffBreaksAreOneEntry(t *testing.T) {
	t.Parallel()

	prev := fullDay()
	next := prev.Clone()
	end := at(12, 45)
	next.Breaks[0].FinishedAt = &end
	next.Breaks[1].StartedAt = at(15, 5)

	entries := session.Diff(prev, next, 3)
	if len(entries) != 1 || entries[0].Field != session.FieldBreaks {
		t.Fatalf("break changes must collapse to one 'breaks' entry, got %+v", entries)
	}
	if entries[0].OldValue == entries[0].NewValue {
		t.Fatalf("serialized sequences should differ")
	}
}

func TestDiffClearedOptionalField(t *testing.T) {
	t.Parallel()

	prev := fullDay()
	prev.EndKm = km(310)
	next := prev.Clone()
	next.EndKm = nil

	entries := session.Diff(prev, next, 3)
	if len(entries) != 1 || entries[0].Field != session.FieldEndKm {
		t.Fatalf("want one end_km entry, got %+v", entries)
	}
	if entries[0].OldValue != "310.00" || entries[0].NewValue != "" {
		t.Fatalf("cleared reading should serialize to empty, got %+v", entries[0])
	}
}
