package parser_test

import (
	"testing"
	"time"

	"github.com/aldiyarseitov/shiftlog/internal/parser"
)

func TestResolveClock(t *testing.T) {
	t.Parallel()

	got, err := parser.ResolveClock("2026-03-14", "08:30")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := time.Date(2026, 3, 14, 8, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	withSeconds, err := parser.ResolveClock("2026-03-14", "08:30:45")
	if err != nil {
		t.Fatalf("resolve with seconds: %v", err)
	}
	if withSeconds.Second() != 45 {
		t.Fatalf("seconds dropped: %v", withSeconds)
	}
}

func TestResolveClockRejectsGarbage(t *testing.T) {
	t.Parallel()

	cases := []struct{ date, clock string }{
		{"2026-03-14", "25:00"},
		{"2026-03-14", "12:61"},
		{"2026-03-14", "noon"},
		{"not-a-date", "12:00"},
	}
	for _, tc := range cases {
		if _, err := parser.ResolveClock(tc.date, tc.clock); err == nil {
			t.Fatalf("expected error for %q %q", tc.date, tc.clock)
		}
	}
}

func TestParseOdometer(t *testing.T) {
	t.Parallel()

	v, err := parser.ParseOdometer("1200.5")
	if err != nil || v == nil || *v != 1200.5 {
		t.Fatalf("want 1200.5, got %v (%v)", v, err)
	}

	comma, err := parser.ParseOdometer("1200,5")
	if err != nil || comma == nil || *comma != 1200.5 {
		t.Fatalf("comma separator should parse, got %v (%v)", comma, err)
	}

	empty, err := parser.ParseOdometer("  ")
	if err != nil || empty != nil {
		t.Fatalf("blank reading should be nil, got %v (%v)", empty, err)
	}

	if _, err := parser.ParseOdometer("abc"); err == nil {
		t.Fatalf("non-numeric reading must be rejected")
	}
	if _, err := parser.ParseOdometer("-5"); err == nil {
		t.Fatalf("negative reading must be rejected")
	}
	if _, err := parser.ParseOdometer("NaN"); err == nil {
		t.Fatalf("NaN must not cross the boundary")
	}
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	n, err := parser.ParseCount("42")
	if err != nil || n != 42 {
		t.Fatalf("want 42, got %d (%v)", n, err)
	}

	zero, err := parser.ParseCount("")
	if err != nil || zero != 0 {
		t.Fatalf("blank count should be zero, got %d (%v)", zero, err)
	}

	if _, err := parser.ParseCount("-3"); err == nil {
		t.Fatalf("negative count must be rejected")
	}
	if _, err := parser.ParseCount("3.5"); err == nil {
		t.Fatalf("fractional count must be rejected")
	}
}
