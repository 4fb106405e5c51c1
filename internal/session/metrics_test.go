package session_test

import (
	"math"
	"testing"
	"time"

	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.Local)
}

func atPtr(hour, min int) *time.Time {
	t := at(hour, min)
	return &t
}

func fullDay() *models.Session {
	return &models.Session{
		UserID:    1,
		Date:      "2026-03-14",
		StartedAt: at(8, 0),
		FinishedAt: func() *time.Time {
			t := at(17, 0)
			return &t
		}(),
		Status: models.StatusEnded,
		Breaks: []models.Break{
			{StartedAt: at(12, 0), FinishedAt: atPtr(12, 30)},
			{StartedAt: at(15, 0), FinishedAt: atPtr(15, 15)},
		},
	}
}

func TestMetricsFullDay(t *testing.T) {
	t.Parallel()

	m := session.Metrics(fullDay())

	if math.Abs(m.TotalHours-9) > 1e-3 {
		t.Fatalf("total: want 9h, got %v", m.TotalHours)
	}
	if math.Abs(m.BreakHours-0.75) > 1e-3 {
		t.Fatalf("breaks: want 0.75h, got %v", m.BreakHours)
	}
	if math.Abs(m.WorkHours-8.25) > 1e-3 {
		t.Fatalf("work: want 8.25h, got %v", m.WorkHours)
	}
}

func TestMetricsDecomposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		breaks []models.Break
	}{
		{"no breaks", nil},
		{"one break", []models.Break{{StartedAt: at(10, 0), FinishedAt: atPtr(10, 20)}}},
		{"three breaks", []models.Break{
			{StartedAt: at(9, 30), FinishedAt: atPtr(9, 45)},
			{StartedAt: at(12, 0), FinishedAt: atPtr(13, 0)},
			{StartedAt: at(16, 0), FinishedAt: atPtr(16, 5)},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := fullDay()
			s.Breaks = tc.breaks
			m := session.Metrics(s)
			if math.Abs(m.WorkHours+m.BreakHours-m.TotalHours) > 1e-3 {
				t.Fatalf("work %v + break %v != total %v", m.WorkHours, m.BreakHours, m.TotalHours)
			}
		})
	}
}

func TestMetricsNoBreaks(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.Breaks = nil
	m := session.Metrics(s)

	if m.BreakHours != 0 {
		t.Fatalf("break time should be zero, got %v", m.BreakHours)
	}
	if math.Abs(m.WorkHours-m.TotalHours) > 1e-9 {
		t.Fatalf("work %v should equal total %v", m.WorkHours, m.TotalHours)
	}
}

func TestMetricsUnfinishedSession(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.FinishedAt = nil
	m := session.Metrics(s)

	if m.TotalHours != 0 || m.BreakHours != 0 || m.WorkHours != 0 {
		t.Fatalf("unfinished session should have zero metrics, got %+v", m)
	}
}

func TestMetricsOpenBreakContributesNothing(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.Breaks = []models.Break{{StartedAt: at(12, 0)}} // still running

	m := session.Metrics(s)
	if m.BreakHours != 0 {
		t.Fatalf("open break should contribute zero, got %v", m.BreakHours)
	}
}

func TestElapsedWorkSubtractsOngoingBreak(t *testing.T) {
	t.Parallel()

	s := fullDay()
	s.FinishedAt = nil
	s.Status = models.StatusOnBreak
	s.Breaks = []models.Break{{StartedAt: at(12, 0)}}

	elapsed := session.ElapsedWork(s, at(12, 30))
	if elapsed != 4*time.Hour {
		t.Fatalf("want 4h of work at 12:30, got %v", elapsed)
	}
}
