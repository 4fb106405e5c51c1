package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

// RunShiftTUI starts the live view for a running shift
func RunShiftTUI(shift *models.Session) error {
	model := NewShiftModel(shift)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(ShiftModel); ok {
		switch m.shift.Status {
		case models.StatusOnBreak:
			fmt.Println("☕ Still on break. Resume with 'shiftlog resume'")
		default:
			fmt.Println("🚚 Shift keeps running. End the day with 'shiftlog end'")
		}
	}

	return nil
}

// RunReportTUI starts the interactive end-of-day report form
func RunReportTUI(shift *models.Session) error {
	model := NewReportModel(shift)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after the TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(ReportModel); ok {
		if m.cancelled {
			fmt.Println("❌ Report cancelled. The shift keeps running.")
		} else if m.completed {
			metrics := session.Metrics(m.shift)
			totals := session.Totals(m.shift)
			fmt.Printf("🏁 Shift ended. Total %.2fh, work %.2fh, breaks %.2fh\n",
				metrics.TotalHours, metrics.WorkHours, metrics.BreakHours)
			fmt.Printf("Deliveries: %d  Pickups: %d  Distance: %s\n",
				totals.Deliveries, totals.Pickups, totals.FormatDistance())
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
