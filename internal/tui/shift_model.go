package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aldiyarseitov/shiftlog/internal/db"
	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

// ShiftModel is the live view of a running shift
type ShiftModel struct {
	width  int
	height int
	shift  *models.Session

	// Timer state
	workedTime time.Duration
	breakTime  time.Duration
	lastUpdate time.Time

	// Animation state
	pulse int // For the animated header

	// UI state
	leaving bool  // True when user pressed ESC/Q; the shift keeps running
	err     error // Last break/resume failure, shown inline
}

// shiftTickMsg is sent every second to update the clocks
type shiftTickMsg struct{}

// pulseTickMsg is sent for the header animation
type pulseTickMsg struct{}

// NewShiftModel creates a live shift view for a running session
func NewShiftModel(shift *models.Session) ShiftModel {
	return ShiftModel{
		shift:      shift,
		workedTime: session.ElapsedWork(shift, time.Now()),
		lastUpdate: time.Now(),
	}
}

// Init starts the tickers
func (m ShiftModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return shiftTickMsg{}
		}),
		tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
			return pulseTickMsg{}
		}),
	)
}

// Update handles messages
func (m ShiftModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shiftTickMsg:
		now := time.Now()
		m.workedTime = session.ElapsedWork(m.shift, now)
		if open := m.shift.OpenBreakIndex(); open >= 0 {
			m.breakTime = now.Sub(m.shift.Breaks[open].StartedAt)
		}
		m.lastUpdate = now

		if !m.leaving {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return shiftTickMsg{}
			})
		}
		return m, nil

	case pulseTickMsg:
		m.pulse = (m.pulse + 1) % 4
		if !m.leaving {
			return m, tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
				return pulseTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "b", "B":
			m.err = m.toggleBreak(true)
			return m, nil
		case "r", "R":
			m.err = m.toggleBreak(false)
			return m, nil
		case "ctrl+c", "esc", "q":
			// Leave the view; the shift keeps running
			m.leaving = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// toggleBreak starts or ends a break and persists the change
func (m *ShiftModel) toggleBreak(start bool) error {
	now := time.Now()
	var err error
	if start {
		err = session.StartBreak(m.shift, now)
	} else {
		err = session.EndBreak(m.shift, now)
	}
	if err != nil {
		return err
	}
	if err := db.SaveSession(m.shift); err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	m.breakTime = 0
	return nil
}

// View renders the live shift view
func (m ShiftModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	// Animated header
	pulseChars := []string{"🚚", "📦", "🚚", "📦"}
	header := fmt.Sprintf("%s  ON SHIFT  %s", pulseChars[m.pulse], pulseChars[m.pulse])
	if m.shift.Status == models.StatusOnBreak {
		header = "☕  ON BREAK  ☕"
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(header))

	// Driver and clock-in time
	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, infoStyle.Render(
		fmt.Sprintf("%s — clocked in at %s", m.shift.User.Name, m.shift.StartedAt.Format("15:04:05"))))

	// Clocks
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, clockStyle.Render(
		fmt.Sprintf("Worked  %s", formatClock(m.workedTime))))

	if m.shift.Status == models.StatusOnBreak {
		breakStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, breakStyle.Render(
			fmt.Sprintf("Break   %s", formatClock(m.breakTime))))
	}

	// Break count
	components = append(components, infoStyle.Render(
		fmt.Sprintf("Breaks taken: %d", len(m.shift.Breaks))))

	// Inline error from a rejected transition
	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, errStyle.Render(m.err.Error()))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render(content),
		m.renderHelpBar(),
	)
}

// renderHelpBar renders the key hints at the bottom
func (m ShiftModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Align(lipgloss.Center).
		Width(m.width)

	hints := "B break · R resume · Q leave (shift keeps running) · end the day with 'shiftlog end'"
	return helpStyle.Render(hints)
}

// formatClock renders a duration as HH:MM:SS
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
