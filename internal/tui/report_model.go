package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aldiyarseitov/shiftlog/internal/db"
	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/parser"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

// reportStep is the current field in the end-of-day form
type reportStep int

const (
	stepRoute reportStep = iota
	stepDelivered
	stepFailedDeliveries
	stepDeliveryNote
	stepPickedUp
	stepFailedPickups
	stepPickupNote
	stepEndKm
	stepConfirm
)

var reportFields = []struct {
	label       string
	placeholder string
}{
	{"Route number", "e.g. 12"},
	{"Successful deliveries", "0"},
	{"Failed deliveries", "0"},
	{"Failed delivery note", "optional"},
	{"Successful pickups", "0"},
	{"Failed pickups", "0"},
	{"Failed pickup note", "optional"},
	{"Ending odometer (km)", "leave blank if not read"},
}

// ReportModel is the interactive end-of-day report form
type ReportModel struct {
	currentStep reportStep
	inputs      []textinput.Model
	width       int
	height      int

	shift *models.Session

	// State
	violations []string
	err        error
	completed  bool
	cancelled  bool
}

// NewReportModel creates the end-of-day form for a running shift
func NewReportModel(shift *models.Session) ReportModel {
	inputs := make([]textinput.Model, len(reportFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Placeholder = reportFields[i].placeholder

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	inputs[0].Focus()

	return ReportModel{
		inputs: inputs,
		shift:  shift,
	}
}

// Init initializes the form
func (m ReportModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if m.currentStep == stepConfirm {
				return m.submit()
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	if m.currentStep < stepConfirm {
		var cmd tea.Cmd
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m ReportModel) nextStep() (tea.Model, tea.Cmd) {
	if m.currentStep < stepConfirm {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
	}
	if m.currentStep < stepConfirm {
		m.inputs[m.currentStep].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m ReportModel) prevStep() (tea.Model, tea.Cmd) {
	if m.currentStep == 0 {
		return m, nil
	}
	if m.currentStep < stepConfirm {
		m.inputs[m.currentStep].Blur()
	}
	m.currentStep--
	m.inputs[m.currentStep].Focus()
	return m, textinput.Blink
}

// submit parses the form, runs the lifecycle transition and saves
func (m ReportModel) submit() (tea.Model, tea.Cmd) {
	report, err := m.buildReport()
	if err != nil {
		m.violations = []string{err.Error()}
		return m, nil
	}

	violations, err := session.EndDay(m.shift, time.Now(), report)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if len(violations) > 0 {
		m.violations = violations
		return m, nil
	}

	if err := db.SaveSession(m.shift); err != nil {
		m.err = fmt.Errorf("failed to save shift: %w", err)
		return m, tea.Quit
	}

	m.completed = true
	return m, tea.Quit
}

// buildReport converts the raw inputs into a strict-typed report
func (m ReportModel) buildReport() (session.Report, error) {
	report := session.Report{
		RouteNumber:     strings.TrimSpace(m.inputs[stepRoute].Value()),
		DeliveryComment: strings.TrimSpace(m.inputs[stepDeliveryNote].Value()),
		PickupComment:   strings.TrimSpace(m.inputs[stepPickupNote].Value()),
	}

	counts := []struct {
		step reportStep
		dst  *int
	}{
		{stepDelivered, &report.DeliveriesOK},
		{stepFailedDeliveries, &report.DeliveriesFailed},
		{stepPickedUp, &report.PickupsOK},
		{stepFailedPickups, &report.PickupsFailed},
	}
	for _, c := range counts {
		value, err := parser.ParseCount(m.inputs[c.step].Value())
		if err != nil {
			return session.Report{}, fmt.Errorf("%s: %v", reportFields[c.step].label, err)
		}
		*c.dst = value
	}

	endKm, err := parser.ParseOdometer(m.inputs[stepEndKm].Value())
	if err != nil {
		return session.Report{}, fmt.Errorf("%s: %v", reportFields[stepEndKm].label, err)
	}
	report.EndKm = endKm

	return report, nil
}

// View renders the form
func (m ReportModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render("🏁 End-of-Day Report"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	for i, field := range reportFields {
		step := reportStep(i)
		switch {
		case step == m.currentStep:
			b.WriteString(labelStyle.Render("› " + field.label))
			b.WriteString("\n")
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n\n")
		case step < m.currentStep:
			value := m.inputs[i].Value()
			if value == "" {
				value = "—"
			}
			b.WriteString(doneStyle.Render(fmt.Sprintf("  %s: %s", field.label, value)))
			b.WriteString("\n")
		}
	}

	if m.currentStep == stepConfirm {
		confirmStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)
		b.WriteString("\n")
		b.WriteString(confirmStyle.Render("Press ENTER to clock out and save the report"))
		b.WriteString("\n")
	}

	if len(m.violations) > 0 {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		for _, v := range m.violations {
			b.WriteString(errStyle.Render("✗ " + v))
			b.WriteString("\n")
		}
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter next · ↑ back · esc cancel"))

	formStyle := lipgloss.NewStyle().Padding(1, 2)
	return formStyle.Render(b.String())
}
