package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldiyarseitov/shiftlog/internal/db"
	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/parser"
	"github.com/aldiyarseitov/shiftlog/internal/session"
	"github.com/aldiyarseitov/shiftlog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Clock in and start the work day",
	Long: `Clock in and start tracking the work day. Opens the live shift view
by default, use --no-ui for a simple start.

Examples:
  shiftlog start --km 128401.5   # Record the starting odometer
  shiftlog start --no-ui         # Clock in without the live view`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		driver, err := resolveDriver(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// One session per driver per calendar day
		existing, err := db.GetSessionForDate(driver.ID, time.Now().Format(models.DateLayout))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if existing != nil {
			if existing.Status == models.StatusEnded {
				fmt.Printf("Error: today's shift already ended. A new day needs a new shift\n")
			} else {
				fmt.Printf("Error: a shift is already running since %s\n",
					existing.StartedAt.Format("15:04:05"))
			}
			return
		}

		kmInput, _ := cmd.Flags().GetString("km")
		startKm, err := parser.ParseOdometer(kmInput)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		s := session.StartDay(driver.ID, time.Now(), startKm)
		if err := db.SaveSession(s); err != nil {
			fmt.Printf("Error: failed to save shift: %v\n", err)
			return
		}
		s.User = *driver

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("🚚 Shift started for %s\n", driver.Name)
			fmt.Printf("Clocked in at: %s\n", s.StartedAt.Format("15:04:05"))
			if s.StartKm != nil {
				fmt.Printf("Starting odometer: %.2f km\n", *s.StartKm)
			}
		} else {
			if err := tui.RunShiftTUI(s); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	}),
}

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Start a break",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		s, driver, ok := openSession(cmd)
		if !ok {
			return
		}

		if err := session.StartBreak(s, time.Now()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.SaveSession(s); err != nil {
			fmt.Printf("Error: failed to save shift: %v\n", err)
			return
		}

		b := s.Breaks[len(s.Breaks)-1]
		fmt.Printf("☕ Break started for %s at %s\n", driver.Name, b.StartedAt.Format("15:04:05"))
	}),
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "End the current break and get back to work",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		s, driver, ok := openSession(cmd)
		if !ok {
			return
		}

		if err := session.EndBreak(s, time.Now()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.SaveSession(s); err != nil {
			fmt.Printf("Error: failed to save shift: %v\n", err)
			return
		}

		b := s.Breaks[len(s.Breaks)-1]
		duration := b.FinishedAt.Sub(b.StartedAt)
		fmt.Printf("🚚 Back to work, %s. Break lasted %s\n", driver.Name, formatDuration(duration))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current shift status",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		driver, err := resolveDriver(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		s, err := db.GetOpenSessionForToday(driver.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if s == nil {
			fmt.Println("No shift running today")
			return
		}

		now := time.Now()
		// A corrected record can claim on_break without an open break;
		// treat it as working rather than trusting the status blindly
		if open := s.OpenBreakIndex(); s.Status == models.StatusOnBreak && open >= 0 {
			b := s.Breaks[open]
			fmt.Printf("☕ On break since %s (%s)\n",
				b.StartedAt.Format("15:04:05"), formatDuration(now.Sub(b.StartedAt)))
		} else {
			fmt.Printf("🚚 Working since %s\n", s.StartedAt.Format("15:04:05"))
		}
		fmt.Printf("Work time: %s\n", formatDuration(session.ElapsedWork(s, now)))
		fmt.Printf("Breaks taken: %d\n", len(s.Breaks))
	}),
}

// openSession loads the driver's running session for today and reports the
// usual errors on the way
func openSession(cmd *cobra.Command) (*models.Session, *models.User, bool) {
	driver, err := resolveDriver(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}

	s, err := db.GetOpenSessionForToday(driver.ID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}
	if s == nil {
		fmt.Println("Error: no shift running today. Clock in first with 'shiftlog start'")
		return nil, nil, false
	}

	return s, driver, true
}

func init() {
	startCmd.Flags().String("km", "", "Starting odometer reading")
	startCmd.Flags().Bool("no-ui", false, "Clock in without the live shift view")
	for _, cmd := range []*cobra.Command{startCmd, breakCmd, resumeCmd, statusCmd} {
		cmd.Flags().String("driver", "", "Act as this driver instead of the configured one")
	}
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
