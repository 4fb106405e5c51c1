package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldiyarseitov/shiftlog/internal/db"
	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a day's metrics and totals",
	Long: `Show the derived metrics and totals for one workday.

Examples:
  shiftlog report                    # Today
  shiftlog report --date 2026-03-14  # A specific day`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		driver, err := resolveDriver(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format(models.DateLayout)
		} else if _, err := time.Parse(models.DateLayout, date); err != nil {
			fmt.Printf("Error: invalid date '%s'. Use YYYY-MM-DD\n", date)
			return
		}

		s, err := db.GetSessionForDate(driver.ID, date)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if s == nil {
			fmt.Printf("No shift recorded for %s on %s\n", driver.Name, date)
			return
		}

		printSession(s)
	}),
}

func printSession(s *models.Session) {
	metrics := session.Metrics(s)
	totals := session.Totals(s)

	fmt.Printf("Shift #%d — %s — %s\n", s.ID, s.User.Name, s.Date)
	fmt.Printf("Status: %s\n", s.Status)
	fmt.Printf("Clocked in: %s", s.StartedAt.Format("15:04:05"))
	if s.FinishedAt != nil {
		fmt.Printf("  Clocked out: %s", s.FinishedAt.Format("15:04:05"))
	}
	fmt.Println()

	if s.Status == models.StatusEnded {
		fmt.Printf("Total: %.2fh  Work: %.2fh  Breaks: %.2fh\n",
			metrics.TotalHours, metrics.WorkHours, metrics.BreakHours)
	}

	if len(s.Breaks) > 0 {
		fmt.Println("Breaks:")
		for i, b := range s.Breaks {
			if b.FinishedAt != nil {
				fmt.Printf("  %d. %s – %s\n", i+1,
					b.StartedAt.Format("15:04"), b.FinishedAt.Format("15:04"))
			} else {
				fmt.Printf("  %d. %s – (running)\n", i+1, b.StartedAt.Format("15:04"))
			}
		}
	}

	if s.RouteNumber != "" {
		fmt.Printf("Route: %s\n", s.RouteNumber)
	}
	fmt.Printf("Deliveries: %d (%d ok, %d failed)  Pickups: %d (%d ok, %d failed)\n",
		totals.Deliveries, s.DeliveriesOK, s.DeliveriesFailed,
		totals.Pickups, s.PickupsOK, s.PickupsFailed)
	fmt.Printf("Distance: %s\n", totals.FormatDistance())
	if s.DeliveryComment != "" {
		fmt.Printf("Delivery note: %s\n", s.DeliveryComment)
	}
	if s.PickupComment != "" {
		fmt.Printf("Pickup note: %s\n", s.PickupComment)
	}
}

func init() {
	reportCmd.Flags().String("date", "", "Calendar day (YYYY-MM-DD), defaults to today")
	reportCmd.Flags().String("driver", "", "Act as this driver instead of the configured one")
}
