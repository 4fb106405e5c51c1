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

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "Clock out with the end-of-day report",
	Long: `Clock out and file the end-of-day report. Opens an interactive form
by default; pass the report through flags with --no-ui instead.

Examples:
  shiftlog end                                 # Interactive report form
  shiftlog end --no-ui --route 12 --delivered 40 --km 128510.2`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		s, driver, ok := openSession(cmd)
		if !ok {
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunReportTUI(s); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		report, err := reportFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		violations, err := session.EndDay(s, time.Now(), report)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(violations) > 0 {
			fmt.Println("The report was not saved:")
			for _, v := range violations {
				fmt.Printf("  - %s\n", v)
			}
			return
		}

		if err := db.SaveSession(s); err != nil {
			fmt.Printf("Error: failed to save shift: %v\n", err)
			return
		}

		printDaySummary(driver.Name, s)
	}),
}

func reportFromFlags(cmd *cobra.Command) (session.Report, error) {
	kmInput, _ := cmd.Flags().GetString("km")
	endKm, err := parser.ParseOdometer(kmInput)
	if err != nil {
		return session.Report{}, err
	}

	report := session.Report{EndKm: endKm}
	report.RouteNumber, _ = cmd.Flags().GetString("route")
	report.DeliveryComment, _ = cmd.Flags().GetString("delivery-note")
	report.PickupComment, _ = cmd.Flags().GetString("pickup-note")

	counts := []struct {
		flag string
		dst  *int
	}{
		{"delivered", &report.DeliveriesOK},
		{"failed-deliveries", &report.DeliveriesFailed},
		{"picked-up", &report.PickupsOK},
		{"failed-pickups", &report.PickupsFailed},
	}
	for _, c := range counts {
		raw, _ := cmd.Flags().GetString(c.flag)
		value, err := parser.ParseCount(raw)
		if err != nil {
			return session.Report{}, fmt.Errorf("--%s: %v", c.flag, err)
		}
		*c.dst = value
	}

	return report, nil
}

func printDaySummary(driverName string, s *models.Session) {
	metrics := session.Metrics(s)
	totals := session.Totals(s)

	fmt.Printf("🏁 Shift ended for %s\n", driverName)
	fmt.Printf("Total time: %.2fh  Work: %.2fh  Breaks: %.2fh\n",
		metrics.TotalHours, metrics.WorkHours, metrics.BreakHours)
	fmt.Printf("Deliveries: %d  Pickups: %d  Distance: %s\n",
		totals.Deliveries, totals.Pickups, totals.FormatDistance())
}

func init() {
	endCmd.Flags().Bool("no-ui", false, "File the report through flags instead of the form")
	endCmd.Flags().String("driver", "", "Act as this driver instead of the configured one")
	endCmd.Flags().String("route", "", "Route identifier")
	endCmd.Flags().String("delivered", "", "Successful deliveries")
	endCmd.Flags().String("failed-deliveries", "", "Failed deliveries")
	endCmd.Flags().String("picked-up", "", "Successful pickups")
	endCmd.Flags().String("failed-pickups", "", "Failed pickups")
	endCmd.Flags().String("delivery-note", "", "Comment on failed deliveries")
	endCmd.Flags().String("pickup-note", "", "Comment on failed pickups")
	endCmd.Flags().String("km", "", "Ending odometer reading")
}
