package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldiyarseitov/shiftlog/internal/db"
	"github.com/aldiyarseitov/shiftlog/internal/models"
	"github.com/aldiyarseitov/shiftlog/internal/parser"
	"github.com/aldiyarseitov/shiftlog/internal/session"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Correct session records (admin only)",
	Long: `Administrator corrections to session records. Every change that
passes validation is written with an audit trail entry per field.`,
}

var adminEditCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Edit fields of a session record",
	Long: `Edit fields of a session record. Only the flags you pass are changed;
the whole record is re-validated before saving and every changed field
is written to the audit trail.

Examples:
  shiftlog admin edit 42 --as marina --route 7
  shiftlog admin edit 42 --as marina --delivered 38 --end-km 128512.4
  shiftlog admin edit 42 --as marina --clock-out 17:30`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		admin, s, ok := adminSession(cmd, args[0])
		if !ok {
			return
		}

		prev := s.Clone()
		if err := applyEditFlags(cmd, s); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if violations := session.Validate(s); len(violations) > 0 {
			fmt.Println("The edit was not saved:")
			for _, v := range violations {
				fmt.Printf("  - %s\n", v)
			}
			return
		}

		entries := session.Diff(prev, s, admin.ID)
		if len(entries) == 0 {
			fmt.Println("Nothing changed")
			return
		}

		if err := db.SaveSession(s); err != nil {
			fmt.Printf("Error: failed to save shift: %v\n", err)
			return
		}
		appendAudit(entries)

		fmt.Printf("✏️  Updated shift #%d (%d field(s) changed)\n", s.ID, len(entries))
	}),
}

var adminBreakCmd = &cobra.Command{
	Use:   "break <session-id> <break-number>",
	Short: "Retroactively edit a break's start or end time",
	Long: `Move one bound of a completed break. Times are HH:MM on the
session's calendar day. The edit is rejected when it would invert the
break, leave the work period, or overlap another break.

Examples:
  shiftlog admin break 42 1 --as marina --start 12:05
  shiftlog admin break 42 2 --as marina --end 15:20`,
	Args: cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		admin, s, ok := adminSession(cmd, args[0])
		if !ok {
			return
		}

		number, err := strconv.Atoi(args[1])
		if err != nil || number < 1 {
			fmt.Printf("Error: invalid break number '%s'\n", args[1])
			return
		}

		startClock, _ := cmd.Flags().GetString("start")
		endClock, _ := cmd.Flags().GetString("end")
		if (startClock == "") == (endClock == "") {
			fmt.Println("Error: pass exactly one of --start or --end")
			return
		}

		bound, clock := session.BoundStart, startClock
		if endClock != "" {
			bound, clock = session.BoundEnd, endClock
		}

		prev := s.Clone()
		updated, err := session.EditBreak(s, number-1, bound, clock)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		s.Breaks = updated

		// Second line of defense before persisting
		if violations := session.Validate(s); len(violations) > 0 {
			fmt.Println("The edit was not saved:")
			for _, v := range violations {
				fmt.Printf("  - %s\n", v)
			}
			return
		}

		if err := db.ReplaceBreaks(s, updated); err != nil {
			fmt.Printf("Error: failed to save breaks: %v\n", err)
			return
		}
		appendAudit(session.Diff(prev, s, admin.ID))

		fmt.Printf("✏️  Moved %s of break %d on shift #%d to %s\n", bound, number, s.ID, clock)
	}),
}

var adminRemoveBreakCmd = &cobra.Command{
	Use:   "remove-break <session-id> <break-number>",
	Short: "Remove a break from a session",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		admin, s, ok := adminSession(cmd, args[0])
		if !ok {
			return
		}

		number, err := strconv.Atoi(args[1])
		if err != nil || number < 1 {
			fmt.Printf("Error: invalid break number '%s'\n", args[1])
			return
		}

		prev := s.Clone()
		removed, err := session.RemoveBreak(s, number-1)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := db.ReplaceBreaks(s, s.Breaks); err != nil {
			fmt.Printf("Error: failed to save breaks: %v\n", err)
			return
		}
		// Removing the open break flips the status back to working
		if s.Status != prev.Status {
			if err := db.SaveSession(s); err != nil {
				fmt.Printf("Error: failed to save shift: %v\n", err)
				return
			}
		}
		appendAudit(session.Diff(prev, s, admin.ID))

		fmt.Printf("🗑  Removed break %d (%s) from shift #%d\n",
			number, removed.StartedAt.Format("15:04"), s.ID)
	}),
}

// adminSession resolves the acting admin and the target session
func adminSession(cmd *cobra.Command, idArg string) (*models.User, *models.Session, bool) {
	name, _ := cmd.Flags().GetString("as")
	if name == "" {
		fmt.Println("Error: pass --as <admin-name>")
		return nil, nil, false
	}

	admin, err := db.RequireAdmin(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}

	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		fmt.Printf("Error: invalid session ID '%s'\n", idArg)
		return nil, nil, false
	}

	s, err := db.GetSessionByID(uint(id))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, nil, false
	}

	return admin, s, true
}

// applyEditFlags copies only the flags the admin actually passed onto the
// session
func applyEditFlags(cmd *cobra.Command, s *models.Session) error {
	if cmd.Flags().Changed("route") {
		s.RouteNumber, _ = cmd.Flags().GetString("route")
	}
	if cmd.Flags().Changed("delivery-note") {
		s.DeliveryComment, _ = cmd.Flags().GetString("delivery-note")
	}
	if cmd.Flags().Changed("pickup-note") {
		s.PickupComment, _ = cmd.Flags().GetString("pickup-note")
	}
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		if status != models.StatusWorking && status != models.StatusOnBreak && status != models.StatusEnded {
			return fmt.Errorf("invalid status '%s'", status)
		}
		s.Status = status
	}

	counts := []struct {
		flag string
		dst  *int
	}{
		{"delivered", &s.DeliveriesOK},
		{"failed-deliveries", &s.DeliveriesFailed},
		{"picked-up", &s.PickupsOK},
		{"failed-pickups", &s.PickupsFailed},
	}
	for _, c := range counts {
		if !cmd.Flags().Changed(c.flag) {
			continue
		}
		raw, _ := cmd.Flags().GetString(c.flag)
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("--%s: '%s' is not a whole number", c.flag, raw)
		}
		// Negative values pass through so the validator can name them
		*c.dst = value
	}

	odometers := []struct {
		flag string
		dst  **float64
	}{
		{"start-km", &s.StartKm},
		{"end-km", &s.EndKm},
	}
	for _, o := range odometers {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		raw, _ := cmd.Flags().GetString(o.flag)
		value, err := parser.ParseOdometer(raw)
		if err != nil {
			return fmt.Errorf("--%s: %v", o.flag, err)
		}
		*o.dst = value
	}

	clocks := []struct {
		flag string
		set  func(time.Time)
	}{
		{"clock-in", func(t time.Time) { s.StartedAt = t }},
		{"clock-out", func(t time.Time) { s.FinishedAt = &t }},
	}
	for _, c := range clocks {
		if !cmd.Flags().Changed(c.flag) {
			continue
		}
		raw, _ := cmd.Flags().GetString(c.flag)
		at, err := parser.ResolveClock(s.Date, raw)
		if err != nil {
			return fmt.Errorf("--%s: %v", c.flag, err)
		}
		c.set(at)
	}

	if s.FinishedAt != nil && !s.FinishedAt.After(s.StartedAt) {
		return fmt.Errorf("shift must end after it starts")
	}

	return nil
}

// appendAudit writes the audit trail for a successful save. The save and the
// audit append are two independent calls; when the append fails the session
// stays saved and the gap is reported loudly.
func appendAudit(entries []models.AuditEntry) {
	if err := db.AppendAuditEntries(entries); err != nil {
		fmt.Fprintf(os.Stderr,
			"WARNING: shift was saved but the audit trail was not written: %v\n", err)
	}
}

func init() {
	for _, cmd := range []*cobra.Command{adminEditCmd, adminBreakCmd, adminRemoveBreakCmd} {
		cmd.Flags().String("as", "", "Name of the acting administrator")
	}

	adminEditCmd.Flags().String("route", "", "Route identifier")
	adminEditCmd.Flags().String("delivered", "", "Successful deliveries")
	adminEditCmd.Flags().String("failed-deliveries", "", "Failed deliveries")
	adminEditCmd.Flags().String("picked-up", "", "Successful pickups")
	adminEditCmd.Flags().String("failed-pickups", "", "Failed pickups")
	adminEditCmd.Flags().String("delivery-note", "", "Comment on failed deliveries")
	adminEditCmd.Flags().String("pickup-note", "", "Comment on failed pickups")
	adminEditCmd.Flags().String("start-km", "", "Starting odometer reading")
	adminEditCmd.Flags().String("end-km", "", "Ending odometer reading")
	adminEditCmd.Flags().String("clock-in", "", "Shift start time (HH:MM)")
	adminEditCmd.Flags().String("clock-out", "", "Shift end time (HH:MM)")
	adminEditCmd.Flags().String("status", "", "Lifecycle status (working, on_break, ended)")

	adminBreakCmd.Flags().String("start", "", "New break start time (HH:MM)")
	adminBreakCmd.Flags().String("end", "", "New break end time (HH:MM)")

	adminCmd.AddCommand(adminEditCmd)
	adminCmd.AddCommand(adminBreakCmd)
	adminCmd.AddCommand(adminRemoveBreakCmd)
}
