package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aldiyarseitov/shiftlog/internal/db"
)

var auditCmd = &cobra.Command{
	Use:   "audit <session-id>",
	Short: "Show the audit trail of a session",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		entries, err := db.GetAuditEntries(uint(id))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(entries) == 0 {
			fmt.Printf("No corrections recorded for shift #%d\n", id)
			return
		}

		for _, e := range entries {
			oldValue := e.OldValue
			if oldValue == "" {
				oldValue = "(empty)"
			}
			newValue := e.NewValue
			if newValue == "" {
				newValue = "(empty)"
			}
			fmt.Printf("%s  admin #%d changed %s: %s → %s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.AdminID, e.Field, oldValue, newValue)
		}
	}),
}
