package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for shiftlog",
	Long:  `Display detailed help for all shiftlog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shiftlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗██╗  ██╗██╗███████╗████████╗██╗      ██████╗  ██████╗
██╔════╝██║  ██║██║██╔════╝╚══██╔══╝██║     ██╔═══██╗██╔════╝
███████╗███████║██║█████╗     ██║   ██║     ██║   ██║██║  ███╗
╚════██║██╔══██║██║██╔══╝     ██║   ██║     ██║   ██║██║   ██║
███████║██║  ██║██║██║        ██║   ███████╗╚██████╔╝╚██████╔╝
╚══════╝╚═╝  ╚═╝╚═╝╚═╝        ╚═╝   ╚══════╝ ╚═════╝  ╚═════╝

shiftlog - Work-Session Tracker for Delivery Drivers

DRIVER COMMANDS:

  start                   Clock in and start the work day
    --km                  Starting odometer reading
    --no-ui               Skip the live shift view

  break                   Start a break
  resume                  End the current break
  status                  Show the running shift

  end                     Clock out with the end-of-day report
    --route               Route identifier
    --delivered           Successful deliveries
    --failed-deliveries   Failed deliveries
    --picked-up           Successful pickups
    --failed-pickups      Failed pickups
    --delivery-note       Comment on failed deliveries
    --pickup-note         Comment on failed pickups
    --km                  Ending odometer reading
    --no-ui               Use flags instead of the interactive form

  report                  Show a day's metrics and totals
    --date                Calendar day (YYYY-MM-DD)

ADMIN COMMANDS:

  user add <name>         Register a driver (--admin for admin rights)
  user list               List registered users

  admin edit <id>         Correct session fields (audited)
    --as                  Acting administrator
    --route, --delivered, --failed-deliveries, --picked-up,
    --failed-pickups, --delivery-note, --pickup-note,
    --start-km, --end-km, --clock-in, --clock-out, --status

  admin break <id> <n>    Move a break's start or end time (audited)
    --as, --start, --end

  admin remove-break <id> <n>
                          Remove a break (audited)

  audit <id>              Show a session's audit trail

Driver commands accept --driver <name> to act as a driver other than
the one configured in ~/.shiftlog/config.yaml.

`)
}
