package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldiyarseitov/shiftlog/internal/config"
	"github.com/aldiyarseitov/shiftlog/internal/db"
	"github.com/aldiyarseitov/shiftlog/internal/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg is loaded once per invocation by withDB
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "shiftlog",
	Short: "A CLI work-session tracker for delivery drivers",
	Long: `shiftlog tracks a delivery driver's workday from the terminal.
Clock in and out, log breaks, file the end-of-day report, and let
administrators correct records with a full audit trail.`,
}

// initDB loads the config, initializes the database and panics on error
func initDB() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}
	if err := db.Initialize(cfg.DatabasePath); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// resolveDriver returns the acting driver, from --driver or the config file
func resolveDriver(cmd *cobra.Command) (*models.User, error) {
	name, _ := cmd.Flags().GetString("driver")
	if name == "" {
		name = cfg.Driver
	}
	if name == "" {
		return nil, fmt.Errorf("no driver configured. Pass --driver <name> or set 'driver' in ~/.shiftlog/config.yaml")
	}
	return db.GetUserByName(name)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
