package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldiyarseitov/shiftlog/internal/config"
	"github.com/aldiyarseitov/shiftlog/internal/db"
	"github.com/aldiyarseitov/shiftlog/internal/models"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage drivers and administrators",
}

var userAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new driver or administrator",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		role := models.RoleDriver
		if isAdmin, _ := cmd.Flags().GetBool("admin"); isAdmin {
			role = models.RoleAdmin
		}

		user, err := db.CreateUser(args[0], role)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added %s '%s' - ID: %d\n", user.Role, user.Name, user.ID)

		// First registered driver becomes the configured one
		if role == models.RoleDriver && cfg.Driver == "" {
			cfg.Driver = user.Name
			if err := config.Save(cfg); err != nil {
				fmt.Printf("Warning: could not update config: %v\n", err)
				return
			}
			fmt.Printf("'%s' is now the configured driver on this machine\n", user.Name)
		}
	}),
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		users, err := db.GetUsers()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(users) == 0 {
			fmt.Println("No users yet. Add one with 'shiftlog user add <name>'")
			return
		}

		for _, u := range users {
			marker := ""
			if u.Name == cfg.Driver {
				marker = " (configured driver)"
			}
			fmt.Printf("#%d  %-20s %s%s\n", u.ID, u.Name, u.Role, marker)
		}
	}),
}

func init() {
	userAddCmd.Flags().Bool("admin", false, "Grant admin rights")
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
}
