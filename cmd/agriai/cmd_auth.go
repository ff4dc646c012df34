package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agriai/internal/session"
)

var (
	loginName string
	loginRole string
)

// loginCmd records who is using the app.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a farmer or broker",
	Long: `Records your name and role locally. The identity persists across
runs until you log out.

Example:
  agriai login --name Anand --role farmer`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := session.ParseRole(loginRole)
		if err != nil {
			return err
		}
		id, err := app.Sessions.Login(loginName, role)
		if err != nil {
			return err
		}

		styles := appStyles()
		fmt.Println(styles.Success.Render(fmt.Sprintf("Logged in as %s (%s)", id.Name, id.Role)))
		return nil
	},
}

// logoutCmd clears the stored identity.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Sessions.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// whoamiCmd shows the current identity.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := app.Sessions.Current()
		if id == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		styles := appStyles()
		fmt.Printf("%s %s\n", id.Name, styles.Badge.Render(string(id.Role)))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "Your name (required)")
	loginCmd.Flags().StringVar(&loginRole, "role", "", "Your role: farmer or broker (required)")
	loginCmd.MarkFlagRequired("name")
	loginCmd.MarkFlagRequired("role")
}
