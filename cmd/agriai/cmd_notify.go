package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agriai/internal/notify"
)

// notifyCmd manages the local notification subscription.
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage notifications",
}

var notifySubscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Opt in to notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := app.Notify.Subscribe()
		if err != nil {
			return err
		}
		fmt.Printf("Subscribed (since %s).\n", sub.CreatedAt.Format(timeFormat))
		return nil
	},
}

var notifyUnsubscribeCmd = &cobra.Command{
	Use:   "unsubscribe",
	Short: "Opt out of notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Notify.Unsubscribe(); err != nil {
			return err
		}
		fmt.Println("Unsubscribed.")
		return nil
	},
}

var notifyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show subscription status",
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := appStyles()
		if app.Notify.Subscribed() {
			fmt.Println(styles.Info.Render("Subscribed."))
		} else {
			fmt.Println(styles.Muted.Render("Not subscribed."))
		}
		return nil
	},
}

var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Deliver a test notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		delivered, err := app.Notify.Deliver(os.Stdout, notify.Payload{
			Title: "Agri AI",
			Body:  "Notifications are working.",
		})
		if err != nil {
			return err
		}
		if !delivered {
			return fmt.Errorf("not subscribed; run: agriai notify subscribe")
		}
		return nil
	},
}

func init() {
	notifyCmd.AddCommand(notifySubscribeCmd)
	notifyCmd.AddCommand(notifyUnsubscribeCmd)
	notifyCmd.AddCommand(notifyStatusCmd)
	notifyCmd.AddCommand(notifyTestCmd)
}
