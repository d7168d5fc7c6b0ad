package cmd

import (
	"github.com/spf13/cobra"

	"chronosdeck/internal/model"
)

// notifyCmd groups notification operations.
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage notifications",
}

// notifyTestCmd sends a test notification through every configured sink.
var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test notification",
	RunE:  runNotifyTest,
}

func init() {
	notifyCmd.AddCommand(notifyTestCmd)
	rootCmd.AddCommand(notifyCmd)
}

func runNotifyTest(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()
	if !ctx.Scheduler.Granted() {
		cli.Warning("Notifications are disabled.")
		cli.Muted("Set CHRONOSDECK_NOTIFICATIONS=true to enable them.")
		return nil
	}

	ctx.Scheduler.Notify(model.NewNotification(
		model.NotifyTest,
		"chronosdeck",
		"Notifications are working.",
	))
	cli.Success("Test notification sent")
	return nil
}
