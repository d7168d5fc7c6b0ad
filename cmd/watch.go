package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"chronosdeck/internal/tui"
)

// watchCmd opens the live dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the live dashboard",
	Long: `Open a live dashboard that re-renders as your tasks, subjects,
decks, and study log change, including changes made by other chronosdeck
processes on the same database.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	principal, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	model := tui.NewWatchModel(ctx.DB, ctx.Resolver, principal.UID)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
