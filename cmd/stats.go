package cmd

import (
	"github.com/spf13/cobra"

	"chronosdeck/internal/output"
	"chronosdeck/internal/stats"
)

// statsCmd shows study time per subject.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study time per subject",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	repo, err := ctx.Sessions()
	if err != nil {
		return err
	}
	sessions, err := repo.List()
	if err != nil {
		return err
	}

	totals := stats.TotalsBySubject(sessions)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(totals)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Study time by subject")

	chart := stats.NewChart()
	chart.UseColor = ctx.Formatter.IsColorEnabled()
	cli.Print(chart.Render(stats.SortedTotals(totals)))

	total := 0
	for _, minutes := range totals {
		total += minutes
	}
	if total > 0 {
		cli.Muted("Total: " + output.FormatMinutes(total))
	}
	return nil
}
