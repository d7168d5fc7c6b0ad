// Package cmd provides the CLI commands for chronosdeck.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	apperrors "chronosdeck/internal/errors"
	"chronosdeck/internal/logging"
	"chronosdeck/internal/output"
	"chronosdeck/internal/runtime"
	"chronosdeck/internal/stats"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chronosdeck",
	Short: "A study dashboard in your terminal",
	Long: `Chronosdeck tracks your subjects, tasks, flashcard decks, and focus
sessions, and can quiz you on any deck.

Examples:
  chronosdeck login --name "Dana"
  chronosdeck subject create Math --color "#7C3AED"
  chronosdeck task add "Finish problem set" --subject Math --due "friday 5pm"
  chronosdeck focus Math
  chronosdeck quiz start "French Vocab"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		if flagDebug {
			logging.InitDebug()
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(cmd.Context(), opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOverview(cmd, args)
	},
}

// runOverview shows a dashboard summary.
func runOverview(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	principal, err := ctx.RequireUser()
	if err != nil {
		cli.Muted("Not signed in.")
		cli.Muted("Use 'chronosdeck login --name <your name>' to begin.")
		return nil
	}

	tasks, err := ctx.Tasks()
	if err != nil {
		return err
	}
	allTasks, err := tasks.List()
	if err != nil {
		return err
	}
	open := 0
	for _, t := range allTasks {
		if !t.IsComplete {
			open++
		}
	}

	sessions, err := ctx.Sessions()
	if err != nil {
		return err
	}
	history, err := sessions.List()
	if err != nil {
		return err
	}
	totalMinutes := 0
	for _, s := range history {
		totalMinutes += s.Duration
	}

	decks, err := ctx.Decks()
	if err != nil {
		return err
	}
	allDecks, err := decks.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"user":         principal.DisplayName,
			"openTasks":    open,
			"totalTasks":   len(allTasks),
			"decks":        len(allDecks),
			"studyMinutes": totalMinutes,
			"totals":       stats.TotalsBySubject(history),
		})
	}

	cli.Title("chronosdeck")
	cli.Printf("Signed in as %s\n", cli.SubjectName(principal.DisplayName))
	cli.Printf("  Tasks:      %d open / %d total\n", open, len(allTasks))
	cli.Printf("  Decks:      %d\n", len(allDecks))
	cli.Printf("  Study time: %s\n", output.FormatMinutes(totalMinutes))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		if s := apperrors.Suggestion(err); s != "" {
			os.Stderr.WriteString("  " + s + "\n")
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("chronosdeck %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
