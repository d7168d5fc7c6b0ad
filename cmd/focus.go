package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"chronosdeck/internal/model"
	"chronosdeck/internal/notify"
	"chronosdeck/internal/storage"
	"chronosdeck/internal/timer"
)

// focusCmd runs the focus timer.
var focusCmd = &cobra.Command{
	Use:   "focus SUBJECT",
	Short: "Run a focus session for a subject",
	Long: `Run a 25-minute focus countdown for a subject, followed by a
5-minute break. Each completed work phase records a study session.

Controls: SPACE pause/resume, R reset, Q quit.

Examples:
  chronosdeck focus Math`,
	Args: cobra.ExactArgs(1),
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
}

// sessionRecorder writes completed work phases to the study log.
type sessionRecorder struct {
	repo *storage.SessionRepo
}

func (r *sessionRecorder) RecordSession(subject string, minutes int, at time.Time) error {
	return r.repo.Create(model.NewStudySession(subject, minutes, at))
}

// completionAnnouncer sends a notification when a work phase finishes.
type completionAnnouncer struct {
	scheduler *notify.Scheduler
}

func (a *completionAnnouncer) AnnounceComplete(subject string) {
	a.scheduler.Notify(model.NewNotification(
		model.NotifySessionComplete,
		"Focus complete",
		"Finished a session on "+subject+". Time for a break.",
	))
}

func runFocus(cmd *cobra.Command, args []string) error {
	subjects, err := ctx.Subjects()
	if err != nil {
		return err
	}
	subject, err := resolveSubject(subjects, args[0])
	if err != nil {
		return err
	}

	sessions, err := ctx.Sessions()
	if err != nil {
		return err
	}

	focus := timer.NewFocus(
		&sessionRecorder{repo: sessions},
		&completionAnnouncer{scheduler: ctx.Scheduler},
	)
	runner := timer.NewRunner(focus)
	return runner.Run(cmd.Context(), subject.Name)
}
