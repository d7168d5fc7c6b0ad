package cmd

import (
	"time"

	"github.com/spf13/cobra"

	apperrors "chronosdeck/internal/errors"
	"chronosdeck/internal/model"
	"chronosdeck/internal/parser"
	"chronosdeck/internal/storage"
	"chronosdeck/internal/validate"
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks"},
	Short:   "Manage tasks",
	Long: `List, add, edit, complete, and delete tasks. Every task belongs to
a subject by name; renaming or deleting the subject later does not rewrite
the task.

Examples:
  chronosdeck task
  chronosdeck task add "Finish problem set" --subject Math --due "friday 5pm"
  chronosdeck task done 4f3c...
  chronosdeck task edit 4f3c... --name "Review problem set"`,
	RunE: runTaskList,
}

// Task subcommand flags.
var (
	taskAddFlagSubject string
	taskAddFlagDue     string

	taskEditFlagName    string
	taskEditFlagSubject string
	taskEditFlagDue     string

	taskListFlagAll bool
)

var taskAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a task complete",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskReopenCmd = &cobra.Command{
	Use:   "reopen ID",
	Short: "Mark a task incomplete again",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskReopen,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDelete,
}

func init() {
	taskCmd.Flags().BoolVarP(&taskListFlagAll, "all", "a", false, "Include completed tasks")

	taskAddCmd.Flags().StringVarP(&taskAddFlagSubject, "subject", "s", "", "Subject name (required)")
	taskAddCmd.Flags().StringVarP(&taskAddFlagDue, "due", "d", "", "Due date (natural language accepted)")

	taskEditCmd.Flags().StringVarP(&taskEditFlagName, "name", "n", "", "Update task name")
	taskEditCmd.Flags().StringVarP(&taskEditFlagSubject, "subject", "s", "", "Update subject tag")
	taskEditCmd.Flags().StringVarP(&taskEditFlagDue, "due", "d", "", "Update due date")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskReopenCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	repo, err := ctx.Tasks()
	if err != nil {
		return err
	}
	tasks, err := repo.List()
	if err != nil {
		return err
	}

	if !taskListFlagAll {
		open := tasks[:0]
		for _, t := range tasks {
			if !t.IsComplete {
				open = append(open, t)
			}
		}
		tasks = open
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(tasks)
	}

	cli := ctx.CLIFormatter()
	if len(tasks) == 0 {
		cli.Muted("No open tasks.")
		return nil
	}
	for _, t := range tasks {
		cli.PrintTask(t)
		cli.Muted("    id: " + t.ID)
	}
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validate.Name("task name", name); err != nil {
		return err
	}
	if err := validate.SubjectSelected(taskAddFlagSubject); err != nil {
		return err
	}

	subjects, err := ctx.Subjects()
	if err != nil {
		return err
	}
	subject, err := resolveSubject(subjects, taskAddFlagSubject)
	if err != nil {
		return err
	}

	dueDate := ""
	var dueAt time.Time
	if taskAddFlagDue != "" {
		dueAt, err = parser.ParseDue(taskAddFlagDue)
		if err != nil {
			return err
		}
		dueDate = parser.FormatDue(dueAt)
	}

	repo, err := ctx.Tasks()
	if err != nil {
		return err
	}
	task := model.NewTask(name, subject.Name, dueDate)
	if err := repo.Create(task); err != nil {
		return err
	}

	// A reminder fires only while a long-running command keeps the process
	// alive, matching the session-scoped timers this mirrors.
	if dueDate != "" {
		ctx.Scheduler.ScheduleAt(
			model.NewNotification(model.NotifyTaskDue, "Task due", name),
			dueAt,
		)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(task)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Added task " + name)
	if dueDate != "" {
		cli.Muted("  due " + dueDate + " (" + parser.FormatTimeUntil(dueAt) + ")")
	}
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	return setTaskComplete(args[0], true)
}

func runTaskReopen(cmd *cobra.Command, args []string) error {
	return setTaskComplete(args[0], false)
}

func setTaskComplete(id string, complete bool) error {
	repo, err := ctx.Tasks()
	if err != nil {
		return err
	}
	if err := repo.SetComplete(id, complete); err != nil {
		return taskNotFound(id, err)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{"id": id, "isComplete": complete})
	}

	cli := ctx.CLIFormatter()
	if complete {
		cli.Success("Task complete")
	} else {
		cli.Success("Task reopened")
	}
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	repo, err := ctx.Tasks()
	if err != nil {
		return err
	}

	// Each changed field is written on its own, like the editors this
	// mirrors: a later failure leaves earlier edits in place.
	if taskEditFlagName != "" {
		if err := validate.Name("task name", taskEditFlagName); err != nil {
			return err
		}
		if err := repo.SetName(id, taskEditFlagName); err != nil {
			return taskNotFound(id, err)
		}
	}
	if taskEditFlagSubject != "" {
		subjects, err := ctx.Subjects()
		if err != nil {
			return err
		}
		subject, err := resolveSubject(subjects, taskEditFlagSubject)
		if err != nil {
			return err
		}
		if err := repo.SetSubjectTag(id, subject.Name); err != nil {
			return taskNotFound(id, err)
		}
	}
	if taskEditFlagDue != "" {
		dueAt, err := parser.ParseDue(taskEditFlagDue)
		if err != nil {
			return err
		}
		if err := repo.SetDueDate(id, parser.FormatDue(dueAt)); err != nil {
			return taskNotFound(id, err)
		}
	}

	task, err := repo.Get(id)
	if err != nil {
		return taskNotFound(id, err)
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(task)
	}
	ctx.CLIFormatter().PrintTask(task)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	repo, err := ctx.Tasks()
	if err != nil {
		return err
	}
	if err := repo.Delete(args[0]); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"deleted": args[0]})
	}
	ctx.CLIFormatter().Success("Deleted task")
	return nil
}

func taskNotFound(id string, err error) error {
	if err == nil {
		return nil
	}
	if storage.IsErrDocNotFound(err) {
		return apperrors.NewUserErrorWithField("task", id,
			apperrors.ErrTaskNotFound.Error(),
			"Use 'chronosdeck task --all' to list task ids")
	}
	return err
}
