package cmd

import (
	"github.com/spf13/cobra"

	apperrors "chronosdeck/internal/errors"
	"chronosdeck/internal/model"
	"chronosdeck/internal/output"
	"chronosdeck/internal/storage"
	"chronosdeck/internal/validate"
)

// subjectCmd represents the subject command.
var subjectCmd = &cobra.Command{
	Use:     "subject",
	Aliases: []string{"subjects", "sub"},
	Short:   "Manage subjects",
	Long: `List, create, or delete subjects.

Examples:
  chronosdeck subject
  chronosdeck subject create Math --color "#7C3AED"
  chronosdeck subject delete Math`,
	RunE: runSubjectList,
}

var subjectCreateFlagColor string

var subjectCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectCreate,
}

var subjectDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectDelete,
}

func init() {
	subjectCreateCmd.Flags().StringVarP(&subjectCreateFlagColor, "color", "c", "", "Hex color (#RRGGBB)")

	subjectCmd.AddCommand(subjectCreateCmd)
	subjectCmd.AddCommand(subjectDeleteCmd)
	rootCmd.AddCommand(subjectCmd)
}

func runSubjectList(cmd *cobra.Command, args []string) error {
	repo, err := ctx.Subjects()
	if err != nil {
		return err
	}
	subjects, err := repo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(subjects)
	}

	cli := ctx.CLIFormatter()
	if len(subjects) == 0 {
		cli.Muted("No subjects yet.")
		cli.Muted("Use 'chronosdeck subject create <name>' to add one.")
		return nil
	}

	rows := make([]output.TableRow, len(subjects))
	for i, s := range subjects {
		rows[i] = output.TableRow{Columns: []string{s.Name, s.Color, s.ID}}
	}
	cli.PrintTable([]string{"NAME", "COLOR", "ID"}, rows)
	return nil
}

func runSubjectCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validate.Name("subject name", name); err != nil {
		return err
	}
	if err := validate.HexColor(subjectCreateFlagColor); err != nil {
		return err
	}

	repo, err := ctx.Subjects()
	if err != nil {
		return err
	}

	subject := model.NewSubject(name, subjectCreateFlagColor)
	if err := repo.Create(subject); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(subject)
	}
	ctx.CLIFormatter().Success("Created subject " + name)
	return nil
}

func runSubjectDelete(cmd *cobra.Command, args []string) error {
	repo, err := ctx.Subjects()
	if err != nil {
		return err
	}

	subject, err := resolveSubject(repo, args[0])
	if err != nil {
		return err
	}
	if err := repo.Delete(subject.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"deleted": subject.ID})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Deleted subject " + subject.Name)
	cli.Muted("  Tasks tagged with this subject keep their tag.")
	return nil
}

// resolveSubject looks a subject up by ID first, then by name.
func resolveSubject(repo *storage.SubjectRepo, ref string) (*model.Subject, error) {
	subject, err := repo.Get(ref)
	if err == nil {
		return subject, nil
	}
	if !storage.IsErrDocNotFound(err) {
		return nil, err
	}

	subject, err = repo.FindByName(ref)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.NewUserErrorWithField("subject", ref,
			apperrors.ErrSubjectNotFound.Error(),
			"Use 'chronosdeck subject' to list subjects")
	}
	return subject, nil
}
