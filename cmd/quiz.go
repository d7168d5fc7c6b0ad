package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apperrors "chronosdeck/internal/errors"
	"chronosdeck/internal/quiz"
)

// quizCmd represents the quiz command.
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate and take quizzes from a deck",
	Long: `Generate a multiple-choice quiz from a deck's cards and take it
interactively. Results are recorded in your quiz history.

Examples:
  chronosdeck quiz start "French Vocab"
  chronosdeck quiz history`,
}

var quizStartCmd = &cobra.Command{
	Use:   "start DECK",
	Short: "Generate a quiz from a deck and take it",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuizStart,
}

var quizHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past quiz scores",
	RunE:  runQuizHistory,
}

func init() {
	quizCmd.AddCommand(quizStartCmd)
	quizCmd.AddCommand(quizHistoryCmd)
	rootCmd.AddCommand(quizCmd)
}

func runQuizStart(cmd *cobra.Command, args []string) error {
	decks, err := ctx.Decks()
	if err != nil {
		return err
	}
	deck, err := resolveDeck(decks, args[0])
	if err != nil {
		return err
	}

	cards, err := ctx.Cards()
	if err != nil {
		return err
	}
	deckCards, err := cards.List(deck.ID)
	if err != nil {
		return err
	}
	if len(deckCards) == 0 {
		return apperrors.NewUserError(
			"deck has no cards",
			"Add cards with 'chronosdeck deck card add' first",
		)
	}

	engine, err := ctx.QuizEngine()
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	cli.Muted("Generating quiz from " + deck.DeckName + "...")

	questions, err := engine.Generate(cmd.Context(), deckCards)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return apperrors.NewUserError(
			apperrors.ErrNoQuiz.Error(),
			"The model returned no usable questions; try again",
		)
	}

	answers, err := askQuestions(cli.Printf, questions)
	if err != nil {
		return err
	}

	score, err := engine.Submit(deck.DeckName, questions, answers)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"deck":  deck.DeckName,
			"score": score,
		})
	}
	cli.Success("Score: " + score)
	return nil
}

// askQuestions runs the interactive question loop, returning the chosen
// option text per question index. Unanswered questions are simply absent.
func askQuestions(printf func(string, ...interface{}), questions []quiz.Question) (map[int]string, error) {
	reader := bufio.NewReader(os.Stdin)
	answers := make(map[int]string)

	for i, q := range questions {
		printf("\n%d) %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			printf("   %d. %s\n", j+1, opt)
		}
		printf("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return answers, nil
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(q.Options) {
			printf("   (skipped)\n")
			continue
		}
		answers[i] = q.Options[choice-1]
	}
	return answers, nil
}

func runQuizHistory(cmd *cobra.Command, args []string) error {
	repo, err := ctx.QuizHistory()
	if err != nil {
		return err
	}
	entries, err := repo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(entries)
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No quizzes taken yet.")
		return nil
	}
	cli.Title(fmt.Sprintf("Quiz history (%d)", len(entries)))
	for _, e := range entries {
		cli.PrintQuizScore(e)
	}
	return nil
}
