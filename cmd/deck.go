package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	apperrors "chronosdeck/internal/errors"
	"chronosdeck/internal/model"
	"chronosdeck/internal/output"
	"chronosdeck/internal/storage"
	"chronosdeck/internal/validate"
)

// deckCmd represents the deck command.
var deckCmd = &cobra.Command{
	Use:     "deck",
	Aliases: []string{"decks"},
	Short:   "Manage flashcard decks",
	Long: `List decks, create or delete a deck, and manage the cards inside one.

Examples:
  chronosdeck deck
  chronosdeck deck create "French Vocab"
  chronosdeck deck show "French Vocab"
  chronosdeck deck card add "French Vocab" "bonjour" "hello"`,
	RunE: runDeckList,
}

var deckCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new deck",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeckCreate,
}

var deckShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a deck and its cards",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeckShow,
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a deck",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeckDelete,
}

// cardCmd groups card operations under deck.
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards in a deck",
}

var (
	cardEditFlagTerm       string
	cardEditFlagDefinition string
)

var cardAddCmd = &cobra.Command{
	Use:   "add DECK TERM DEFINITION",
	Short: "Add a card to a deck",
	Args:  cobra.ExactArgs(3),
	RunE:  runCardAdd,
}

var cardEditCmd = &cobra.Command{
	Use:   "edit DECK CARD_ID",
	Short: "Edit a card",
	Args:  cobra.ExactArgs(2),
	RunE:  runCardEdit,
}

var cardDeleteCmd = &cobra.Command{
	Use:   "delete DECK CARD_ID",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(2),
	RunE:  runCardDelete,
}

func init() {
	cardEditCmd.Flags().StringVarP(&cardEditFlagTerm, "term", "t", "", "Update the term")
	cardEditCmd.Flags().StringVarP(&cardEditFlagDefinition, "definition", "d", "", "Update the definition")

	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardEditCmd)
	cardCmd.AddCommand(cardDeleteCmd)

	deckCmd.AddCommand(deckCreateCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckDeleteCmd)
	deckCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(deckCmd)
}

func runDeckList(cmd *cobra.Command, args []string) error {
	repo, err := ctx.Decks()
	if err != nil {
		return err
	}
	decks, err := repo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(decks)
	}

	cli := ctx.CLIFormatter()
	if len(decks) == 0 {
		cli.Muted("No decks yet.")
		cli.Muted("Use 'chronosdeck deck create <name>' to add one.")
		return nil
	}

	cards, err := ctx.Cards()
	if err != nil {
		return err
	}
	rows := make([]output.TableRow, len(decks))
	for i, d := range decks {
		deckCards, err := cards.List(d.ID)
		if err != nil {
			return err
		}
		rows[i] = output.TableRow{Columns: []string{d.DeckName, itoa(len(deckCards)), d.ID}}
	}
	cli.PrintTable([]string{"DECK", "CARDS", "ID"}, rows)
	return nil
}

func runDeckCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validate.Name("deck name", name); err != nil {
		return err
	}

	repo, err := ctx.Decks()
	if err != nil {
		return err
	}
	deck := model.NewDeck(name)
	if err := repo.Create(deck); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(deck)
	}
	ctx.CLIFormatter().Success("Created deck " + name)
	return nil
}

func runDeckShow(cmd *cobra.Command, args []string) error {
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

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"deck":  deck,
			"cards": deckCards,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(deck.DeckName)
	if len(deckCards) == 0 {
		cli.Muted("No cards yet.")
		return nil
	}
	for _, c := range deckCards {
		cli.PrintCard(c)
		cli.Muted("    id: " + c.ID)
	}
	return nil
}

func runDeckDelete(cmd *cobra.Command, args []string) error {
	repo, err := ctx.Decks()
	if err != nil {
		return err
	}
	deck, err := resolveDeck(repo, args[0])
	if err != nil {
		return err
	}
	if err := repo.Delete(deck.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"deleted": deck.ID})
	}
	ctx.CLIFormatter().Success("Deleted deck " + deck.DeckName)
	return nil
}

func runCardAdd(cmd *cobra.Command, args []string) error {
	term, definition := args[1], args[2]
	if err := validate.CardField("term", term); err != nil {
		return err
	}
	if err := validate.CardField("definition", definition); err != nil {
		return err
	}

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
	card := model.NewCard(term, definition)
	if err := cards.Create(deck.ID, card); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(card)
	}
	ctx.CLIFormatter().Success("Added card to " + deck.DeckName)
	return nil
}

func runCardEdit(cmd *cobra.Command, args []string) error {
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

	cardID := args[1]
	if cardEditFlagTerm != "" {
		if err := validate.CardField("term", cardEditFlagTerm); err != nil {
			return err
		}
		if err := cards.SetTerm(deck.ID, cardID, cardEditFlagTerm); err != nil {
			return cardNotFound(cardID, err)
		}
	}
	if cardEditFlagDefinition != "" {
		if err := validate.CardField("definition", cardEditFlagDefinition); err != nil {
			return err
		}
		if err := cards.SetDefinition(deck.ID, cardID, cardEditFlagDefinition); err != nil {
			return cardNotFound(cardID, err)
		}
	}

	card, err := cards.Get(deck.ID, cardID)
	if err != nil {
		return cardNotFound(cardID, err)
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(card)
	}
	ctx.CLIFormatter().PrintCard(card)
	return nil
}

func runCardDelete(cmd *cobra.Command, args []string) error {
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
	if err := cards.Delete(deck.ID, args[1]); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"deleted": args[1]})
	}
	ctx.CLIFormatter().Success("Deleted card")
	return nil
}

// resolveDeck looks a deck up by ID first, then by name.
func resolveDeck(repo *storage.DeckRepo, ref string) (*model.Deck, error) {
	deck, err := repo.Get(ref)
	if err == nil {
		return deck, nil
	}
	if !storage.IsErrDocNotFound(err) {
		return nil, err
	}

	deck, err = repo.FindByName(ref)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, apperrors.NewUserErrorWithField("deck", ref,
			apperrors.ErrDeckNotFound.Error(),
			"Use 'chronosdeck deck' to list decks")
	}
	return deck, nil
}

func cardNotFound(id string, err error) error {
	if err == nil {
		return nil
	}
	if storage.IsErrDocNotFound(err) {
		return apperrors.NewUserErrorWithField("card", id,
			apperrors.ErrCardNotFound.Error(),
			"Use 'chronosdeck deck show <deck>' to list card ids")
	}
	return err
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
