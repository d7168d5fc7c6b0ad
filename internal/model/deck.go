package model

// Deck represents a flashcard deck. Cards live in a subcollection under the
// deck document; deleting a deck does not cascade to its cards.
type Deck struct {
	ID       string `json:"-"`
	DeckName string `json:"deckName"`
}

// SetID sets the document id for this deck.
func (d *Deck) SetID(id string) {
	d.ID = id
}

// GetID returns the document id for this deck.
func (d *Deck) GetID() string {
	return d.ID
}

// NewDeck creates a new deck with the given name.
func NewDeck(name string) *Deck {
	return &Deck{DeckName: name}
}

// Card represents a single flashcard within a deck.
type Card struct {
	ID         string `json:"-"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// SetID sets the document id for this card.
func (c *Card) SetID(id string) {
	c.ID = id
}

// GetID returns the document id for this card.
func (c *Card) GetID() string {
	return c.ID
}

// NewCard creates a new card with the given term and definition.
func NewCard(term, definition string) *Card {
	return &Card{Term: term, Definition: definition}
}
