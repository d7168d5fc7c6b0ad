package storage

import (
	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// CardRepo provides operations for Card documents in deck subcollections.
// Methods take the deck id explicitly; card existence requires the deck id
// to be known, but a card outlives its deck if the deck is deleted.
type CardRepo struct {
	db       *DB
	resolver paths.Resolver
	uid      string
}

// NewCardRepo creates a card repository for the given user.
func NewCardRepo(db *DB, r paths.Resolver, uid string) *CardRepo {
	return &CardRepo{db: db, resolver: r, uid: uid}
}

// Collection returns the resolved cards location under a deck.
func (r *CardRepo) Collection(deckID string) paths.Collection {
	return r.resolver.Cards(r.uid, deckID)
}

// Create stores a new card under the deck, generating its id.
func (r *CardRepo) Create(deckID string, card *model.Card) error {
	return r.db.Create(r.Collection(deckID), card)
}

// Get retrieves a card by id.
func (r *CardRepo) Get(deckID, id string) (*model.Card, error) {
	card := &model.Card{}
	if err := r.db.Get(r.Collection(deckID), id, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Delete removes a card.
func (r *CardRepo) Delete(deckID, id string) error {
	return r.db.Delete(r.Collection(deckID), id)
}

// List retrieves all cards under a deck.
func (r *CardRepo) List(deckID string) ([]*model.Card, error) {
	return List(r.db, r.Collection(deckID), func() *model.Card {
		return &model.Card{}
	})
}

// SetTerm patches the card's term.
func (r *CardRepo) SetTerm(deckID, id, term string) error {
	return r.patch(deckID, id, func(c *model.Card) {
		c.Term = term
	})
}

// SetDefinition patches the card's definition.
func (r *CardRepo) SetDefinition(deckID, id, definition string) error {
	return r.patch(deckID, id, func(c *model.Card) {
		c.Definition = definition
	})
}

func (r *CardRepo) patch(deckID, id string, mutate func(*model.Card)) error {
	card, err := r.Get(deckID, id)
	if err != nil {
		return err
	}
	mutate(card)
	return r.db.Put(r.Collection(deckID), card)
}
