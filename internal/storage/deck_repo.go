package storage

import (
	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// DeckRepo provides operations for Deck documents of one user.
type DeckRepo struct {
	db  *DB
	col paths.Collection
}

// NewDeckRepo creates a deck repository for the given user.
func NewDeckRepo(db *DB, r paths.Resolver, uid string) *DeckRepo {
	return &DeckRepo{db: db, col: r.Decks(uid)}
}

// Collection returns the resolved storage location.
func (r *DeckRepo) Collection() paths.Collection {
	return r.col
}

// Create stores a new deck, generating its id.
func (r *DeckRepo) Create(deck *model.Deck) error {
	return r.db.Create(r.col, deck)
}

// Get retrieves a deck by id.
func (r *DeckRepo) Get(id string) (*model.Deck, error) {
	deck := &model.Deck{}
	if err := r.db.Get(r.col, id, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

// Delete removes the deck document only. Cards under the deck are not
// cascaded; orphaned cards are not cleaned up by this layer.
func (r *DeckRepo) Delete(id string) error {
	return r.db.Delete(r.col, id)
}

// List retrieves all decks.
func (r *DeckRepo) List() ([]*model.Deck, error) {
	return List(r.db, r.col, func() *model.Deck {
		return &model.Deck{}
	})
}

// FindByName returns the first deck with the given name, or nil.
func (r *DeckRepo) FindByName(name string) (*model.Deck, error) {
	decks, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, d := range decks {
		if d.DeckName == name {
			return d, nil
		}
	}
	return nil, nil
}
