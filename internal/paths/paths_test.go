package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionPrefixes(t *testing.T) {
	r := NewResolver("my-app")

	assert.Equal(t, "artifacts:my-app:users:u1:subjects:", r.Subjects("u1").Prefix())
	assert.Equal(t, "artifacts:my-app:users:u1:tasks:", r.Tasks("u1").Prefix())
	assert.Equal(t, "artifacts:my-app:users:u1:decks:", r.Decks("u1").Prefix())
	assert.Equal(t, "artifacts:my-app:users:u1:studySessions:", r.Sessions("u1").Prefix())
	assert.Equal(t, "artifacts:my-app:users:u1:quizHistory:", r.QuizHistory("u1").Prefix())
}

func TestCardsNestUnderDeck(t *testing.T) {
	r := NewResolver("my-app")

	col := r.Cards("u1", "deck-9")
	assert.Equal(t, "artifacts:my-app:users:u1:decks:deck-9:cards:", col.Prefix())
}

func TestResolverIsDeterministic(t *testing.T) {
	a := NewResolver("my-app").Tasks("u1")
	b := NewResolver("my-app").Tasks("u1")
	assert.Equal(t, a.Prefix(), b.Prefix())
}

func TestUserIsolation(t *testing.T) {
	r := NewResolver("my-app")
	assert.NotEqual(t, r.Tasks("u1").Prefix(), r.Tasks("u2").Prefix())

	// One user's prefix must never contain another's.
	assert.NotContains(t, r.Tasks("u1").Prefix(), r.Tasks("u2").Prefix())
}

func TestDocAndID(t *testing.T) {
	col := NewResolver("my-app").Tasks("u1")

	key := col.Doc("abc-123")
	assert.Equal(t, col.Prefix()+"abc-123", key)
	assert.Equal(t, "abc-123", col.ID(key))
}

func TestIDExcludesNestedKeys(t *testing.T) {
	r := NewResolver("my-app")
	decks := r.Decks("u1")
	cards := r.Cards("u1", "deck-9")

	// A card key starts with the decks prefix but is not a deck document.
	cardKey := cards.Doc("card-1")
	assert.Equal(t, "", decks.ID(cardKey))
	assert.Equal(t, "card-1", cards.ID(cardKey))
}

func TestTenantSeparation(t *testing.T) {
	a := NewResolver("app-a").Subjects("u1")
	b := NewResolver("app-b").Subjects("u1")
	assert.NotEqual(t, a.Prefix(), b.Prefix())
}
