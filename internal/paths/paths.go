// Package paths maps (tenant, user, kind, parent ids) to canonical storage
// locations. The resolver is a pure function: identical inputs always produce
// identical locations, and locations for distinct users never overlap.
package paths

import "strings"

// Entity kinds stored per user.
const (
	KindSubjects    = "subjects"
	KindTasks       = "tasks"
	KindDecks       = "decks"
	KindCards       = "cards"
	KindSessions    = "studySessions"
	KindQuizHistory = "quizHistory"
)

// sep separates key segments. Segment values never contain it because ids
// are uuids and tenant/user ids are validated on the way in.
const sep = ":"

// Collection is a resolved storage location for a set of documents.
type Collection struct {
	prefix string
}

// Prefix returns the key prefix shared by every document in the collection.
func (c Collection) Prefix() string {
	return c.prefix
}

// Doc returns the storage key for the document with the given id.
func (c Collection) Doc(id string) string {
	return c.prefix + id
}

// ID extracts the document id from a key within this collection. Returns ""
// if the key does not belong to the collection, or if it belongs to a nested
// subcollection (a deck's cards share the deck collection's prefix).
func (c Collection) ID(key string) string {
	if !strings.HasPrefix(key, c.prefix) {
		return ""
	}
	id := key[len(c.prefix):]
	if strings.Contains(id, sep) {
		return ""
	}
	return id
}

// Resolver builds storage locations for a single tenant.
type Resolver struct {
	Tenant string
}

// NewResolver creates a resolver for the given tenant.
func NewResolver(tenant string) Resolver {
	return Resolver{Tenant: tenant}
}

func (r Resolver) user(uid string) string {
	return strings.Join([]string{"artifacts", r.Tenant, "users", uid}, sep) + sep
}

func (r Resolver) collection(uid string, segments ...string) Collection {
	return Collection{prefix: r.user(uid) + strings.Join(segments, sep) + sep}
}

// Subjects resolves the subjects collection for a user.
func (r Resolver) Subjects(uid string) Collection {
	return r.collection(uid, KindSubjects)
}

// Tasks resolves the tasks collection for a user.
func (r Resolver) Tasks(uid string) Collection {
	return r.collection(uid, KindTasks)
}

// Decks resolves the decks collection for a user.
func (r Resolver) Decks(uid string) Collection {
	return r.collection(uid, KindDecks)
}

// Cards resolves the cards subcollection under a deck.
func (r Resolver) Cards(uid, deckID string) Collection {
	return r.collection(uid, KindDecks, deckID, KindCards)
}

// Sessions resolves the study-sessions collection for a user.
func (r Resolver) Sessions(uid string) Collection {
	return r.collection(uid, KindSessions)
}

// QuizHistory resolves the quiz-history collection for a user.
func (r Resolver) QuizHistory(uid string) Collection {
	return r.collection(uid, KindQuizHistory)
}
