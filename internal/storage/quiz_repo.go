package storage

import (
	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// QuizRepo provides operations for QuizHistoryEntry documents of one user.
type QuizRepo struct {
	db  *DB
	col paths.Collection
}

// NewQuizRepo creates a quiz-history repository for the given user.
func NewQuizRepo(db *DB, r paths.Resolver, uid string) *QuizRepo {
	return &QuizRepo{db: db, col: r.QuizHistory(uid)}
}

// Collection returns the resolved storage location.
func (r *QuizRepo) Collection() paths.Collection {
	return r.col
}

// Create stores a new history entry, generating its id.
func (r *QuizRepo) Create(entry *model.QuizHistoryEntry) error {
	return r.db.Create(r.col, entry)
}

// List retrieves all history entries.
func (r *QuizRepo) List() ([]*model.QuizHistoryEntry, error) {
	return List(r.db, r.col, func() *model.QuizHistoryEntry {
		return &model.QuizHistoryEntry{}
	})
}
