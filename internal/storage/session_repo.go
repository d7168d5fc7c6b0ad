package storage

import (
	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// SessionRepo provides operations for StudySession documents of one user.
// Sessions are append-only: the timer creates them and nothing edits or
// deletes them afterwards.
type SessionRepo struct {
	db  *DB
	col paths.Collection
}

// NewSessionRepo creates a study-session repository for the given user.
func NewSessionRepo(db *DB, r paths.Resolver, uid string) *SessionRepo {
	return &SessionRepo{db: db, col: r.Sessions(uid)}
}

// Collection returns the resolved storage location.
func (r *SessionRepo) Collection() paths.Collection {
	return r.col
}

// Create stores a new session record, generating its id.
func (r *SessionRepo) Create(session *model.StudySession) error {
	return r.db.Create(r.col, session)
}

// List retrieves all session records.
func (r *SessionRepo) List() ([]*model.StudySession, error) {
	return List(r.db, r.col, func() *model.StudySession {
		return &model.StudySession{}
	})
}
