package storage

import (
	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// SubjectRepo provides operations for Subject documents of one user.
type SubjectRepo struct {
	db  *DB
	col paths.Collection
}

// NewSubjectRepo creates a subject repository for the given user.
func NewSubjectRepo(db *DB, r paths.Resolver, uid string) *SubjectRepo {
	return &SubjectRepo{db: db, col: r.Subjects(uid)}
}

// Collection returns the resolved storage location.
func (r *SubjectRepo) Collection() paths.Collection {
	return r.col
}

// Create stores a new subject, generating its id.
func (r *SubjectRepo) Create(subject *model.Subject) error {
	return r.db.Create(r.col, subject)
}

// Get retrieves a subject by id.
func (r *SubjectRepo) Get(id string) (*model.Subject, error) {
	subject := &model.Subject{}
	if err := r.db.Get(r.col, id, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// Delete removes a subject. Tasks and sessions that carry the subject's name
// are left untouched.
func (r *SubjectRepo) Delete(id string) error {
	return r.db.Delete(r.col, id)
}

// List retrieves all subjects.
func (r *SubjectRepo) List() ([]*model.Subject, error) {
	return List(r.db, r.col, func() *model.Subject {
		return &model.Subject{}
	})
}

// FindByName returns the first subject with the given name, or nil.
func (r *SubjectRepo) FindByName(name string) (*model.Subject, error) {
	subjects, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, s := range subjects {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}
