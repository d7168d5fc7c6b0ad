package storage

import (
	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// TaskRepo provides operations for Task documents of one user.
//
// Edits are field-level: each setter issues exactly one store write for the
// one field it changes.
type TaskRepo struct {
	db  *DB
	col paths.Collection
}

// NewTaskRepo creates a task repository for the given user.
func NewTaskRepo(db *DB, r paths.Resolver, uid string) *TaskRepo {
	return &TaskRepo{db: db, col: r.Tasks(uid)}
}

// Collection returns the resolved storage location.
func (r *TaskRepo) Collection() paths.Collection {
	return r.col
}

// Create stores a new task, generating its id.
func (r *TaskRepo) Create(task *model.Task) error {
	return r.db.Create(r.col, task)
}

// Get retrieves a task by id.
func (r *TaskRepo) Get(id string) (*model.Task, error) {
	task := &model.Task{}
	if err := r.db.Get(r.col, id, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task.
func (r *TaskRepo) Delete(id string) error {
	return r.db.Delete(r.col, id)
}

// List retrieves all tasks.
func (r *TaskRepo) List() ([]*model.Task, error) {
	return List(r.db, r.col, func() *model.Task {
		return &model.Task{}
	})
}

// SetName patches the task's name.
func (r *TaskRepo) SetName(id, name string) error {
	return r.patch(id, func(t *model.Task) {
		t.TaskName = name
	})
}

// SetDueDate patches the task's due date.
func (r *TaskRepo) SetDueDate(id, dueDate string) error {
	return r.patch(id, func(t *model.Task) {
		t.DueDate = dueDate
	})
}

// SetSubjectTag patches the task's subject tag.
func (r *TaskRepo) SetSubjectTag(id, subjectTag string) error {
	return r.patch(id, func(t *model.Task) {
		t.SubjectTag = subjectTag
	})
}

// SetComplete patches the task's completion flag.
func (r *TaskRepo) SetComplete(id string, complete bool) error {
	return r.patch(id, func(t *model.Task) {
		t.IsComplete = complete
	})
}

func (r *TaskRepo) patch(id string, mutate func(*model.Task)) error {
	task, err := r.Get(id)
	if err != nil {
		return err
	}
	mutate(task)
	return r.db.Put(r.col, task)
}
