package model

// Task represents a to-do item tagged with a subject name.
//
// SubjectTag is a free-text copy of the subject name taken at creation time.
// The denormalization is intentional: existing tasks keep the old tag when
// the subject is renamed or deleted.
type Task struct {
	ID         string `json:"-"`
	TaskName   string `json:"taskName"`
	SubjectTag string `json:"subjectTag"`
	DueDate    string `json:"dueDate,omitempty"`
	IsComplete bool   `json:"isComplete"`
}

// SetID sets the document id for this task.
func (t *Task) SetID(id string) {
	t.ID = id
}

// GetID returns the document id for this task.
func (t *Task) GetID() string {
	return t.ID
}

// NewTask creates a new, incomplete task.
func NewTask(name, subjectTag, dueDate string) *Task {
	return &Task{
		TaskName:   name,
		SubjectTag: subjectTag,
		DueDate:    dueDate,
		IsComplete: false,
	}
}
