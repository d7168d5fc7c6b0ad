package model

// Subject represents a study subject. Tasks and study sessions reference
// subjects by name, not id; renaming or deleting a subject does not touch
// records that already carry the old name.
type Subject struct {
	ID    string `json:"-"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// SetID sets the document id for this subject.
func (s *Subject) SetID(id string) {
	s.ID = id
}

// GetID returns the document id for this subject.
func (s *Subject) GetID() string {
	return s.ID
}

// NewSubject creates a new subject with the given name and color.
func NewSubject(name, color string) *Subject {
	return &Subject{
		Name:  name,
		Color: color,
	}
}
