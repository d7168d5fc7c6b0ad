package model

import "time"

// StudySession is a logged completed focus-timer work interval. Sessions are
// written once by the timer and never mutated or deleted afterwards.
type StudySession struct {
	ID        string    `json:"-"`
	Subject   string    `json:"subject"`
	Duration  int       `json:"duration"` // minutes
	Timestamp time.Time `json:"timestamp"`
}

// SetID sets the document id for this session.
func (s *StudySession) SetID(id string) {
	s.ID = id
}

// GetID returns the document id for this session.
func (s *StudySession) GetID() string {
	return s.ID
}

// NewStudySession creates a session record for the given subject.
func NewStudySession(subject string, minutes int, at time.Time) *StudySession {
	return &StudySession{
		Subject:   subject,
		Duration:  minutes,
		Timestamp: at,
	}
}
