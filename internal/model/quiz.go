package model

import "time"

// QuizHistoryEntry records one quiz submission. Score is stored as a
// "correct/total" string. Submitting the same quiz again appends another
// entry; there is no idempotence guard.
type QuizHistoryEntry struct {
	ID        string    `json:"-"`
	DeckName  string    `json:"deckName"`
	Score     string    `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// SetID sets the document id for this entry.
func (q *QuizHistoryEntry) SetID(id string) {
	q.ID = id
}

// GetID returns the document id for this entry.
func (q *QuizHistoryEntry) GetID() string {
	return q.ID
}

// NewQuizHistoryEntry creates a history entry for a submitted quiz.
func NewQuizHistoryEntry(deckName, score string, at time.Time) *QuizHistoryEntry {
	return &QuizHistoryEntry{
		DeckName:  deckName,
		Score:     score,
		Timestamp: at,
	}
}
