// Package quiz generates multiple-choice quizzes from flashcards and scores
// submissions.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chronosdeck/internal/logging"
	"chronosdeck/internal/model"
	"chronosdeck/internal/storage"
)

// Generator produces text from a prompt. Satisfied by the ai client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Question is one multiple-choice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Engine requests quizzes from the generative endpoint and persists results.
type Engine struct {
	generator Generator
	history   *storage.QuizRepo
}

// NewEngine creates a quiz engine.
func NewEngine(generator Generator, history *storage.QuizRepo) *Engine {
	return &Engine{generator: generator, history: history}
}

// quizItem is the card projection sent to the endpoint.
type quizItem struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

const promptFormat = `You are a helpful study assistant. Based on the following terms and definitions, generate 5 multiple-choice questions. You MUST return *only* a valid JSON array in this format: [{"question": "...", "options": ["A", "B", "C", "D"], "correctAnswer": "A"}, ...]

Data: %s`

// Generate requests a quiz for the given cards. A malformed endpoint
// response yields an empty quiz, not an error; only transport failures
// propagate.
func (e *Engine) Generate(ctx context.Context, cards []*model.Card) ([]Question, error) {
	items := make([]quizItem, 0, len(cards))
	for _, c := range cards {
		items = append(items, quizItem{Term: c.Term, Definition: c.Definition})
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	text, err := e.generator.Generate(ctx, fmt.Sprintf(promptFormat, data))
	if err != nil {
		return nil, err
	}

	questions := ParseQuestions(text)
	logging.Debug("quiz generated", logging.KeyCount, len(questions))
	return questions, nil
}

// Score counts the answers that exactly match the question's correct answer.
// No normalization is applied.
func Score(questions []Question, answers map[int]string) int {
	correct := 0
	for i, q := range questions {
		if answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}

// Submit scores the quiz, persists a history entry, and returns the
// "correct/total" score string. Submitting with no answers scores "0/N";
// submitting the same quiz again appends another entry.
func (e *Engine) Submit(deckName string, questions []Question, answers map[int]string) (string, error) {
	score := fmt.Sprintf("%d/%d", Score(questions, answers), len(questions))

	entry := model.NewQuizHistoryEntry(deckName, score, time.Now())
	if err := e.history.Create(entry); err != nil {
		return "", err
	}
	return score, nil
}
