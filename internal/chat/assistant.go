// Package chat keeps an in-memory conversation with the generative endpoint.
package chat

import (
	"context"
	"strings"

	"chronosdeck/internal/ai"
)

// Turn is one transcript entry.
type Turn struct {
	Role string `json:"role"` // ai.RoleUser or ai.RoleModel
	Text string `json:"text"`
}

// Generator sends role-tagged turns to the generative endpoint. Satisfied
// by the ai client.
type Generator interface {
	GenerateContent(ctx context.Context, contents []ai.Content) (string, error)
}

// Assistant holds the session transcript. The transcript lives only in
// memory, grows without bound for the life of the session, and is never
// persisted.
type Assistant struct {
	client     Generator
	transcript []Turn
}

// NewAssistant creates an assistant with an empty transcript.
func NewAssistant(client Generator) *Assistant {
	return &Assistant{client: client}
}

// Send forwards the full prior transcript plus the new message, appends both
// the user turn and the model's reply, and returns the reply. The context
// bounds the request; a canceled send appends nothing.
func (a *Assistant) Send(ctx context.Context, message string) (string, error) {
	contents := make([]ai.Content, 0, len(a.transcript)+1)
	for _, turn := range a.transcript {
		contents = append(contents, ai.Text(turn.Role, turn.Text))
	}
	contents = append(contents, ai.Text(ai.RoleUser, message))

	reply, err := a.client.GenerateContent(ctx, contents)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)

	a.transcript = append(a.transcript,
		Turn{Role: ai.RoleUser, Text: message},
		Turn{Role: ai.RoleModel, Text: reply},
	)
	return reply, nil
}

// Transcript returns the ordered transcript so far.
func (a *Assistant) Transcript() []Turn {
	return a.transcript
}
