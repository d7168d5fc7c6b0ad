package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronosdeck/internal/ai"
)

// scriptedGenerator returns queued replies and records what it was sent.
type scriptedGenerator struct {
	replies []string
	err     error
	sent    [][]ai.Content
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, contents []ai.Content) (string, error) {
	g.sent = append(g.sent, contents)
	if g.err != nil {
		return "", g.err
	}
	reply := g.replies[0]
	g.replies = g.replies[1:]
	return reply, nil
}

func TestSendAppendsBothTurns(t *testing.T) {
	g := &scriptedGenerator{replies: []string{"  Hi there  "}}
	a := NewAssistant(g)

	reply, err := a.Send(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there", reply)

	transcript := a.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, Turn{Role: ai.RoleUser, Text: "Hello"}, transcript[0])
	assert.Equal(t, Turn{Role: ai.RoleModel, Text: "Hi there"}, transcript[1])
}

func TestSendForwardsFullHistory(t *testing.T) {
	g := &scriptedGenerator{replies: []string{"one", "two"}}
	a := NewAssistant(g)

	_, err := a.Send(context.Background(), "first")
	require.NoError(t, err)
	_, err = a.Send(context.Background(), "second")
	require.NoError(t, err)

	// The second request carries the prior two turns plus the new message.
	require.Len(t, g.sent, 2)
	second := g.sent[1]
	require.Len(t, second, 3)
	assert.Equal(t, ai.RoleUser, second[0].Role)
	assert.Equal(t, "first", second[0].Parts[0].Text)
	assert.Equal(t, ai.RoleModel, second[1].Role)
	assert.Equal(t, "one", second[1].Parts[0].Text)
	assert.Equal(t, "second", second[2].Parts[0].Text)
}

func TestSendErrorAppendsNothing(t *testing.T) {
	g := &scriptedGenerator{err: errors.New("endpoint down")}
	a := NewAssistant(g)

	_, err := a.Send(context.Background(), "Hello")
	require.Error(t, err)
	assert.Empty(t, a.Transcript())
}
