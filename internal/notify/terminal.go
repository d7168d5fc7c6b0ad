package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"chronosdeck/internal/model"
)

// TerminalSink prints notifications to the terminal with a bell.
type TerminalSink struct {
	Writer io.Writer
	Bell   bool
}

// NewTerminalSink creates a sink writing to stderr.
func NewTerminalSink() *TerminalSink {
	return &TerminalSink{Writer: os.Stderr, Bell: true}
}

// Deliver prints the notification.
func (t *TerminalSink) Deliver(ctx context.Context, n *model.Notification) error {
	if t.Bell {
		fmt.Fprint(t.Writer, "\a")
	}
	_, err := fmt.Fprintf(t.Writer, "\n[%s] %s\n", n.Title, n.Body)
	return err
}
