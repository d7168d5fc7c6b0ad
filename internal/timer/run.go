package timer

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"chronosdeck/internal/logging"
)

// Runner drives a Focus machine at one tick per second with a countdown
// display and keyboard controls.
type Runner struct {
	focus   *Focus
	display *Display

	pauseCh chan struct{}
	resetCh chan struct{}
	quitCh  chan struct{}
}

// NewRunner creates a runner for the given machine.
func NewRunner(focus *Focus) *Runner {
	return &Runner{
		focus:   focus,
		display: NewDisplay(),
		pauseCh: make(chan struct{}, 1),
		resetCh: make(chan struct{}, 1),
		quitCh:  make(chan struct{}, 1),
	}
}

// Run starts the countdown for the given subject and blocks until the user
// quits. Tick errors (a failed session write) are surfaced when the run
// ends.
func (r *Runner) Run(ctx context.Context, subject string) error {
	if err := r.focus.Start(subject); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Raw terminal mode for single-key controls.
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err == nil {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
		go r.listenKeyboard(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var tickErr error
	r.render()

	for {
		select {
		case <-ctx.Done():
			return tickErr

		case <-sigCh:
			return tickErr

		case <-r.quitCh:
			return tickErr

		case <-r.pauseCh:
			if r.focus.State().Running {
				r.focus.Pause()
			} else if err := r.focus.Start(""); err != nil {
				return err
			}
			r.render()

		case <-r.resetCh:
			r.focus.Reset()
			r.render()

		case <-ticker.C:
			if err := r.focus.Tick(); err != nil {
				// Keep counting; report the failed write when we stop.
				logging.Error("failed to record session", logging.KeyError, err)
				tickErr = err
			}
			r.render()
		}
	}
}

func (r *Runner) render() {
	r.display.MoveCursorHome()
	r.display.ClearScreen()
	os.Stdout.WriteString(r.display.Render(r.focus.State()))
}

// listenKeyboard listens for keyboard input.
func (r *Runner) listenKeyboard(ctx context.Context) {
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			os.Stdin.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}

			switch buf[0] {
			case ' ': // Space - pause/resume
				select {
				case r.pauseCh <- struct{}{}:
				default:
				}
			case 'r', 'R':
				select {
				case r.resetCh <- struct{}{}:
				default:
				}
			case 'q', 'Q', 3: // Q or Ctrl+C
				select {
				case r.quitCh <- struct{}{}:
				default:
				}
			}
		}
	}
}
