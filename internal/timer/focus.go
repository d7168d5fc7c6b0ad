// Package timer implements the focus timer state machine.
package timer

import (
	"sync"
	"time"

	"chronosdeck/internal/errors"
)

// Fixed cycle parameters. There is no configuration surface for these.
const (
	WorkSeconds  = 25 * 60
	BreakSeconds = 5 * 60

	// RecordedMinutes is the duration written into every session record.
	// This is a policy constant, not a measurement: pausing and resuming
	// never changes what gets recorded.
	RecordedMinutes = 25
)

// Phase is the current interval type.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

// String returns a display name for the phase.
func (p Phase) String() string {
	if p == PhaseBreak {
		return "BREAK"
	}
	return "WORK"
}

// Recorder persists a completed work interval.
type Recorder interface {
	RecordSession(subject string, minutes int, at time.Time) error
}

// Announcer schedules the completion notification for a finished work
// interval.
type Announcer interface {
	AnnounceComplete(subject string)
}

// State is a snapshot of the machine.
type State struct {
	Subject   string
	Phase     Phase
	Remaining int // seconds
	Running   bool
}

// Idle reports whether the machine is in the idle-equivalent state: a full
// work interval, not running, break flag cleared.
func (s State) Idle() bool {
	return !s.Running && s.Phase == PhaseWork && s.Remaining == WorkSeconds
}

// Focus is the work/break countdown machine. A completed work interval
// persists one session record and flips to a break; a completed break flips
// back to work and persists nothing. The countdown stops at each boundary
// and waits for the next Start.
type Focus struct {
	mu        sync.Mutex
	subject   string
	phase     Phase
	remaining int
	running   bool

	recorder  Recorder
	announcer Announcer
	now       func() time.Time
}

// NewFocus creates a focus timer in the idle state.
func NewFocus(recorder Recorder, announcer Announcer) *Focus {
	return &Focus{
		phase:     PhaseWork,
		remaining: WorkSeconds,
		recorder:  recorder,
		announcer: announcer,
		now:       time.Now,
	}
}

// Start begins (or resumes) the countdown. A subject must be selected; an
// empty subject leaves the machine idle and returns ErrSubjectRequired.
func (f *Focus) Start(subject string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if subject != "" {
		f.subject = subject
	}
	if f.subject == "" {
		return errors.ErrSubjectRequired
	}

	f.running = true
	return nil
}

// Pause freezes the countdown without changing the phase or remaining time.
func (f *Focus) Pause() {
	f.mu.Lock()
	f.running = false
	f.mu.Unlock()
}

// Reset forces the idle-equivalent state regardless of the current one: a
// full work interval, stopped, break flag cleared.
func (f *Focus) Reset() {
	f.mu.Lock()
	f.phase = PhaseWork
	f.remaining = WorkSeconds
	f.running = false
	f.mu.Unlock()
}

// Tick advances the countdown by one second. When a work interval reaches
// zero it records a session with the constant duration, announces
// completion, and flips to a stopped break; a finished break flips back to
// a stopped work interval with no record. The returned error is the
// recorder's, surfaced to the caller.
func (f *Focus) Tick() error {
	f.mu.Lock()

	if !f.running {
		f.mu.Unlock()
		return nil
	}

	f.remaining--
	if f.remaining > 0 {
		f.mu.Unlock()
		return nil
	}

	f.running = false
	finishedWork := f.phase == PhaseWork
	subject := f.subject
	if finishedWork {
		f.phase = PhaseBreak
		f.remaining = BreakSeconds
	} else {
		f.phase = PhaseWork
		f.remaining = WorkSeconds
	}
	now := f.now()
	f.mu.Unlock()

	if !finishedWork {
		return nil
	}

	err := f.recorder.RecordSession(subject, RecordedMinutes, now)
	if f.announcer != nil {
		f.announcer.AnnounceComplete(subject)
	}
	return err
}

// State returns a snapshot of the machine.
func (f *Focus) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Subject:   f.subject,
		Phase:     f.phase,
		Remaining: f.remaining,
		Running:   f.running,
	}
}
