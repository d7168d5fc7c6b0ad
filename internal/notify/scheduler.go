// Package notify provides best-effort local notifications.
//
// Scheduling is one-shot and fire-and-forget: once scheduled, a notification
// cannot be withdrawn, even if the task it reminds about is later completed
// or deleted. Without permission, every call silently no-ops.
package notify

import (
	"context"
	"sync"
	"time"

	"chronosdeck/internal/logging"
	"chronosdeck/internal/model"
)

// Sink delivers a notification to the user.
type Sink interface {
	Deliver(ctx context.Context, n *model.Notification) error
}

// Scheduler schedules one-shot local notifications.
type Scheduler struct {
	mu      sync.RWMutex
	sinks   []Sink
	granted bool

	// afterFunc is swapped in tests for deterministic timing.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewScheduler creates a scheduler delivering to the given sinks.
// Permission starts out denied.
func NewScheduler(sinks ...Sink) *Scheduler {
	return &Scheduler{
		sinks:     sinks,
		afterFunc: time.AfterFunc,
	}
}

// RequestPermission records the platform permission decision. Denied means
// all scheduling becomes a silent no-op.
func (s *Scheduler) RequestPermission(granted bool) {
	s.mu.Lock()
	s.granted = granted
	s.mu.Unlock()
}

// Granted returns true if permission was granted.
func (s *Scheduler) Granted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.granted
}

// ScheduleAt schedules a one-shot notification for the given absolute time.
// Times already in the past are clamped to immediate delivery. There is no
// way to cancel a scheduled notification.
func (s *Scheduler) ScheduleAt(n *model.Notification, when time.Time) {
	if !s.Granted() {
		return
	}

	delay := time.Until(when)
	if delay < 0 {
		delay = 0
	}

	s.afterFunc(delay, func() {
		s.deliver(n)
	})
}

// Notify delivers a notification immediately.
func (s *Scheduler) Notify(n *model.Notification) {
	if !s.Granted() {
		return
	}
	s.deliver(n)
}

func (s *Scheduler) deliver(n *model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.mu.RLock()
	sinks := s.sinks
	s.mu.RUnlock()

	for _, sink := range sinks {
		if err := sink.Deliver(ctx, n); err != nil {
			logging.Warn("notification delivery failed",
				logging.KeyError, err,
				"type", string(n.Type))
		}
	}
}
