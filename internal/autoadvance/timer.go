// Package autoadvance periodically moves the presentation forward.
package autoadvance

import (
	"time"

	"go.uber.org/zap"

	"slidedeck/internal/domain"
	"slidedeck/internal/scheduler"
)

// DefaultInterval between automatic advances
const DefaultInterval = 8000 * time.Millisecond

// Target is the navigation surface the timer drives
type Target interface {
	Next() bool
	Status() domain.Status
}

// Timer is a restartable repeating advance. It stops as soon as the last
// slide is reached and never wraps around.
type Timer struct {
	sched    scheduler.Scheduler
	target   Target
	handle   scheduler.Handle
	interval time.Duration
	log      *zap.Logger
	bus      domain.Publisher
}

// New creates a stopped timer
func New(sched scheduler.Scheduler, target Target, log *zap.Logger, bus domain.Publisher) *Timer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Timer{sched: sched, target: target, log: log.Named("autoadvance"), bus: bus}
}

// Start cancels any running timer and arms a new one
func (t *Timer) Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t.cancel()
	t.interval = interval
	t.handle = t.sched.Every(interval, t.fire)
	t.log.Info("auto-advance started", zap.Duration("interval", interval))
	t.publish(domain.AutoAdvanceStartedEvent{Interval: interval})
}

func (t *Timer) fire() {
	st := t.target.Status()
	if st.Current >= st.Total {
		t.stop(domain.StopLastSlide)
		return
	}
	t.target.Next()
	if after := t.target.Status(); after.Current >= after.Total {
		t.stop(domain.StopLastSlide)
	}
}

// Stop cancels the timer. Safe to call when nothing is running.
func (t *Timer) Stop() {
	t.stop(domain.StopRequested)
}

// Close stops the timer as part of session teardown
func (t *Timer) Close() {
	t.stop(domain.StopTeardown)
}

func (t *Timer) stop(reason domain.StopReason) {
	if !t.cancel() {
		return
	}
	t.log.Info("auto-advance stopped", zap.String("reason", string(reason)))
	t.publish(domain.AutoAdvanceStoppedEvent{Reason: reason})
}

func (t *Timer) cancel() bool {
	if t.handle == 0 {
		return false
	}
	t.sched.Cancel(t.handle)
	t.handle = 0
	return true
}

// Running reports whether the timer is armed
func (t *Timer) Running() bool {
	return t.handle != 0
}

// Interval returns the interval of the running timer
func (t *Timer) Interval() time.Duration {
	return t.interval
}

func (t *Timer) publish(e domain.DomainEvent) {
	if t.bus != nil {
		t.bus.Publish(e)
	}
}
