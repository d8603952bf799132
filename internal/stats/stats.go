// Package stats counts what happened during a presentation session.
package stats

import (
	"time"

	"go.uber.org/atomic"

	"slidedeck/internal/domain"
	"slidedeck/internal/eventbus"
)

// Recorder tallies domain events. Bus handlers run on their own goroutines,
// so every counter is atomic.
type Recorder struct {
	startedAt     time.Time
	transitions   atomic.Int64
	visits        []atomic.Int64
	notifications atomic.Int64
	evictions     atomic.Int64
	autoRuns      atomic.Int64
	fullscreen    atomic.Int64
	errors        atomic.Int64
	lastSlide     atomic.Int32

	unsubscribe []func()
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Elapsed         time.Duration
	Transitions     int64
	Visits          []int64 // index 0 is slide 1
	Notifications   int64
	Evictions       int64
	AutoAdvanceRuns int64
	FullscreenUses  int64
	Errors          int64
	LastSlide       int
}

// New creates a recorder for a deck of total slides. Slide 1 counts as
// visited from the start.
func New(total int, now time.Time) *Recorder {
	r := &Recorder{startedAt: now, visits: make([]atomic.Int64, total)}
	if total > 0 {
		r.visits[0].Store(1)
		r.lastSlide.Store(1)
	}
	return r
}

// Attach subscribes the recorder to bus
func (r *Recorder) Attach(bus eventbus.EventBus) {
	for _, t := range []domain.EventType{
		domain.EventSlideChanged,
		domain.EventNotificationShown,
		domain.EventNotificationRemoved,
		domain.EventAutoAdvanceStarted,
		domain.EventFullscreenChanged,
		domain.EventError,
	} {
		r.unsubscribe = append(r.unsubscribe, bus.Subscribe(t, r.Record))
	}
}

// Detach removes every subscription made by Attach
func (r *Recorder) Detach() {
	for _, unsub := range r.unsubscribe {
		unsub()
	}
	r.unsubscribe = nil
}

// Record counts a single event
func (r *Recorder) Record(e domain.DomainEvent) {
	switch ev := e.(type) {
	case domain.SlideChangedEvent:
		r.transitions.Inc()
		if ev.To >= 1 && ev.To <= len(r.visits) {
			r.visits[ev.To-1].Inc()
		}
		r.lastSlide.Store(int32(ev.To))
	case domain.NotificationShownEvent:
		r.notifications.Inc()
	case domain.NotificationRemovedEvent:
		if ev.Evicted {
			r.evictions.Inc()
		}
	case domain.AutoAdvanceStartedEvent:
		r.autoRuns.Inc()
	case domain.FullscreenChangedEvent:
		if ev.Active {
			r.fullscreen.Inc()
		}
	case domain.ErrorEvent:
		r.errors.Inc()
	}
}

// Snapshot copies the counters
func (r *Recorder) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		Elapsed:         now.Sub(r.startedAt),
		Transitions:     r.transitions.Load(),
		Visits:          make([]int64, len(r.visits)),
		Notifications:   r.notifications.Load(),
		Evictions:       r.evictions.Load(),
		AutoAdvanceRuns: r.autoRuns.Load(),
		FullscreenUses:  r.fullscreen.Load(),
		Errors:          r.errors.Load(),
		LastSlide:       int(r.lastSlide.Load()),
	}
	for i := range r.visits {
		s.Visits[i] = r.visits[i].Load()
	}
	return s
}
