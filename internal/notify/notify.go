// Package notify shows at most one transient notification at a time.
package notify

import (
	"time"

	"go.uber.org/zap"

	"slidedeck/internal/domain"
	"slidedeck/internal/scheduler"
)

// Phase is where a toast is in its lifecycle
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseVisible
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Toast is the notification currently on screen
type Toast struct {
	ID uint64
	domain.Notification
	Phase   Phase
	ShownAt time.Time
}

// Defaults from the reference presentation
const (
	DefaultDuration      = 4000 * time.Millisecond
	DefaultEnterDuration = 100 * time.Millisecond
	DefaultExitDuration  = 400 * time.Millisecond
)

// Options tunes a Notifier. Zero durations select the defaults.
type Options struct {
	Duration      time.Duration
	EnterDuration time.Duration
	ExitDuration  time.Duration
	Logger        *zap.Logger
	Publisher     domain.Publisher
}

// Notifier owns the single notification slot
type Notifier struct {
	sched   scheduler.Scheduler
	opts    Options
	log     *zap.Logger
	current *Toast
	tasks   []scheduler.Handle
	nextID  uint64
}

// New creates a notifier scheduling on sched
func New(sched scheduler.Scheduler, opts Options) *Notifier {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.EnterDuration <= 0 {
		opts.EnterDuration = DefaultEnterDuration
	}
	if opts.ExitDuration <= 0 {
		opts.ExitDuration = DefaultExitDuration
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Notifier{sched: sched, opts: opts, log: opts.Logger.Named("notify")}
}

// Show replaces whatever is on screen with a new notification. The evicted
// one disappears immediately and its pending dismissal never fires.
func (n *Notifier) Show(message string, kind domain.NotificationKind) {
	if n.current != nil {
		evicted := n.current.Notification
		n.cancelTasks()
		n.current = nil
		n.publish(domain.NotificationRemovedEvent{Notification: evicted, Evicted: true})
	}

	n.nextID++
	t := &Toast{
		ID:           n.nextID,
		Notification: domain.Notification{Message: message, Kind: kind},
		Phase:        PhaseEntering,
		ShownAt:      n.sched.Now(),
	}
	n.current = t
	n.log.Debug("notification shown", zap.String("message", message), zap.String("kind", string(kind)))
	n.publish(domain.NotificationShownEvent{Notification: t.Notification})

	n.tasks = append(n.tasks,
		n.sched.After(n.opts.EnterDuration, func() {
			if n.current == t && t.Phase == PhaseEntering {
				t.Phase = PhaseVisible
			}
		}),
		n.sched.After(n.opts.Duration, func() {
			if n.current == t {
				n.beginExit(t)
			}
		}),
	)
}

// ShowNotification is Show for a prepared value
func (n *Notifier) ShowNotification(note domain.Notification) {
	n.Show(note.Message, note.Kind)
}

// Dismiss starts the exit of the current notification early
func (n *Notifier) Dismiss() {
	t := n.current
	if t == nil || t.Phase == PhaseExiting {
		return
	}
	n.cancelTasks()
	n.beginExit(t)
}

func (n *Notifier) beginExit(t *Toast) {
	t.Phase = PhaseExiting
	n.tasks = append(n.tasks[:0], n.sched.After(n.opts.ExitDuration, func() {
		if n.current == t {
			n.current = nil
			n.tasks = n.tasks[:0]
			n.publish(domain.NotificationRemovedEvent{Notification: t.Notification})
		}
	}))
}

// Current returns the toast on screen, if any
func (n *Notifier) Current() (Toast, bool) {
	if n.current == nil {
		return Toast{}, false
	}
	return *n.current, true
}

// Close removes the current notification and its timers
func (n *Notifier) Close() {
	n.cancelTasks()
	n.current = nil
}

func (n *Notifier) cancelTasks() {
	for _, h := range n.tasks {
		n.sched.Cancel(h)
	}
	n.tasks = n.tasks[:0]
}

func (n *Notifier) publish(e domain.DomainEvent) {
	if n.opts.Publisher != nil {
		n.opts.Publisher.Publish(e)
	}
}
