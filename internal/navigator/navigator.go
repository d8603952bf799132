// Package navigator owns which slide is current and the transition lock.
//
// A Navigator is either Idle or Transitioning. An accepted request swaps the
// active slide, updates the index and syncs the UI before it returns; the
// lock is released by a completion task one transition duration later,
// which is also when the new slide's animations start. Requests that arrive
// while Transitioning are dropped, never queued.
package navigator

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"slidedeck/internal/animation"
	"slidedeck/internal/deck"
	"slidedeck/internal/domain"
	"slidedeck/internal/scheduler"
)

// Navigator is the slide navigation state machine
type Navigator struct {
	total         int
	current       int
	transitioning bool
	active        *deck.Slide

	pendingAnimation animation.Handle
	pendingStart     scheduler.Handle
	completion       scheduler.Handle

	registry SlideRegistry
	ui       UISync
	anim     AnimationTrigger
	sched    scheduler.Scheduler

	transitionDuration time.Duration
	initialDelay       time.Duration
	log                *zap.Logger
	bus                domain.Publisher
}

// New creates a navigator over total slides, positioned on slide 1
func New(total int, registry SlideRegistry, ui UISync, anim AnimationTrigger, sched scheduler.Scheduler, opts Options) (*Navigator, error) {
	if total < 1 {
		return nil, errors.New("navigator needs at least one slide")
	}
	if opts.TransitionDuration <= 0 {
		opts.TransitionDuration = DefaultTransitionDuration
	}
	if opts.InitialAnimationDelay <= 0 {
		opts.InitialAnimationDelay = DefaultInitialAnimationDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Navigator{
		total:              total,
		current:            1,
		registry:           registry,
		ui:                 ui,
		anim:               anim,
		sched:              sched,
		transitionDuration: opts.TransitionDuration,
		initialDelay:       opts.InitialAnimationDelay,
		log:                opts.Logger.Named("navigator"),
		bus:                opts.Publisher,
	}, nil
}

// Start activates slide 1, syncs the UI and schedules its animations
func (n *Navigator) Start() {
	slide, err := n.registry.Resolve(n.current)
	if err != nil {
		n.log.Error("initial slide not found", zap.Int("index", n.current), zap.Error(err))
		return
	}
	n.registry.Activate(slide)
	n.active = slide
	n.syncUI()

	n.pendingStart = n.sched.After(n.initialDelay, func() {
		n.pendingStart = 0
		n.pendingAnimation = n.anim.Fire(n.current)
	})
}

// RequestGoTo starts a transition to target. Out of range, redundant and
// concurrent requests are ignored; the result reports acceptance.
func (n *Navigator) RequestGoTo(target int) bool {
	if target < 1 || target > n.total || target == n.current || n.transitioning {
		return false
	}

	n.transitioning = true
	n.cancelPendingAnimation()

	slide, err := n.registry.Resolve(target)
	if err != nil {
		n.log.Error("slide not found, transition aborted", zap.Int("target", target), zap.Error(err))
		n.publish(domain.ErrorEvent{Message: "slide not found", Err: err})
		n.transitioning = false
		return false
	}

	from := n.current
	n.registry.Deactivate(n.active)
	n.registry.Activate(slide)
	n.active = slide
	n.current = target
	n.syncUI()

	n.log.Debug("transition started", zap.Int("from", from), zap.Int("to", target))
	n.publish(domain.SlideChangedEvent{From: from, To: target})

	n.completion = n.sched.After(n.transitionDuration, n.complete)
	return true
}

func (n *Navigator) complete() {
	n.completion = 0
	n.transitioning = false
	n.pendingAnimation = n.anim.Fire(n.current)
	n.publish(domain.TransitionCompletedEvent{Index: n.current})
}

// Next moves forward one slide unless already on the last
func (n *Navigator) Next() bool {
	if n.current < n.total {
		return n.RequestGoTo(n.current + 1)
	}
	return false
}

// Previous moves back one slide unless already on the first
func (n *Navigator) Previous() bool {
	if n.current > 1 {
		return n.RequestGoTo(n.current - 1)
	}
	return false
}

// First jumps to slide 1
func (n *Navigator) First() bool {
	return n.RequestGoTo(1)
}

// Last jumps to the final slide
func (n *Navigator) Last() bool {
	return n.RequestGoTo(n.total)
}

// Status returns a snapshot. Safe to call mid-transition.
func (n *Navigator) Status() domain.Status {
	return domain.Status{
		Current:         n.current,
		Total:           n.total,
		IsFirst:         n.current == 1,
		IsLast:          n.current == n.total,
		ProgressPercent: n.progress(),
	}
}

// Current returns the current 1-based slide index
func (n *Navigator) Current() int {
	return n.current
}

// Total returns the number of slides
func (n *Navigator) Total() int {
	return n.total
}

// IsTransitioning reports whether the transition lock is held
func (n *Navigator) IsTransitioning() bool {
	return n.transitioning
}

// Close cancels every deferred task the navigator owns
func (n *Navigator) Close() {
	n.cancelPendingAnimation()
	if n.completion != 0 {
		n.sched.Cancel(n.completion)
		n.completion = 0
	}
	n.transitioning = false
}

func (n *Navigator) cancelPendingAnimation() {
	if n.pendingStart != 0 {
		n.sched.Cancel(n.pendingStart)
		n.pendingStart = 0
	}
	if n.pendingAnimation != 0 {
		n.anim.Cancel(n.pendingAnimation)
		n.pendingAnimation = 0
	}
}

func (n *Navigator) syncUI() {
	n.ui.SetActiveIndicator(n.current)
	n.ui.SetButtonEnabled(ButtonPrevious, n.current > 1)
	n.ui.SetButtonEnabled(ButtonNext, n.current < n.total)
	n.ui.SetProgress(n.progress())
}

func (n *Navigator) progress() float64 {
	return float64(n.current) / float64(n.total) * 100
}

func (n *Navigator) publish(e domain.DomainEvent) {
	if n.bus != nil {
		n.bus.Publish(e)
	}
}
