// Package animation plays a slide's declarative (delay, effect) sequence as a
// batch of deferred tasks that can be cancelled as a unit.
package animation

import (
	"slidedeck/internal/deck"
	"slidedeck/internal/scheduler"
)

// Handle identifies a fired batch. The zero Handle means nothing was scheduled.
type Handle uint64

// SlideSource resolves slides by 1-based index
type SlideSource interface {
	Resolve(index int) (*deck.Slide, error)
}

type batch struct {
	tasks     []scheduler.Handle
	remaining int
}

// Trigger schedules per-slide animation batches
type Trigger struct {
	sched   scheduler.Scheduler
	slides  SlideSource
	batches map[Handle]*batch
	next    Handle
}

// NewTrigger creates a trigger scheduling on sched
func NewTrigger(sched scheduler.Scheduler, slides SlideSource) *Trigger {
	return &Trigger{
		sched:   sched,
		slides:  slides,
		batches: make(map[Handle]*batch),
	}
}

// Fire schedules the animation sequence of slide index. Unknown slides and
// empty sequences yield the zero Handle.
func (t *Trigger) Fire(index int) Handle {
	slide, err := t.slides.Resolve(index)
	if err != nil || len(slide.Animations) == 0 {
		return 0
	}

	t.next++
	h := t.next
	b := &batch{remaining: len(slide.Animations)}
	t.batches[h] = b

	for _, step := range slide.Animations {
		step := step
		b.tasks = append(b.tasks, t.sched.After(step.Delay, func() {
			Apply(slide, step)
			b.remaining--
			if b.remaining == 0 {
				delete(t.batches, h)
			}
		}))
	}
	return h
}

// Cancel discards every step of the batch that has not fired yet
func (t *Trigger) Cancel(h Handle) {
	b, ok := t.batches[h]
	if !ok {
		return
	}
	delete(t.batches, h)
	for _, task := range b.tasks {
		t.sched.Cancel(task)
	}
}

// Pending returns how many steps of h are still scheduled
func (t *Trigger) Pending(h Handle) int {
	if b, ok := t.batches[h]; ok {
		return b.remaining
	}
	return 0
}

// Apply performs one step on its slide. A missing widget is ignored.
func Apply(slide *deck.Slide, step deck.AnimationStep) {
	w, ok := slide.Widget(step.Target)
	if !ok {
		return
	}
	switch step.Effect {
	case deck.EffectReveal:
		w.State.Revealed = true
	case deck.EffectFill:
		w.State.Revealed = true
		w.State.Fill = clamp(step.Value, 0, 100)
	case deck.EffectPulse:
		w.State.Pulsing = true
	case deck.EffectFloat:
		w.State.Floating = true
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
