package navigator

import (
	"time"

	"go.uber.org/zap"

	"slidedeck/internal/animation"
	"slidedeck/internal/deck"
	"slidedeck/internal/domain"
)

// Button names a navigation button whose enablement follows the current slide
type Button string

const (
	ButtonPrevious Button = "previous"
	ButtonNext     Button = "next"
)

// SlideRegistry resolves slides and toggles the current flag
type SlideRegistry interface {
	Resolve(index int) (*deck.Slide, error)
	Activate(s *deck.Slide)
	Deactivate(s *deck.Slide)
}

// UISync reflects navigator state into on-screen widgets
type UISync interface {
	SetActiveIndicator(index int)
	SetButtonEnabled(name Button, enabled bool)
	SetProgress(percent float64)
}

// AnimationTrigger plays and cancels per-slide animation batches
type AnimationTrigger interface {
	Fire(index int) animation.Handle
	Cancel(h animation.Handle)
}

// Defaults matching the visual transition of the reference deck
const (
	DefaultTransitionDuration    = 600 * time.Millisecond
	DefaultInitialAnimationDelay = 500 * time.Millisecond
)

// Options tunes a Navigator. Zero values select the defaults.
type Options struct {
	TransitionDuration    time.Duration
	InitialAnimationDelay time.Duration
	Logger                *zap.Logger
	Publisher             domain.Publisher
}
