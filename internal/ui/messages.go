package ui

import (
	"time"

	"slidedeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg drives the scheduler queue and frame based effects
type tickMsg time.Time

// outlinePagerMsg contains the result of the outline pager command
type outlinePagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
