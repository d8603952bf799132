package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged        EventType = "SlideChanged"
	EventTransitionCompleted EventType = "TransitionCompleted"
	EventAutoAdvanceStarted  EventType = "AutoAdvanceStarted"
	EventAutoAdvanceStopped  EventType = "AutoAdvanceStopped"
	EventNotificationShown   EventType = "NotificationShown"
	EventNotificationRemoved EventType = "NotificationRemoved"
	EventFullscreenChanged   EventType = "FullscreenChanged"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// Publisher is anything that accepts domain events
type Publisher interface {
	Publish(event DomainEvent)
}

// SlideChangedEvent is emitted when a transition has been accepted and the
// new slide is active
type SlideChangedEvent struct {
	From int
	To   int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// TransitionCompletedEvent is emitted when the transition lock is released
type TransitionCompletedEvent struct {
	Index int
}

func (e TransitionCompletedEvent) Type() EventType { return EventTransitionCompleted }

// AutoAdvanceStartedEvent is emitted when the auto-advance timer is armed
type AutoAdvanceStartedEvent struct {
	Interval time.Duration
}

func (e AutoAdvanceStartedEvent) Type() EventType { return EventAutoAdvanceStarted }

// StopReason explains why auto-advance stopped
type StopReason string

const (
	StopRequested StopReason = "requested"
	StopLastSlide StopReason = "last-slide"
	StopTeardown  StopReason = "teardown"
)

// AutoAdvanceStoppedEvent is emitted when a running auto-advance timer stops
type AutoAdvanceStoppedEvent struct {
	Reason StopReason
}

func (e AutoAdvanceStoppedEvent) Type() EventType { return EventAutoAdvanceStopped }

// NotificationShownEvent is emitted when a notification is created
type NotificationShownEvent struct {
	Notification Notification
}

func (e NotificationShownEvent) Type() EventType { return EventNotificationShown }

// NotificationRemovedEvent is emitted when a notification leaves the screen
type NotificationRemovedEvent struct {
	Notification Notification
	Evicted      bool // superseded by a newer notification
}

func (e NotificationRemovedEvent) Type() EventType { return EventNotificationRemoved }

// FullscreenChangedEvent is emitted when fullscreen mode toggles
type FullscreenChangedEvent struct {
	Active bool
}

func (e FullscreenChangedEvent) Type() EventType { return EventFullscreenChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
