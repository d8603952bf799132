package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModePresenting Mode = iota
	ModeHelp
)

// Action represents a command the session or model should execute
type Action interface {
	Type() string
}

// Navigation is implemented by actions that move between slides and are
// therefore ignored during a transition
type Navigation interface {
	IsNavigation() bool
}

// IsNavigation reports whether a is a gated navigation action
func IsNavigation(a Action) bool {
	n, ok := a.(Navigation)
	return ok && n.IsNavigation()
}

// HitKind is what a pointer position lands on
type HitKind int

const (
	HitNone HitKind = iota
	HitPrevious
	HitNext
	HitIndicator
	HitCTA
)

// Hit is the result of hit-testing a pointer position
type Hit struct {
	Kind  HitKind
	Index int // slide number for HitIndicator
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	IsTransitioning() bool
	HitTest(x, y int) Hit
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
