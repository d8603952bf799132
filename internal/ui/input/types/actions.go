package types

// Navigation directions
const (
	DirectionPrevious = "previous"
	DirectionNext     = "next"
	DirectionFirst    = "first"
	DirectionLast     = "last"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "previous", "next", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// IsNavigation marks actions that are dropped while a transition runs
func (a NavigateAction) IsNavigation() bool { return true }

// JumpAction is the global first/last shortcut. Only the navigator's own
// guard applies to it.
type JumpAction struct {
	Direction string // "first" or "last"
}

func (a JumpAction) Type() string { return "jump" }

type GoToAction struct {
	Index int // 1-based
}

func (a GoToAction) Type() string { return "go_to" }

// Auto-advance actions
type StartAutoAdvanceAction struct{}

func (a StartAutoAdvanceAction) Type() string { return "start_auto_advance" }

// StopAction stops auto-advance and leaves fullscreen
type StopAction struct{}

func (a StopAction) Type() string { return "stop" }

// Presentation chrome actions
type ToggleFullscreenAction struct{}

func (a ToggleFullscreenAction) Type() string { return "toggle_fullscreen" }

type TriggerCTAAction struct{}

func (a TriggerCTAAction) Type() string { return "trigger_cta" }

type DismissNotificationAction struct{}

func (a DismissNotificationAction) Type() string { return "dismiss_notification" }

type OpenOutlineAction struct{}

func (a OpenOutlineAction) Type() string { return "open_outline" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }
