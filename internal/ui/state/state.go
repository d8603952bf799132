package state

import (
	"math"

	"slidedeck/internal/navigator"
)

// AppState contains the UI state the renderer draws from
type AppState struct {
	// Navigation widgets, written through the UISync methods
	ActiveIndicator int
	PrevEnabled     bool
	NextEnabled     bool
	Progress        float64 // percent, 0..100

	// Overlay and chrome
	ShowHelp        bool
	AutoAdvancing   bool
	Fullscreen      bool
	StatusMessage   string
	RenderingPaused bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ActiveIndicator: 1,
		NextEnabled:     true,
	}
}

// SetActiveIndicator marks the dot for index as current
func (s *AppState) SetActiveIndicator(index int) {
	s.ActiveIndicator = index
}

// SetButtonEnabled toggles the previous/next buttons
func (s *AppState) SetButtonEnabled(name navigator.Button, enabled bool) {
	switch name {
	case navigator.ButtonPrevious:
		s.PrevEnabled = enabled
	case navigator.ButtonNext:
		s.NextEnabled = enabled
	}
}

// SetProgress stores the progress percentage clamped to 0..100
func (s *AppState) SetProgress(percent float64) {
	s.Progress = math.Max(0, math.Min(100, percent))
}

// ProgressRounded returns the progress rounded to a whole percent
func (s *AppState) ProgressRounded() int {
	return int(math.Round(s.Progress))
}
