package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/ui/input/types"
)

// Bindings is the subset of the key map the modes need
type Bindings struct {
	Previous, Next, First, Last key.Binding
	GlobalFirst, GlobalLast     key.Binding
	Stop, Fullscreen            key.Binding
	AutoAdvance, CTA, Dismiss   key.Binding
	Help, Outline               key.Binding
	Quit, ForceQuit             key.Binding
}

// PresentingMode maps keys while a slide is on screen
type PresentingMode struct {
	keys Bindings
}

func NewPresentingMode(keys Bindings) *PresentingMode {
	return &PresentingMode{keys: keys}
}

func (m *PresentingMode) Name() string {
	return "presenting"
}

func (m *PresentingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	// Modifier shortcuts work regardless of what else is going on
	case key.Matches(msg, k.GlobalFirst):
		return []types.Action{types.JumpAction{Direction: types.DirectionFirst}}, true
	case key.Matches(msg, k.GlobalLast):
		return []types.Action{types.JumpAction{Direction: types.DirectionLast}}, true

	case key.Matches(msg, k.Previous):
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrevious}}, true
	case key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext}}, true
	case key.Matches(msg, k.First):
		return []types.Action{types.NavigateAction{Direction: types.DirectionFirst}}, true
	case key.Matches(msg, k.Last):
		return []types.Action{types.NavigateAction{Direction: types.DirectionLast}}, true

	case key.Matches(msg, k.Stop):
		return []types.Action{types.StopAction{}}, true
	case key.Matches(msg, k.Fullscreen):
		return []types.Action{types.ToggleFullscreenAction{}}, true
	case key.Matches(msg, k.AutoAdvance):
		return []types.Action{types.StartAutoAdvanceAction{}}, true
	case key.Matches(msg, k.CTA):
		return []types.Action{types.TriggerCTAAction{}}, true
	case key.Matches(msg, k.Dismiss):
		return []types.Action{types.DismissNotificationAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	case key.Matches(msg, k.Outline):
		return []types.Action{types.OpenOutlineAction{}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	return nil, false
}
