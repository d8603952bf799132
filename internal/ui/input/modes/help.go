package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/ui/input/types"
)

// HelpMode is active while the full help overlay is open. Keys it does not
// consume fall through to the presenting mode.
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "?", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePresenting}}, true
	}
	return nil, false
}
