package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidedeck/internal/config"
	"slidedeck/internal/domain"
	"slidedeck/internal/fullscreen"
	"slidedeck/internal/scheduler"
	"slidedeck/internal/session"
)

func newTestModel(t *testing.T) (*Model, *session.Session, *scheduler.Virtual) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.ShowWelcome = false
	v := scheduler.NewVirtual()
	s, err := session.New(session.Options{
		Config:     cfg,
		Queue:      v.Queue,
		Fullscreen: fullscreen.NewAltScreenWithProbe(func() bool { return true }, nil),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	s.Start()

	m := NewModel(s, nil)
	m.now = v.Now
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, s, v
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestKeyNavigation(t *testing.T) {
	m, s, v := newTestModel(t)

	m.Update(key(tea.KeyRight))
	assert.Equal(t, 2, s.Navigator.Current())

	// Locked during the transition
	m.Update(key(tea.KeyRight))
	assert.Equal(t, 2, s.Navigator.Current())

	v.Advance(600 * time.Millisecond)
	m.Update(key(tea.KeyEnd))
	assert.Equal(t, 8, s.Navigator.Current())
	assert.Contains(t, m.View(), "8 / 8")
}

func TestTickRunsScheduler(t *testing.T) {
	m, s, v := newTestModel(t)
	m.Update(key(tea.KeyRight))
	require.True(t, s.Navigator.IsTransitioning())

	v.Clock().Set(v.Now().Add(600 * time.Millisecond))
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick loop continues")
	assert.False(t, s.Navigator.IsTransitioning())
}

func TestTickStopsInPagerMode(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Update(pauseRenderingMsg{})
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Empty(t, m.View())

	_, cmd = m.Update(resumeRenderingMsg{})
	assert.NotNil(t, cmd)
}

func TestHelpToggle(t *testing.T) {
	m, s, _ := newTestModel(t)
	m.Update(runes("?"))
	assert.True(t, s.State.ShowHelp)
	assert.Contains(t, m.View(), "Keyboard shortcuts")

	m.Update(key(tea.KeyEsc))
	assert.False(t, s.State.ShowHelp)
}

func TestFullscreenEmitsAltScreenCommand(t *testing.T) {
	m, s, _ := newTestModel(t)
	_, cmd := m.Update(runes("f"))
	require.NotNil(t, cmd)
	assert.True(t, s.Fullscreen.IsActive())
	assert.Contains(t, m.View(), "Entered fullscreen mode")
}

func TestIndicatorClick(t *testing.T) {
	m, s, _ := newTestModel(t)
	m.View()
	dot := m.renderer.Layout().Indicators[4]

	press := tea.MouseMsg{X: dot.X, Y: dot.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: dot.X, Y: dot.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m.Update(press)
	m.Update(release)
	assert.Equal(t, 5, s.Navigator.Current())
}

func TestSwipe(t *testing.T) {
	m, s, v := newTestModel(t)

	m.Update(tea.MouseMsg{X: 50, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	v.Clock().Set(v.Now().Add(200 * time.Millisecond))
	m.Update(tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, 2, s.Navigator.Current())
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOutlineWithoutProgramSetsStatus(t *testing.T) {
	m, s, v := newTestModel(t)
	m.Update(runes("o"))
	assert.Equal(t, "Outline unavailable", s.State.StatusMessage)

	v.Advance(statusTimeout)
	assert.Empty(t, s.State.StatusMessage)
}

func TestErrorEventShowsStatus(t *testing.T) {
	m, s, _ := newTestModel(t)
	m.Update(EventMsg{Event: domain.ErrorEvent{Message: "slide 9 missing", Err: errors.New("x")}})
	assert.Equal(t, "⚠ slide 9 missing", s.State.StatusMessage)
	assert.Contains(t, m.View(), "slide 9 missing")
}

func TestViewBeforeResize(t *testing.T) {
	cfg := config.DefaultConfig()
	s, err := session.New(session.Options{
		Config:     cfg,
		Queue:      scheduler.NewVirtual().Queue,
		Fullscreen: fullscreen.NewAltScreenWithProbe(nil, nil),
	})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "Loading...", NewModel(s, nil).View())
}
