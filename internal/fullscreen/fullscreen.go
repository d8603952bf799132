// Package fullscreen maps presentation fullscreen onto the terminal's
// alternate screen buffer.
package fullscreen

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// ErrUnsupported is returned by Enter when the output is not a terminal
var ErrUnsupported = errors.New("fullscreen not supported")

// Provider enters and leaves fullscreen
type Provider interface {
	Enter() error
	Exit()
	IsActive() bool
}

// AltScreen is a Provider backed by bubbletea's alternate screen. Enter and
// Exit queue the terminal commands; the program model drains them after
// each update.
type AltScreen struct {
	probe   func() bool
	active  bool
	pending []tea.Cmd
	log     *zap.Logger
}

// NewAltScreen creates a provider that requires out to be a terminal
func NewAltScreen(out *os.File, log *zap.Logger) *AltScreen {
	fd := out.Fd()
	return NewAltScreenWithProbe(func() bool {
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}, log)
}

// NewAltScreenWithProbe creates a provider with a custom capability check
func NewAltScreenWithProbe(probe func() bool, log *zap.Logger) *AltScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &AltScreen{probe: probe, log: log}
}

// Enter switches to the alternate screen
func (a *AltScreen) Enter() error {
	if a.active {
		return nil
	}
	if a.probe == nil || !a.probe() {
		a.log.Warn("fullscreen requested on a non-terminal output")
		return ErrUnsupported
	}
	a.active = true
	a.pending = append(a.pending, tea.EnterAltScreen)
	a.log.Debug("entered fullscreen")
	return nil
}

// Exit returns to the normal screen. It is a no-op when not active.
func (a *AltScreen) Exit() {
	if !a.active {
		return
	}
	a.active = false
	a.pending = append(a.pending, tea.ExitAltScreen)
	a.log.Debug("exited fullscreen")
}

// IsActive reports whether the alternate screen is in use
func (a *AltScreen) IsActive() bool {
	return a.active
}

// Drain returns and clears the queued terminal commands
func (a *AltScreen) Drain() []tea.Cmd {
	cmds := a.pending
	a.pending = nil
	return cmds
}
