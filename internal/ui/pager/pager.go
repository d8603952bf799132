// Package pager shows long text in the ov pager while the TUI steps aside.
package pager

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/noborus/ov/oviewer"
)

// Terminal is the part of tea.Program the pager needs
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Pager runs ov on a released terminal
type Pager struct {
	term Terminal
	run  func(r io.Reader) error
}

// New creates a pager for term. A nil term is allowed and makes Show fail.
func New(term Terminal) *Pager {
	return &Pager{term: term, run: runOV}
}

// Show hands the terminal to ov until the user quits it
func (p *Pager) Show(content string) error {
	if p.term == nil {
		return errors.New("program not set")
	}

	if err := p.term.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to restore the screen before bubbletea redraws
		time.Sleep(100 * time.Millisecond)
		_ = p.term.RestoreTerminal()
	}()

	return p.run(strings.NewReader(content))
}

func runOV(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Nothing of ov's screen may leak into the presentation
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
