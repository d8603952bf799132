package input

import "slidedeck/internal/ui/input/types"

// ModelContext implements types.Context from plain functions
type ModelContext struct {
	Transitioning func() bool
	Hit           func(x, y int) types.Hit
}

// IsTransitioning reports whether the navigator holds its transition lock
func (c ModelContext) IsTransitioning() bool {
	return c.Transitioning != nil && c.Transitioning()
}

// HitTest resolves a cell position to a clickable element
func (c ModelContext) HitTest(x, y int) types.Hit {
	if c.Hit == nil {
		return types.Hit{}
	}
	return c.Hit(x, y)
}
