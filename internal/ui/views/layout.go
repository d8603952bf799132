package views

import "slidedeck/internal/ui/input/types"

// Footer buttons and indicator sizes, in cells
const (
	buttonWidth    = 8 // "[◀ Prev]" and "[Next ▶]"
	footerGap      = 2
	indicatorWidth = 2 // dot plus trailing space
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout records where the clickable elements were drawn
type Layout struct {
	Prev       Rect
	Next       Rect
	Indicators []Rect // index 0 is slide 1
	CTA        Rect
	HasCTA     bool
}

// FooterLayout centres the navigation row of a deck of total slides
func FooterLayout(width, row, total int) Layout {
	rowWidth := 2*buttonWidth + 2*footerGap + total*indicatorWidth
	x := (width - rowWidth) / 2
	if x < 0 {
		x = 0
	}

	l := Layout{Prev: Rect{X: x, Y: row, W: buttonWidth, H: 1}}
	x += buttonWidth + footerGap
	for i := 0; i < total; i++ {
		l.Indicators = append(l.Indicators, Rect{X: x, Y: row, W: indicatorWidth, H: 1})
		x += indicatorWidth
	}
	x += footerGap
	l.Next = Rect{X: x, Y: row, W: buttonWidth, H: 1}
	return l
}

// HitTest resolves a cell to the element drawn there
func (l Layout) HitTest(x, y int) types.Hit {
	switch {
	case l.Prev.Contains(x, y):
		return types.Hit{Kind: types.HitPrevious}
	case l.Next.Contains(x, y):
		return types.Hit{Kind: types.HitNext}
	case l.HasCTA && l.CTA.Contains(x, y):
		return types.Hit{Kind: types.HitCTA}
	}
	for i, r := range l.Indicators {
		if r.Contains(x, y) {
			return types.Hit{Kind: types.HitIndicator, Index: i + 1}
		}
	}
	return types.Hit{}
}
