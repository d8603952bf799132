package views

import (
	"github.com/charmbracelet/harmonica"

	"slidedeck/internal/deck"
)

type springState struct {
	pos, vel float64
}

// GaugeAnimator eases gauge and bar fills toward their target with a
// critically damped spring, one step per render tick
type GaugeAnimator struct {
	spring harmonica.Spring
	states map[*deck.Widget]*springState
}

// NewGaugeAnimator creates an animator stepping fps times per second
func NewGaugeAnimator(fps int) *GaugeAnimator {
	if fps <= 0 {
		fps = 20
	}
	return &GaugeAnimator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		states: make(map[*deck.Widget]*springState),
	}
}

// Step advances every fill widget of slide by one frame
func (g *GaugeAnimator) Step(slide *deck.Slide) {
	if slide == nil {
		return
	}
	for _, w := range slide.Widgets {
		if w.Kind != deck.WidgetGauge && w.Kind != deck.WidgetBar {
			continue
		}
		st, ok := g.states[w]
		if !ok {
			st = &springState{}
			g.states[w] = st
		}
		st.pos, st.vel = g.spring.Update(st.pos, st.vel, w.State.Fill)
	}
}

// Value returns the eased fill of w in percent
func (g *GaugeAnimator) Value(w *deck.Widget) float64 {
	st, ok := g.states[w]
	if !ok {
		return 0
	}
	return clampPercent(st.pos)
}

// Reset forgets all eased positions so the next visit fills from zero
func (g *GaugeAnimator) Reset() {
	g.states = make(map[*deck.Widget]*springState)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
