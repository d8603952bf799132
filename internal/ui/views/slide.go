package views

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"slidedeck/internal/deck"
)

// slideLines renders the body of a slide. The returned index is the line
// holding the call to action button, or -1.
func (r *Renderer) slideLines(s *deck.Slide, width, frame int) ([]string, int) {
	var lines []string
	lines = append(lines, r.styles.Title.Render(s.Title))
	if s.Subtitle != "" {
		lines = append(lines, r.styles.Subtitle.Render(s.Subtitle))
	}
	lines = append(lines, "")

	for _, para := range s.Body {
		for _, l := range strings.Split(wordwrap.String(para, width), "\n") {
			lines = append(lines, r.styles.Body.Render(l))
		}
	}
	if len(s.Body) > 0 {
		lines = append(lines, "")
	}

	for _, w := range s.Widgets {
		lines = append(lines, r.widgetLine(w, width, frame))
	}

	cta := -1
	if label := s.CTA.Label(); label != "" {
		lines = append(lines, "")
		cta = len(lines)
		lines = append(lines, r.ctaButton(label, false))
	}
	return lines, cta
}

func pulseOn(frame int) bool {
	return (frame/10)%2 == 0
}

func (r *Renderer) widgetLine(w *deck.Widget, width, frame int) string {
	if !w.State.Revealed {
		return ""
	}
	switch w.Kind {
	case deck.WidgetIcon:
		style := r.styles.Icon
		if w.State.Pulsing && pulseOn(frame) {
			style = r.styles.IconPulse
		}
		indent := ""
		if w.State.Floating && pulseOn(frame+5) {
			indent = " "
		}
		return indent + style.Render(w.Label)

	case deck.WidgetCard:
		return r.styles.Card.Render("▸ " + w.Label)

	case deck.WidgetConnector:
		return r.styles.Connector.Render("  │")

	case deck.WidgetGauge, deck.WidgetBar:
		bar := r.gaugeBar
		if w.Kind == deck.WidgetBar {
			bar = r.compareBar
		}
		bar.Width = min(30, max(width-16, 10))
		value := r.gauges.Value(w)
		return r.styles.Label.Render(w.Label) + bar.ViewAs(value/100) + fmt.Sprintf(" %3.0f%%", value)

	case deck.WidgetButton:
		return r.ctaButton(w.Label, w.State.Pulsing && pulseOn(frame))

	default:
		return r.styles.Body.Render(w.Label)
	}
}

func (r *Renderer) ctaButton(label string, pulse bool) string {
	style := r.styles.CTA
	if pulse {
		style = r.styles.CTAPulse
	}
	return style.Render(" " + label + " ")
}
