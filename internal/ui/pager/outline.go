package pager

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/deck"
	"slidedeck/internal/stats"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	notesStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Outline renders the deck outline: every slide with body and notes, then
// the session statistics
func Outline(d *deck.Deck, current int, snap stats.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title + " outline"))
	b.WriteString("\n")

	for _, s := range d.Slides {
		heading := fmt.Sprintf("%2d. %s", s.Number, s.Title)
		if s.Number == current {
			b.WriteString(currentStyle.Render(heading + "  ◀ current"))
		} else {
			b.WriteString(sectionStyle.Render(heading))
		}
		b.WriteString("\n")

		if s.Subtitle != "" {
			b.WriteString("    " + s.Subtitle + "\n")
		}
		for _, line := range s.Body {
			b.WriteString("    • " + line + "\n")
		}
		if label := s.CTA.Label(); label != "" {
			b.WriteString("    [" + label + "]\n")
		}
		if s.Notes != "" {
			b.WriteString(notesStyle.Render("    Notes: "+s.Notes) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Session"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render("elapsed      "), snap.Elapsed.Round(time.Second))
	fmt.Fprintf(&b, "  %s  %d\n", keyStyle.Render("transitions  "), snap.Transitions)
	fmt.Fprintf(&b, "  %s  %d\n", keyStyle.Render("notifications"), snap.Notifications)
	fmt.Fprintf(&b, "  %s  %d\n", keyStyle.Render("auto-advance "), snap.AutoAdvanceRuns)
	fmt.Fprintf(&b, "  %s  %d\n", keyStyle.Render("fullscreen   "), snap.FullscreenUses)

	visits := make([]string, len(snap.Visits))
	for i, v := range snap.Visits {
		visits[i] = fmt.Sprintf("%d:%d", i+1, v)
	}
	fmt.Fprintf(&b, "  %s  %s", keyStyle.Render("visits       "), strings.Join(visits, " "))

	return b.String()
}
