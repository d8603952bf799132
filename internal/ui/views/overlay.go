package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes colour and style codes
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// desaturate strips styling and recolours text dim gray
func desaturate(s string) string {
	lines := strings.Split(stripANSI(s), "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = gray.Render(line)
	}
	return strings.Join(lines, "\n")
}

// overlay draws top over base with its top-left corner at column x, row y.
// Base text left of the box keeps its styling; text right of it is kept as
// plain characters.
func overlay(base, top string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	topWidth := lipgloss.Width(top)

	for i, line := range topLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		under := baseLines[row]

		left := truncate.String(under, uint(max(x, 0)))
		if pad := x - lipgloss.Width(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := skipColumns(stripANSI(under), x+topWidth)
		if pad := topWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// skipColumns drops the first n display columns of a plain string
func skipColumns(s string, n int) string {
	col := 0
	for i, r := range s {
		if col >= n {
			return s[i:]
		}
		col += runewidth.RuneWidth(r)
	}
	return ""
}
