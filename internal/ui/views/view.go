package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"slidedeck/internal/deck"
	"slidedeck/internal/notify"
	"slidedeck/internal/ui/input/types"
	"slidedeck/internal/ui/state"
)

// Minimum terminal size the slide layout needs
const (
	MinWidth  = 40
	MinHeight = 12
)

const contentTop = 2 // header row plus a spacer

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	DeckTitle     string
	Slide         *deck.Slide
	Total         int
	UI            *state.AppState
	Toast         *notify.Toast
	Transitioning bool
	Frame         int
	ShowHelpBar   bool
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	help       help.Model
	progress   progress.Model
	gaugeBar   progress.Model
	compareBar progress.Model
	gauges     *GaugeAnimator
	layout     Layout
}

// NewRenderer creates a new renderer. fps is the tick rate gauges ease at.
func NewRenderer(fps int) *Renderer {
	return &Renderer{
		styles:     NewStyles(),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		gaugeBar:   progress.New(progress.WithGradient("#F25D94", "#EDFF82"), progress.WithoutPercentage()),
		compareBar: progress.New(progress.WithSolidFill("39"), progress.WithoutPercentage()),
		gauges:     NewGaugeAnimator(fps),
	}
}

// Step advances frame based effects for the slide on screen
func (r *Renderer) Step(slide *deck.Slide) {
	r.gauges.Step(slide)
}

// SlideChanged resets eased gauges so the new slide fills from zero
func (r *Renderer) SlideChanged() {
	r.gauges.Reset()
}

// Layout returns the positions recorded by the last Render
func (r *Renderer) Layout() Layout {
	return r.layout
}

// HitTest resolves a cell against the last rendered frame
func (r *Renderer) HitTest(x, y int) types.Hit {
	return r.layout.HitTest(x, y)
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	if vs.Width < MinWidth || vs.Height < MinHeight {
		r.layout = Layout{}
		return r.styles.Dim.Render(fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight))
	}
	if vs.Slide == nil || vs.UI == nil {
		r.layout = Layout{}
		return r.styles.Dim.Render("No slide")
	}

	// Rows from the bottom: help bar, navigation, progress
	footerRows := 2
	if vs.ShowHelpBar {
		footerRows = 3
	}
	navRow := vs.Height - footerRows + 1
	contentHeight := vs.Height - contentTop - footerRows - 1

	rows := make([]string, 0, vs.Height)
	rows = append(rows, r.header(vs), "")

	body, ctaLine := r.slideLines(vs.Slide, vs.Width-4, vs.Frame)
	if len(body) > contentHeight {
		body = body[:contentHeight]
	}
	for _, line := range body {
		line = "  " + truncate.StringWithTail(line, uint(vs.Width-4), "…")
		if vs.Transitioning {
			line = r.styles.Dim.Render(stripANSI(line))
		}
		rows = append(rows, line)
	}
	for len(rows) < contentTop+contentHeight+1 {
		rows = append(rows, "")
	}

	r.progress.Width = vs.Width - 4
	rows = append(rows, "  "+r.progress.ViewAs(vs.UI.Progress/100))

	r.layout = FooterLayout(vs.Width, navRow, vs.Total)
	rows = append(rows, r.footer(vs))
	if ctaLine >= 0 && ctaLine < len(body) {
		label := vs.Slide.CTA.Label()
		r.layout.CTA = Rect{X: 2, Y: contentTop + ctaLine, W: lipgloss.Width(r.ctaButton(label, false)), H: 1}
		r.layout.HasCTA = true
	}

	if vs.ShowHelpBar {
		r.help.Width = vs.Width - 4
		bar := "  " + r.help.ShortHelpView(vs.Keys.ShortHelp())
		if vs.UI.StatusMessage != "" {
			bar = "  " + r.styles.Badge.Render(vs.UI.StatusMessage)
		}
		rows = append(rows, bar)
	}

	screen := strings.Join(rows, "\n")

	if vs.Toast != nil {
		if toast := r.renderToast(*vs.Toast, vs.Width-4); toast != "" {
			screen = overlay(screen, toast, vs.Width-lipgloss.Width(toast)-1, 1)
		}
	}

	if vs.UI.ShowHelp {
		screen = r.helpOverlay(screen, vs)
	}
	return screen
}

func (r *Renderer) header(vs ViewState) string {
	left := r.styles.Header.Render(vs.DeckTitle)

	var badges []string
	if vs.UI.AutoAdvancing {
		badges = append(badges, r.styles.Badge.Render("▶ AUTO"))
	}
	if vs.UI.Fullscreen {
		badges = append(badges, r.styles.Badge.Render("⛶ FULL"))
	}
	badges = append(badges, r.styles.HeaderRight.Render(fmt.Sprintf("%d / %d", vs.UI.ActiveIndicator, vs.Total)))
	right := strings.Join(badges, "  ")

	pad := vs.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 2 {
		return truncate.StringWithTail(left+"  "+right, uint(vs.Width), "…")
	}
	return left + strings.Repeat(" ", pad) + right
}

func (r *Renderer) footer(vs ViewState) string {
	prev, next := r.styles.ButtonOff, r.styles.ButtonOff
	if vs.UI.PrevEnabled {
		prev = r.styles.Button
	}
	if vs.UI.NextEnabled {
		next = r.styles.Button
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", r.layout.Prev.X))
	b.WriteString(prev.Render("[◀ Prev]"))
	b.WriteString(strings.Repeat(" ", footerGap))
	for i := 1; i <= vs.Total; i++ {
		if i == vs.UI.ActiveIndicator {
			b.WriteString(r.styles.IndicatorOn.Render("●"))
		} else {
			b.WriteString(r.styles.Indicator.Render("○"))
		}
		b.WriteString(" ")
	}
	b.WriteString(strings.Repeat(" ", footerGap))
	b.WriteString(next.Render("[Next ▶]"))
	return b.String()
}

func (r *Renderer) helpOverlay(screen string, vs ViewState) string {
	r.help.Width = vs.Width - 8
	content := r.styles.Header.Render("Keyboard shortcuts") + "\n\n" +
		r.help.FullHelpView(vs.Keys.FullHelp()) + "\n\n" +
		r.styles.Help.Render("Swipe with a mouse drag • click dots to jump • ? to close")
	box := r.styles.HelpBox.Render(content)

	x := (vs.Width - lipgloss.Width(box)) / 2
	y := (vs.Height - lipgloss.Height(box)) / 2
	return overlay(desaturate(screen), box, max(x, 0), max(y, 0))
}
