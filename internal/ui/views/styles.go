package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header       lipgloss.Style
	HeaderRight  lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Body         lipgloss.Style
	Dim          lipgloss.Style
	Card         lipgloss.Style
	Icon         lipgloss.Style
	IconPulse    lipgloss.Style
	Connector    lipgloss.Style
	Label        lipgloss.Style
	CTA          lipgloss.Style
	CTAPulse     lipgloss.Style
	Button       lipgloss.Style
	ButtonOff    lipgloss.Style
	Indicator    lipgloss.Style
	IndicatorOn  lipgloss.Style
	Badge        lipgloss.Style
	Help         lipgloss.Style
	HelpBox      lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastFading  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		HeaderRight: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true),
		Body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Card:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Icon:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		IconPulse: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Connector: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(14),
		CTA: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")),
		CTAPulse: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("226")),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		ButtonOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Indicator:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		IndicatorOn: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		ToastInfo: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("39")),
		ToastSuccess: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("78")),
		ToastFading: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Faint(true).
			BorderForeground(lipgloss.Color("238")),
	}
}
