package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every presentation key binding
type KeyMap struct {
	Previous    key.Binding
	Next        key.Binding
	First       key.Binding
	Last        key.Binding
	GlobalFirst key.Binding
	GlobalLast  key.Binding
	Stop        key.Binding
	Fullscreen  key.Binding
	AutoAdvance key.Binding
	CTA         key.Binding
	Dismiss     key.Binding
	Help        key.Binding
	Outline     key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
		Next:        key.NewBinding(key.WithKeys("right", " "), key.WithHelp("→/space", "next")),
		First:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		GlobalFirst: key.NewBinding(key.WithKeys("ctrl+home", "alt+home"), key.WithHelp("ctrl+home", "first")),
		GlobalLast:  key.NewBinding(key.WithKeys("ctrl+end", "alt+end"), key.WithHelp("ctrl+end", "last")),
		Stop:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop auto/exit fullscreen")),
		Fullscreen:  key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "fullscreen")),
		AutoAdvance: key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "auto-advance")),
		CTA:         key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c/enter", "call to action")),
		Dismiss:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Outline:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "outline")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Fullscreen, k.AutoAdvance, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last, k.GlobalFirst, k.GlobalLast},
		{k.AutoAdvance, k.Stop, k.Fullscreen},
		{k.CTA, k.Dismiss, k.Outline, k.Help, k.Quit},
	}
}
