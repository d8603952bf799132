package deck

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"slidedeck/internal/domain"
)

// ErrSlideNotFound is returned when a slide index is outside the deck
var ErrSlideNotFound = errors.New("slide not found")

// WidgetKind describes how a widget is drawn
type WidgetKind string

const (
	WidgetText      WidgetKind = "text"
	WidgetIcon      WidgetKind = "icon"
	WidgetCard      WidgetKind = "card"
	WidgetGauge     WidgetKind = "gauge"
	WidgetBar       WidgetKind = "bar"
	WidgetConnector WidgetKind = "connector"
	WidgetButton    WidgetKind = "button"
)

// Effect is a visual mutation an animation step applies to a widget
type Effect string

const (
	EffectReveal Effect = "reveal"
	EffectFill   Effect = "fill"
	EffectPulse  Effect = "pulse"
	EffectFloat  Effect = "float"
)

// WidgetState is the mutable visual state animations drive
type WidgetState struct {
	Revealed bool
	Fill     float64 // percent, 0..100
	Pulsing  bool
	Floating bool
}

// Widget is a decorative element owned by a slide
type Widget struct {
	ID    string
	Kind  WidgetKind
	Label string
	State WidgetState
}

// AnimationStep is one deferred mutation of a slide's animation sequence
type AnimationStep struct {
	Delay  time.Duration
	Target string
	Effect Effect
	Value  float64
}

// Slide is one page of the deck
type Slide struct {
	Number     int // 1-based position
	Title      string
	Subtitle   string
	Body       []string
	CTA        domain.CTAAction
	Notes      string
	Widgets    []*Widget
	Animations []AnimationStep
	Active     bool
}

// Widget looks up a widget by id
func (s *Slide) Widget(id string) (*Widget, bool) {
	for _, w := range s.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

// ResetWidgets puts every widget back into its pre-animation state.
// Widgets targeted by a reveal step start hidden.
func (s *Slide) ResetWidgets() {
	hidden := make(map[string]bool)
	for _, step := range s.Animations {
		if step.Effect == EffectReveal {
			hidden[step.Target] = true
		}
	}
	for _, w := range s.Widgets {
		w.State = WidgetState{Revealed: !hidden[w.ID]}
	}
}

// Deck is an ordered list of slides
type Deck struct {
	Title  string
	Slides []*Slide
}

// Len returns the number of slides
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Validate checks structural invariants of a deck
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return errors.New("deck has no slides")
	}
	for i, s := range d.Slides {
		if s.Number != i+1 {
			return fmt.Errorf("slide %d: number %d out of order", i+1, s.Number)
		}
		ids := make(map[string]bool, len(s.Widgets))
		for _, w := range s.Widgets {
			if w.ID == "" {
				return fmt.Errorf("slide %d: widget without id", s.Number)
			}
			if ids[w.ID] {
				return fmt.Errorf("slide %d: duplicate widget id %q", s.Number, w.ID)
			}
			ids[w.ID] = true
		}
		for _, step := range s.Animations {
			if !ids[step.Target] {
				return fmt.Errorf("slide %d: animation targets unknown widget %q", s.Number, step.Target)
			}
			switch step.Effect {
			case EffectReveal, EffectFill, EffectPulse, EffectFloat:
			default:
				return fmt.Errorf("slide %d: unknown effect %q", s.Number, step.Effect)
			}
			if step.Delay < 0 {
				return fmt.Errorf("slide %d: negative delay for %q", s.Number, step.Target)
			}
		}
	}
	return nil
}

// deckFile is the on-disk TOML representation
type deckFile struct {
	Title  string      `toml:"title"`
	Slides []slideFile `toml:"slides"`
}

type slideFile struct {
	Title      string          `toml:"title"`
	Subtitle   string          `toml:"subtitle,omitempty"`
	Body       []string        `toml:"body,omitempty"`
	CTA        string          `toml:"cta,omitempty"`
	Notes      string          `toml:"notes,omitempty"`
	Widgets    []widgetFile    `toml:"widgets,omitempty"`
	Animations []animationFile `toml:"animations,omitempty"`
}

type widgetFile struct {
	ID    string `toml:"id"`
	Kind  string `toml:"kind"`
	Label string `toml:"label,omitempty"`
}

type animationFile struct {
	DelayMS int     `toml:"delay_ms"`
	Target  string  `toml:"target"`
	Effect  string  `toml:"effect"`
	Value   float64 `toml:"value,omitempty"`
}

// Parse decodes and validates a TOML deck
func Parse(data []byte) (*Deck, error) {
	var f deckFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	d := &Deck{Title: f.Title}
	for i, sf := range f.Slides {
		s := &Slide{
			Number:   i + 1,
			Title:    sf.Title,
			Subtitle: sf.Subtitle,
			Body:     sf.Body,
			CTA:      domain.ParseCTAAction(sf.CTA),
			Notes:    sf.Notes,
		}
		for _, wf := range sf.Widgets {
			s.Widgets = append(s.Widgets, &Widget{ID: wf.ID, Kind: WidgetKind(wf.Kind), Label: wf.Label})
		}
		for _, af := range sf.Animations {
			s.Animations = append(s.Animations, AnimationStep{
				Delay:  time.Duration(af.DelayMS) * time.Millisecond,
				Target: af.Target,
				Effect: Effect(af.Effect),
				Value:  af.Value,
			})
		}
		s.ResetWidgets()
		d.Slides = append(d.Slides, s)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}
	return d, nil
}

// Load reads a deck file from disk
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a deck back into TOML
func Marshal(d *Deck) ([]byte, error) {
	f := deckFile{Title: d.Title}
	for _, s := range d.Slides {
		sf := slideFile{
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Body:     s.Body,
			CTA:      string(s.CTA),
			Notes:    s.Notes,
		}
		for _, w := range s.Widgets {
			sf.Widgets = append(sf.Widgets, widgetFile{ID: w.ID, Kind: string(w.Kind), Label: w.Label})
		}
		for _, a := range s.Animations {
			sf.Animations = append(sf.Animations, animationFile{
				DelayMS: int(a.Delay / time.Millisecond),
				Target:  a.Target,
				Effect:  string(a.Effect),
				Value:   a.Value,
			})
		}
		f.Slides = append(f.Slides, sf)
	}
	return toml.Marshal(f)
}
