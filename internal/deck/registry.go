package deck

import "fmt"

// Registry resolves 1-based slide indexes and toggles which slide is current
type Registry struct {
	deck *Deck
}

// NewRegistry creates a registry over d
func NewRegistry(d *Deck) *Registry {
	return &Registry{deck: d}
}

// Deck returns the underlying deck
func (r *Registry) Deck() *Deck {
	return r.deck
}

// Len returns the number of slides
func (r *Registry) Len() int {
	return r.deck.Len()
}

// Resolve returns the slide at a 1-based index
func (r *Registry) Resolve(index int) (*Slide, error) {
	if index < 1 || index > len(r.deck.Slides) {
		return nil, fmt.Errorf("slide %d: %w", index, ErrSlideNotFound)
	}
	return r.deck.Slides[index-1], nil
}

// Activate marks s as the current slide. Idempotent.
func (r *Registry) Activate(s *Slide) {
	if s != nil {
		s.Active = true
	}
}

// Deactivate clears the current flag and rewinds the slide's widgets. Idempotent.
func (r *Registry) Deactivate(s *Slide) {
	if s == nil || !s.Active {
		return
	}
	s.Active = false
	s.ResetWidgets()
}

// Active returns the current slide, if any
func (r *Registry) Active() *Slide {
	for _, s := range r.deck.Slides {
		if s.Active {
			return s
		}
	}
	return nil
}

// Widget finds a widget on the slide at index
func (r *Registry) Widget(index int, id string) (*Widget, bool) {
	s, err := r.Resolve(index)
	if err != nil {
		return nil, false
	}
	return s.Widget(id)
}
