package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/ui/input/modes"
	"slidedeck/internal/ui/input/types"
)

// Config tunes pointer handling
type Config struct {
	Swipe SwipeConfig
	// Pointer units per terminal cell, so swipe thresholds read like pixels
	CellWidth  float64
	CellHeight float64
}

// DefaultConfig returns the default pointer settings
func DefaultConfig() Config {
	return Config{Swipe: DefaultSwipeConfig(), CellWidth: 8, CellHeight: 16}
}

// Handler turns raw terminal input into actions
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        KeyMap
	cfg         Config

	pressed bool
	start   Point
}

func New(keys KeyMap, cfg Config) *Handler {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 1
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 1
	}
	h := &Handler{
		currentMode: types.ModePresenting,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
		cfg:         cfg,
	}

	h.modes[types.ModePresenting] = modes.NewPresentingMode(modes.Bindings{
		Previous:    keys.Previous,
		Next:        keys.Next,
		First:       keys.First,
		Last:        keys.Last,
		GlobalFirst: keys.GlobalFirst,
		GlobalLast:  keys.GlobalLast,
		Stop:        keys.Stop,
		Fullscreen:  keys.Fullscreen,
		AutoAdvance: keys.AutoAdvance,
		CTA:         keys.CTA,
		Dismiss:     keys.Dismiss,
		Help:        keys.Help,
		Outline:     keys.Outline,
		Quit:        keys.Quit,
		ForceQuit:   keys.ForceQuit,
	})
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// HandleKey maps a key press to actions. Navigation actions are dropped while
// ctx reports a transition; everything else stays responsive.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && h.currentMode != types.ModePresenting {
		actions, _ = h.modes[types.ModePresenting].HandleKey(msg, ctx)
	}

	var out []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			h.currentMode = changeMode.Mode
			continue
		}
		if types.IsNavigation(action) && ctx.IsTransitioning() {
			continue
		}
		out = append(out, action)
	}
	return out
}

// HandleMouse recognises swipes from press/release pairs and turns plain
// clicks into button or indicator actions
func (h *Handler) HandleMouse(msg tea.MouseMsg, now time.Time, ctx types.Context) []types.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		h.pressed = true
		h.start = h.point(msg, now)
		return nil

	case tea.MouseActionRelease:
		if !h.pressed {
			return nil
		}
		h.pressed = false
		end := h.point(msg, now)

		if ctx.IsTransitioning() {
			return nil
		}
		switch Recognize(h.start, end, h.cfg.Swipe) {
		case SwipeForward:
			return []types.Action{types.NavigateAction{Direction: types.DirectionNext}}
		case SwipeBackward:
			return []types.Action{types.NavigateAction{Direction: types.DirectionPrevious}}
		}

		// Anything that did not leave the start cell is a click
		if h.start.X != end.X || h.start.Y != end.Y {
			return nil
		}
		return h.click(ctx.HitTest(msg.X, msg.Y))
	}
	return nil
}

func (h *Handler) click(hit types.Hit) []types.Action {
	switch hit.Kind {
	case types.HitIndicator:
		return []types.Action{types.GoToAction{Index: hit.Index}}
	case types.HitPrevious:
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrevious}}
	case types.HitNext:
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext}}
	case types.HitCTA:
		return []types.Action{types.TriggerCTAAction{}}
	default:
		return nil
	}
}

func (h *Handler) point(msg tea.MouseMsg, now time.Time) Point {
	return Point{
		X:  float64(msg.X) * h.cfg.CellWidth,
		Y:  float64(msg.Y) * h.cfg.CellHeight,
		At: now,
	}
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the active mode's display name
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// Keys returns the key map, for help rendering
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// Reset returns to presenting mode and forgets any half-finished gesture
func (h *Handler) Reset() {
	h.currentMode = types.ModePresenting
	h.pressed = false
}
