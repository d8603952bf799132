// Package session wires one running presentation together: the navigator,
// its sinks, the timers and the event bus, all sharing one scheduler queue.
package session

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slidedeck/internal/animation"
	"slidedeck/internal/autoadvance"
	"slidedeck/internal/config"
	"slidedeck/internal/deck"
	"slidedeck/internal/domain"
	"slidedeck/internal/eventbus"
	"slidedeck/internal/fullscreen"
	"slidedeck/internal/navigator"
	"slidedeck/internal/notify"
	"slidedeck/internal/scheduler"
	"slidedeck/internal/stats"
	"slidedeck/internal/ui/input/types"
	"slidedeck/internal/ui/state"
)

// Notification texts
const (
	WelcomeMessage           = "🎯 Use arrow keys, swipe, or click indicators to navigate • Press F for fullscreen • Press P for auto-advance"
	AutoAdvanceMessage       = "▶️ Auto-advance started - Press ESC to stop"
	FullscreenEnteredMessage = "📺 Entered fullscreen mode - Press F or ESC to exit"
	FullscreenFailedMessage  = "❌ Fullscreen not supported"
)

// Effect is what the caller of Execute must do beyond the session itself
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectOutline
)

// Options configures a session. Nil fields get production defaults.
type Options struct {
	Config     *config.Config
	Deck       *deck.Deck
	Queue      *scheduler.Queue
	Fullscreen fullscreen.Provider
	Bus        eventbus.EventBus
	Logger     *zap.Logger
}

// Session owns every component of a running presentation
type Session struct {
	ID string

	Registry   *deck.Registry
	State      *state.AppState
	Navigator  *navigator.Navigator
	Animations *animation.Trigger
	Notifier   *notify.Notifier
	Auto       *autoadvance.Timer
	Fullscreen fullscreen.Provider
	Stats      *stats.Recorder

	cfg     *config.Config
	queue   *scheduler.Queue
	bus     eventbus.EventBus
	ownsBus bool
	log     *zap.Logger
	welcome scheduler.Handle
	closed  bool
}

// New builds a session. Nothing is scheduled until Start.
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	d := opts.Deck
	if d == nil {
		d = deck.Default()
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	id := uuid.NewString()
	base := opts.Logger
	if base == nil {
		base = zap.NewNop()
	}
	log := base.With(zap.String("session", id))

	queue := opts.Queue
	if queue == nil {
		queue = scheduler.NewQueue(scheduler.SystemClock{})
	}

	bus := opts.Bus
	ownsBus := false
	if bus == nil {
		bus = eventbus.New(log)
		ownsBus = true
	}

	fs := opts.Fullscreen
	if fs == nil {
		fs = fullscreen.NewAltScreen(os.Stdout, log)
	}

	registry := deck.NewRegistry(d)
	appState := state.NewAppState()
	trigger := animation.NewTrigger(queue, registry)

	nav, err := navigator.New(registry.Len(), registry, appState, trigger, queue, navigator.Options{
		TransitionDuration:    cfg.Timing.Transition(),
		InitialAnimationDelay: cfg.Timing.InitialAnimation(),
		Logger:                log,
		Publisher:             bus,
	})
	if err != nil {
		if ownsBus {
			bus.Close()
		}
		return nil, err
	}

	s := &Session{
		ID:         id,
		Registry:   registry,
		State:      appState,
		Navigator:  nav,
		Animations: trigger,
		Notifier: notify.New(queue, notify.Options{
			Duration:      cfg.Timing.Notification(),
			EnterDuration: cfg.Timing.NotificationEnter(),
			ExitDuration:  cfg.Timing.NotificationExit(),
			Logger:        log,
			Publisher:     bus,
		}),
		Auto:       autoadvance.New(queue, nav, log, bus),
		Fullscreen: fs,
		Stats:      stats.New(registry.Len(), queue.Now()),
		cfg:        cfg,
		queue:      queue,
		bus:        bus,
		ownsBus:    ownsBus,
		log:        log,
	}
	s.Stats.Attach(bus)
	return s, nil
}

// Start shows slide 1 and schedules the welcome notification
func (s *Session) Start() {
	s.log.Info("session started",
		zap.String("deck", s.Registry.Deck().Title),
		zap.Int("slides", s.Registry.Len()))
	s.Navigator.Start()

	if s.cfg.UI.ShowWelcome {
		s.welcome = s.queue.After(s.cfg.Timing.WelcomeDelay(), func() {
			s.welcome = 0
			s.Notifier.Show(WelcomeMessage, domain.KindInfo)
		})
	}
	if s.cfg.UI.StartFullscreen {
		s.toggleFullscreen()
	}
	s.syncState()
}

// Tick runs every task due on the queue and returns how many ran
func (s *Session) Tick() int {
	n := s.queue.RunDue()
	s.syncState()
	return n
}

// Queue exposes the scheduler driving this session
func (s *Session) Queue() *scheduler.Queue {
	return s.queue
}

// Config returns the active configuration
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Execute performs an input action
func (s *Session) Execute(action types.Action) Effect {
	defer s.syncState()

	switch a := action.(type) {
	case types.NavigateAction:
		s.navigate(a.Direction)
	case types.JumpAction:
		s.navigate(a.Direction)
	case types.GoToAction:
		s.Navigator.RequestGoTo(a.Index)
	case types.StartAutoAdvanceAction:
		s.Auto.Start(s.cfg.Timing.AutoAdvance())
		s.Notifier.Show(AutoAdvanceMessage, domain.KindInfo)
	case types.StopAction:
		s.Auto.Stop()
		if s.Fullscreen.IsActive() {
			s.exitFullscreen()
		}
	case types.ToggleFullscreenAction:
		s.toggleFullscreen()
	case types.TriggerCTAAction:
		s.triggerCTA()
	case types.DismissNotificationAction:
		s.Notifier.Dismiss()
	case types.OpenOutlineAction:
		s.Auto.Stop()
		return EffectOutline
	case types.QuitAction:
		return EffectQuit
	default:
		s.log.Debug("unhandled action", zap.String("type", action.Type()))
	}
	return EffectNone
}

func (s *Session) navigate(direction string) {
	switch direction {
	case types.DirectionPrevious:
		s.Navigator.Previous()
	case types.DirectionNext:
		s.Navigator.Next()
	case types.DirectionFirst:
		s.Navigator.First()
	case types.DirectionLast:
		s.Navigator.Last()
	}
}

func (s *Session) toggleFullscreen() {
	if s.Fullscreen.IsActive() {
		s.exitFullscreen()
		return
	}
	if err := s.Fullscreen.Enter(); err != nil {
		s.log.Warn("fullscreen unavailable", zap.Error(err))
		s.Notifier.Show(FullscreenFailedMessage, domain.KindInfo)
		return
	}
	s.bus.Publish(domain.FullscreenChangedEvent{Active: true})
	s.Notifier.Show(FullscreenEnteredMessage, domain.KindInfo)
}

func (s *Session) exitFullscreen() {
	s.Fullscreen.Exit()
	s.bus.Publish(domain.FullscreenChangedEvent{Active: false})
}

func (s *Session) triggerCTA() {
	slide := s.Registry.Active()
	if slide == nil || slide.CTA == domain.CTANone {
		return
	}
	s.log.Info("call to action", zap.String("action", string(slide.CTA)), zap.Int("slide", slide.Number))
	s.Notifier.ShowNotification(slide.CTA.Notification())
}

func (s *Session) syncState() {
	s.State.AutoAdvancing = s.Auto.Running()
	s.State.Fullscreen = s.Fullscreen.IsActive()
}

// Close stops every timer and releases the bus. It is safe to call twice.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if s.welcome != 0 {
		s.queue.Cancel(s.welcome)
	}
	s.Auto.Close()
	s.Notifier.Close()
	s.Navigator.Close()
	if s.Fullscreen.IsActive() {
		s.Fullscreen.Exit()
	}
	s.syncState()
	s.Stats.Detach()
	if s.ownsBus {
		s.bus.Close()
	}
	s.log.Info("session closed")
}
