package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"slidedeck/internal/domain"
	"slidedeck/internal/scheduler"
	"slidedeck/internal/session"
	"slidedeck/internal/ui/input"
	inputtypes "slidedeck/internal/ui/input/types"
	"slidedeck/internal/ui/pager"
	"slidedeck/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// drainer is implemented by fullscreen providers that emit terminal commands
type drainer interface {
	Drain() []tea.Cmd
}

// Model is the bubbletea model of a running presentation
type Model struct {
	session *session.Session
	log     *zap.Logger

	width       int
	height      int
	frame       int
	lastSlide   int
	inPagerMode bool
	statusTask  scheduler.Handle

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *pager.Pager
	now          func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the UI model for s
func NewModel(s *session.Session, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := s.Config()

	fps := 1000 / cfg.UI.TickMS
	return &Model{
		session:   s,
		log:       log.Named("ui"),
		lastSlide: s.Navigator.Current(),
		renderer:  views.NewRenderer(fps),
		inputHandler: input.New(input.DefaultKeyMap(), input.Config{
			Swipe: input.SwipeConfig{
				Threshold:   cfg.Input.SwipeThreshold,
				MaxDuration: cfg.Input.SwipeMax(),
			},
			CellWidth:  cfg.Input.CellWidth,
			CellHeight: cfg.Input.CellHeight,
		}),
		now: time.Now,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = pager.New(p)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.session.Config().UI.Tick(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop
func (m *Model) Init() tea.Cmd {
	return tea.Batch(append(m.drainTerminal(), m.tick())...)
}

func (m *Model) context() inputtypes.Context {
	return input.ModelContext{
		Transitioning: m.session.Navigator.IsTransitioning,
		Hit:           m.renderer.HitTest,
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		actions := m.inputHandler.HandleKey(msg, m.context())
		m.session.State.ShowHelp = m.inputHandler.CurrentMode() == inputtypes.ModeHelp
		return m, m.processActions(actions)

	case tea.MouseMsg:
		actions := m.inputHandler.HandleMouse(msg, m.now(), m.context())
		return m, m.processActions(actions)

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		m.session.Tick()
		m.frame++
		m.afterUpdate()
		m.renderer.Step(m.session.Registry.Active())
		return m, m.tick()

	case EventMsg:
		if e, ok := msg.Event.(domain.ErrorEvent); ok {
			m.setStatus("⚠ " + e.Message)
		}
		return m, nil

	case outlinePagerMsg:
		if msg.err != nil {
			m.log.Warn("outline pager failed", zap.Error(msg.err))
			m.setStatus("Outline unavailable")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.inputHandler.Reset()
		return m, m.tick()
	}

	return m, nil
}

// processActions executes actions in order and collects terminal commands
func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		switch m.session.Execute(action) {
		case session.EffectQuit:
			m.log.Info("quit requested")
			m.session.Close()
			cmds = append(cmds, m.drainTerminal()...)
			return tea.Sequence(append(cmds, tea.Quit)...)
		case session.EffectOutline:
			if cmd := m.showOutline(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	m.afterUpdate()
	cmds = append(cmds, m.drainTerminal()...)
	return tea.Batch(cmds...)
}

func (m *Model) afterUpdate() {
	if cur := m.session.Navigator.Current(); cur != m.lastSlide {
		m.lastSlide = cur
		m.renderer.SlideChanged()
	}
}

func (m *Model) drainTerminal() []tea.Cmd {
	if d, ok := m.session.Fullscreen.(drainer); ok {
		return d.Drain()
	}
	return nil
}

func (m *Model) setStatus(text string) {
	q := m.session.Queue()
	if m.statusTask != 0 {
		q.Cancel(m.statusTask)
	}
	m.session.State.StatusMessage = text
	m.statusTask = q.After(statusTimeout, func() {
		m.session.State.StatusMessage = ""
		m.statusTask = 0
	})
}

// showOutline returns a command that shows the deck outline in the ov pager
func (m *Model) showOutline() tea.Cmd {
	if m.program == nil || m.pager == nil {
		m.setStatus("Outline unavailable")
		return nil
	}
	s := m.session
	content := pager.Outline(s.Registry.Deck(), s.Navigator.Current(), s.Stats.Snapshot(m.now()))
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return outlinePagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	s := m.session
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		DeckTitle:     s.Registry.Deck().Title,
		Slide:         s.Registry.Active(),
		Total:         s.Navigator.Total(),
		UI:            s.State,
		Transitioning: s.Navigator.IsTransitioning(),
		Frame:         m.frame,
		ShowHelpBar:   s.Config().UI.ShowHelpBar,
		Keys:          m.inputHandler.Keys(),
	}
	if toast, ok := s.Notifier.Current(); ok {
		vs.Toast = &toast
	}
	return m.renderer.Render(vs)
}
