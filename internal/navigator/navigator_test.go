package navigator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidedeck/internal/animation"
	"slidedeck/internal/deck"
	"slidedeck/internal/domain"
	"slidedeck/internal/scheduler"
)

type fakeUI struct {
	indicator int
	buttons   map[Button]bool
	progress  float64
	calls     int
}

func newFakeUI() *fakeUI { return &fakeUI{buttons: make(map[Button]bool)} }

func (u *fakeUI) SetActiveIndicator(index int)               { u.indicator = index; u.calls++ }
func (u *fakeUI) SetButtonEnabled(name Button, enabled bool) { u.buttons[name] = enabled }
func (u *fakeUI) SetProgress(percent float64)                { u.progress = percent }

type fakeAnim struct {
	fired     []int
	cancelled []animation.Handle
	next      animation.Handle
}

func (a *fakeAnim) Fire(index int) animation.Handle {
	a.fired = append(a.fired, index)
	a.next++
	return a.next
}

func (a *fakeAnim) Cancel(h animation.Handle) { a.cancelled = append(a.cancelled, h) }

type failingRegistry struct {
	*deck.Registry
	missing int
}

func (r failingRegistry) Resolve(index int) (*deck.Slide, error) {
	if index == r.missing {
		return nil, fmt.Errorf("slide %d: %w", index, deck.ErrSlideNotFound)
	}
	return r.Registry.Resolve(index)
}

type recorder struct{ events []domain.DomainEvent }

func (r *recorder) Publish(e domain.DomainEvent) { r.events = append(r.events, e) }

type fixture struct {
	nav      *Navigator
	clock    *scheduler.Virtual
	ui       *fakeUI
	anim     *fakeAnim
	registry *deck.Registry
	events   *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:    scheduler.NewVirtual(),
		ui:       newFakeUI(),
		anim:     &fakeAnim{},
		registry: deck.NewRegistry(deck.Default()),
		events:   &recorder{},
	}
	nav, err := New(f.registry.Len(), f.registry, f.ui, f.anim, f.clock, Options{Publisher: f.events})
	require.NoError(t, err)
	f.nav = nav
	f.nav.Start()
	return f
}

func (f *fixture) settle() { f.clock.Advance(DefaultTransitionDuration) }

func TestNewRejectsEmptyDeck(t *testing.T) {
	_, err := New(0, nil, nil, nil, scheduler.NewVirtual(), Options{})
	assert.Error(t, err)
}

func TestStartSyncsUIAndSchedulesFirstAnimation(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, 1, f.ui.indicator)
	assert.False(t, f.ui.buttons[ButtonPrevious])
	assert.True(t, f.ui.buttons[ButtonNext])
	assert.InDelta(t, 12.5, f.ui.progress, 1e-9)

	s, _ := f.registry.Resolve(1)
	assert.True(t, s.Active)

	f.clock.Advance(499 * time.Millisecond)
	assert.Empty(t, f.anim.fired)
	f.clock.Advance(time.Millisecond)
	assert.Equal(t, []int{1}, f.anim.fired)
}

func TestNavigationBeforeInitialAnimationCancelsIt(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.nav.Next())
	f.clock.Advance(time.Second)
	assert.Equal(t, []int{2}, f.anim.fired)
}

func TestOutOfRangeTargetsAreIgnored(t *testing.T) {
	f := newFixture(t)
	for _, target := range []int{-3, 0, 9, 100} {
		assert.False(t, f.nav.RequestGoTo(target), "target %d", target)
		assert.Equal(t, 1, f.nav.Current())
		assert.False(t, f.nav.IsTransitioning())
	}
	assert.Empty(t, f.events.events)
}

func TestRedundantTargetIsIgnored(t *testing.T) {
	f := newFixture(t)
	calls := f.ui.calls
	assert.False(t, f.nav.RequestGoTo(1))
	assert.Equal(t, calls, f.ui.calls)
	assert.False(t, f.nav.IsTransitioning())
}

func TestAcceptedTransitionUpdatesSynchronously(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.nav.RequestGoTo(4))

	assert.Equal(t, 4, f.nav.Current())
	assert.Equal(t, 4, f.ui.indicator)
	assert.True(t, f.ui.buttons[ButtonPrevious])
	assert.True(t, f.ui.buttons[ButtonNext])
	assert.InDelta(t, 50.0, f.ui.progress, 1e-9)
	assert.True(t, f.nav.IsTransitioning())

	one, _ := f.registry.Resolve(1)
	four, _ := f.registry.Resolve(4)
	assert.False(t, one.Active)
	assert.True(t, four.Active)
	assert.Same(t, four, f.registry.Active(), "exactly one slide is active")

	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.SlideChangedEvent{From: 1, To: 4}, f.events.events[0])
}

func TestGuardHoldsForWholeTransition(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.nav.Next())

	for elapsed := time.Duration(0); elapsed < DefaultTransitionDuration; elapsed += 100 * time.Millisecond {
		assert.False(t, f.nav.Next())
		assert.False(t, f.nav.Previous())
		assert.False(t, f.nav.Last())
		assert.False(t, f.nav.RequestGoTo(5))
		assert.Equal(t, 2, f.nav.Current())
		f.clock.Advance(100 * time.Millisecond)
	}

	assert.False(t, f.nav.IsTransitioning())
	assert.True(t, f.nav.Next())
}

func TestCompletionReleasesLockAndFiresAnimation(t *testing.T) {
	f := newFixture(t)
	f.clock.Advance(time.Second)
	f.anim.fired = nil

	require.True(t, f.nav.RequestGoTo(3))
	f.clock.Advance(599 * time.Millisecond)
	assert.True(t, f.nav.IsTransitioning())
	assert.Empty(t, f.anim.fired)

	f.clock.Advance(time.Millisecond)
	assert.False(t, f.nav.IsTransitioning())
	assert.Equal(t, []int{3}, f.anim.fired)
	assert.Equal(t, domain.TransitionCompletedEvent{Index: 3}, f.events.events[len(f.events.events)-1])
}

func TestNewTransitionCancelsPendingAnimation(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.nav.Next())
	f.settle()
	require.Equal(t, []int{2}, f.anim.fired)

	require.True(t, f.nav.Next())
	assert.Contains(t, f.anim.cancelled, animation.Handle(1))
}

func TestBoundaryNoOps(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.nav.Previous())
	assert.False(t, f.nav.First())

	require.True(t, f.nav.Last())
	f.settle()
	assert.Equal(t, 8, f.nav.Current())
	assert.False(t, f.ui.buttons[ButtonNext])
	assert.False(t, f.nav.Next())
	assert.False(t, f.nav.IsTransitioning())

	require.True(t, f.nav.First())
	f.settle()
	assert.Equal(t, 1, f.nav.Current())
}

func TestProgressMatchesIndexIncludingMidTransition(t *testing.T) {
	f := newFixture(t)
	for i := 1; i <= 8; i++ {
		if i > 1 {
			require.True(t, f.nav.Next())
		}
		st := f.nav.Status()
		assert.InDelta(t, float64(st.Current)/float64(st.Total)*100, st.ProgressPercent, 1e-9)
		assert.Equal(t, i == 1, st.IsFirst)
		assert.Equal(t, i == 8, st.IsLast)
		f.settle()
	}
}

func TestThreeNextsThenRejectedFourth(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.nav.Next())
	f.settle()
	require.True(t, f.nav.Next())
	f.settle()
	require.True(t, f.nav.Next())
	assert.Equal(t, 4, f.nav.Current())

	assert.False(t, f.nav.Next())
	assert.Equal(t, 4, f.nav.Current())
	assert.True(t, f.nav.IsTransitioning())
}

func TestUnresolvableTargetAbortsTransition(t *testing.T) {
	clock := scheduler.NewVirtual()
	ui := newFakeUI()
	anim := &fakeAnim{}
	events := &recorder{}
	reg := failingRegistry{Registry: deck.NewRegistry(deck.Default()), missing: 5}

	nav, err := New(8, reg, ui, anim, clock, Options{Publisher: events})
	require.NoError(t, err)
	nav.Start()

	assert.False(t, nav.RequestGoTo(5))
	assert.Equal(t, 1, nav.Current())
	assert.False(t, nav.IsTransitioning())
	assert.Equal(t, 1, ui.indicator)
	require.Len(t, events.events, 1)
	assert.Equal(t, domain.EventError, events.events[0].Type())

	assert.True(t, nav.RequestGoTo(6), "navigator is still usable")
}

func TestCloseCancelsOutstandingTasks(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.nav.Next())
	f.nav.Close()

	assert.False(t, f.nav.IsTransitioning())
	assert.Zero(t, f.clock.Pending())
}
