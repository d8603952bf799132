package scheduler

import "time"

// ManualClock only moves when told to
type ManualClock struct {
	now time.Time
}

// NewManualClock starts a clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Set moves the clock to t. Moving backwards is ignored.
func (c *ManualClock) Set(t time.Time) {
	if t.After(c.now) {
		c.now = t
	}
}

// Virtual is a queue on a manual clock, used to drive timing deterministically
type Virtual struct {
	*Queue
	clock *ManualClock
}

// NewVirtual creates a virtual scheduler starting at a fixed epoch
func NewVirtual() *Virtual {
	clock := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return &Virtual{Queue: NewQueue(clock), clock: clock}
}

// Advance moves time forward by d, running each due task at its own fire time
func (v *Virtual) Advance(d time.Duration) int {
	target := v.clock.Now().Add(d)
	ran := 0
	for {
		at, ok := v.NextFireTime()
		if !ok || at.After(target) {
			break
		}
		v.clock.Set(at)
		ran += v.RunDue()
	}
	v.clock.Set(target)
	return ran
}

// Clock exposes the manual clock so tests can move time without running tasks
func (v *Virtual) Clock() *ManualClock {
	return v.clock
}
