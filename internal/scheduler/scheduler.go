// Package scheduler is a cooperative, single-threaded task queue.
//
// Tasks never run on their own goroutine. Whoever owns the queue calls
// RunDue (or Virtual.Advance in tests) from the one logical thread that also
// mutates presentation state.
package scheduler

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Scheduler is the surface services schedule deferred work through
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
	Cancel(h Handle) bool
}

type task struct {
	handle   Handle
	fireAt   time.Time
	interval time.Duration // > 0 for repeating tasks
	seq      uint64
	fn       func()
	index    int
}

// Queue orders tasks by fire time, then by the order they were scheduled
type Queue struct {
	clock Clock
	tasks taskHeap
	live  map[Handle]*task
	next  Handle
	seq   uint64
}

// NewQueue creates a queue reading time from clock
func NewQueue(clock Clock) *Queue {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Queue{
		clock: clock,
		live:  make(map[Handle]*task),
	}
}

// Now returns the queue clock's current time
func (q *Queue) Now() time.Time {
	return q.clock.Now()
}

// After schedules fn to run once, d from now
func (q *Queue) After(d time.Duration, fn func()) Handle {
	return q.schedule(d, 0, fn)
}

// Every schedules fn to run every d until cancelled. Non-positive
// intervals are treated as one millisecond.
func (q *Queue) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	return q.schedule(d, d, fn)
}

func (q *Queue) schedule(d, interval time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	q.next++
	q.seq++
	t := &task{
		handle:   q.next,
		fireAt:   q.clock.Now().Add(d),
		interval: interval,
		seq:      q.seq,
		fn:       fn,
	}
	heap.Push(&q.tasks, t)
	q.live[t.handle] = t
	return t.handle
}

// Cancel removes a pending task. It reports whether the task was still pending.
// Cancelling an unknown or already fired handle is a no-op.
func (q *Queue) Cancel(h Handle) bool {
	t, ok := q.live[h]
	if !ok {
		return false
	}
	delete(q.live, h)
	heap.Remove(&q.tasks, t.index)
	return true
}

// Pending returns the number of scheduled tasks
func (q *Queue) Pending() int {
	return len(q.tasks)
}

// IsPending reports whether h is still scheduled
func (q *Queue) IsPending(h Handle) bool {
	_, ok := q.live[h]
	return ok
}

// NextFireTime returns when the earliest task is due
func (q *Queue) NextFireTime() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].fireAt, true
}

// RunDue runs every task due at the current clock time and returns how many ran.
// Tasks scheduled by a running task are picked up in the same call if already due.
func (q *Queue) RunDue() int {
	ran := 0
	for {
		now := q.clock.Now()
		if len(q.tasks) == 0 || q.tasks[0].fireAt.After(now) {
			return ran
		}
		t := q.tasks[0]
		if t.interval > 0 {
			q.seq++
			t.fireAt = t.fireAt.Add(t.interval)
			t.seq = q.seq
			heap.Fix(&q.tasks, 0)
		} else {
			heap.Pop(&q.tasks)
			delete(q.live, t.handle)
		}
		t.fn()
		ran++
	}
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].fireAt.Equal(h[j].fireAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].fireAt.Before(h[j].fireAt)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
