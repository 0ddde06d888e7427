// Package sched is a single-threaded discrete-event scheduler.
//
// Time only moves when the owner calls Advance. Every timer is tagged with the
// scheduler epoch it was created in; Reset bumps the epoch so callbacks issued
// against an older state are dropped instead of firing.
package sched

import (
	"container/heap"
	"time"
)

// ID identifies a scheduled timer. The zero ID is never issued.
type ID uint64

// Func is a timer callback. now is the timer's due time.
type Func func(now time.Time)

type timer struct {
	id        ID
	due       time.Time
	seq       uint64
	epoch     uint64
	every     time.Duration
	fn        Func
	cancelled bool
	index     int
}

// Scheduler runs timers in (due, creation order) order. A repeating timer
// keeps its creation slot across firings.
type Scheduler struct {
	now    time.Time
	epoch  uint64
	nextID ID
	seq    uint64
	queue  timerQueue
	live   map[ID]*timer
}

// New creates a scheduler whose clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{
		now:  start,
		live: make(map[ID]*timer),
	}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Time { return s.now }

// Epoch returns the current epoch.
func (s *Scheduler) Epoch() uint64 { return s.epoch }

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int { return len(s.live) }

// After runs fn once, d after the current clock.
func (s *Scheduler) After(d time.Duration, fn Func) ID {
	return s.add(d, 0, fn)
}

// Every runs fn each period, starting one period from now, until cancelled.
// A non-positive period is treated as a one-shot After(0).
func (s *Scheduler) Every(period time.Duration, fn Func) ID {
	if period <= 0 {
		return s.add(0, 0, fn)
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, every time.Duration, fn Func) ID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &timer{
		id:    s.nextID,
		due:   s.now.Add(d),
		every: every,
		fn:    fn,
		epoch: s.epoch,
	}
	s.push(t)
	s.live[t.id] = t
	return t.id
}

func (s *Scheduler) push(t *timer) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

// Cancel stops a timer. It reports whether the timer was still pending.
// Cancelling a repeating timer from inside its own callback is allowed.
func (s *Scheduler) Cancel(id ID) bool {
	t, ok := s.live[id]
	if !ok {
		return false
	}
	t.cancelled = true
	delete(s.live, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Reset drops every pending timer and starts a new epoch. The clock is kept.
func (s *Scheduler) Reset() {
	s.epoch++
	for _, t := range s.live {
		t.cancelled = true
	}
	s.live = make(map[ID]*timer)
	s.queue = nil
}

// Advance moves the clock to t, firing every timer due at or before t in
// order. It returns the number of callbacks run. Moving backwards is a no-op.
func (s *Scheduler) Advance(t time.Time) int {
	fired := 0
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due.After(t) {
			break
		}
		heap.Pop(&s.queue)
		if next.cancelled || next.epoch != s.epoch {
			delete(s.live, next.id)
			continue
		}
		if next.due.After(s.now) {
			s.now = next.due
		}
		if next.every <= 0 {
			delete(s.live, next.id)
		}
		next.fn(s.now)
		fired++

		if next.every > 0 && !next.cancelled && next.epoch == s.epoch {
			next.due = next.due.Add(next.every)
			heap.Push(&s.queue, next)
		}
	}
	if t.After(s.now) {
		s.now = t
	}
	return fired
}

// AdvanceBy is Advance(Now()+d).
func (s *Scheduler) AdvanceBy(d time.Duration) int {
	return s.Advance(s.now.Add(d))
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
