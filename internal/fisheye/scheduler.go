package fisheye

import (
	"sort"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped a
	// timer that had not fired yet.
	Stop() bool
}

// Scheduler creates one-shot timers. Implementations must invoke f on the
// goroutine that drives the Menu.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ManualScheduler is a Scheduler with a virtual clock. Timers fire only when
// the clock is advanced, which makes decay deterministic for headless
// rendering and tests.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	due     time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.seq++
	t := &manualTimer{s: s, due: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due == s.pending[j].due {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due < s.pending[j].due
	})
	return t
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers waiting to fire.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward by d, firing every timer that falls due,
// including timers scheduled by callbacks within the window. It returns the
// number of callbacks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for len(s.pending) > 0 && s.pending[0].due <= target {
		s.fireNext()
		fired++
	}
	s.now = target
	return fired
}

// Drain fires pending timers in order until none remain or limit callbacks
// have run. A limit <= 0 means no limit. It returns the number of callbacks
// run.
func (s *ManualScheduler) Drain(limit int) int {
	fired := 0
	for len(s.pending) > 0 && (limit <= 0 || fired < limit) {
		s.fireNext()
		fired++
	}
	return fired
}

func (s *ManualScheduler) fireNext() {
	t := s.pending[0]
	s.pending = s.pending[1:]
	if t.due > s.now {
		s.now = t.due
	}
	t.fired = true
	t.f()
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
