package model

import (
	"time"

	"fisheye/internal/fisheye"

	tea "github.com/charmbracelet/bubbletea"
)

// TeaScheduler implements fisheye.Scheduler on top of tea.Tick. AfterFunc
// queues a tick command carrying the timer id; the controller sends the
// queued commands with Flush and calls Fire when the DecayTickMsg arrives.
// Callbacks therefore always run on the update loop.
type TeaScheduler struct {
	seq    int
	timers map[int]func()
	queued []tea.Cmd
}

// NewTeaScheduler returns an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{timers: make(map[int]func())}
}

type teaTimer struct {
	s  *TeaScheduler
	id int
}

func (t teaTimer) Stop() bool {
	if _, ok := t.s.timers[t.id]; !ok {
		return false
	}
	delete(t.s.timers, t.id)
	return true
}

// AfterFunc implements fisheye.Scheduler.
func (s *TeaScheduler) AfterFunc(d time.Duration, f func()) fisheye.Timer {
	s.seq++
	id := s.seq
	s.timers[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return DecayTickMsg{ID: id}
	}))
	return teaTimer{s: s, id: id}
}

// Flush returns the tick commands queued since the last call.
func (s *TeaScheduler) Flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback of timer id. Stopped or unknown timers are ignored.
func (s *TeaScheduler) Fire(id int) bool {
	f, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	f()
	return true
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *TeaScheduler) Pending() int {
	return len(s.timers)
}

// Reset forgets every timer. Ticks already in flight are ignored on arrival.
func (s *TeaScheduler) Reset() {
	s.timers = make(map[int]func())
	s.queued = nil
}
