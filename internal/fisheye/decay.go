package fisheye

import "math"

// DecayState is the state of the shrink-back animation.
type DecayState int

const (
	// DecayIdle means no decay pass is scheduled.
	DecayIdle DecayState = iota
	// DecayDecaying means a decay pass is scheduled.
	DecayDecaying
)

// String makes DecayState satisfy the fmt.Stringer interface.
func (s DecayState) String() string {
	switch s {
	case DecayIdle:
		return "idle"
	case DecayDecaying:
		return "decaying"
	default:
		return "unknown"
	}
}

// DecayState returns the current animation state.
func (m *Menu) DecayState() DecayState {
	return m.decay
}

// PointerLeave starts shrinking every magnified, non-active item back to the
// minimum size. It runs one pass immediately and keeps rescheduling itself
// until all items are at the minimum or a pointer move interrupts it. Called
// while another pass is running, the first pass is deferred by one interval.
func (m *Menu) PointerLeave() {
	m.cancelDecay()
	m.decayPass()
}

func (m *Menu) decayPass() {
	needed := false
	ran := m.apply(func() {
		minSize := m.opts.MinSize
		mid := minSize + (m.opts.MaxSize-minSize)/2
		for i := range m.items {
			it := &m.items[i]
			if it.Gutter || it.Active || it.Size <= minSize {
				continue
			}
			size := math.Max(round2(it.Size-m.opts.DecayStep), minSize)
			if size > minSize {
				needed = true
			}
			it.swapFor(size, mid)
			it.Size = size
			m.center(it)
			it.LabelVisible = false
		}
	})
	if !ran {
		logDebug("Deferring decay pass on menu %q: update in progress", m.container.ID)
		m.decay = DecayDecaying
		m.timer = m.scheduler.AfterFunc(m.opts.DecayInterval, m.onDecayTimer)
		return
	}

	if !needed {
		m.decay = DecayIdle
		return
	}
	m.decay = DecayDecaying
	m.timer = m.scheduler.AfterFunc(m.opts.DecayInterval, m.onDecayTimer)
}

func (m *Menu) onDecayTimer() {
	m.timer = nil
	if m.decay != DecayDecaying {
		return
	}
	m.decayPass()
}

// cancelDecay stops any pending pass: Decaying -> Idle.
func (m *Menu) cancelDecay() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.decay = DecayIdle
}
