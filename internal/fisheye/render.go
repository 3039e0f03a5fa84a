package fisheye

import "math"

// PointerMove renders the magnification for a pointer resting on ev.Target.
// A pending decay is cancelled first. The event is dropped while another
// pass is running.
func (m *Menu) PointerMove(ev PointerEvent) error {
	if m.updating {
		logDebug("Dropping pointer move on %q: update in progress", ev.Target)
		return nil
	}
	m.cancelDecay()

	idx, err := m.resolve(ev.Target)
	if err != nil {
		logWarn("Ignoring pointer move: %v", err)
		return err
	}
	offset := m.axisOffset(ev)
	m.apply(func() { m.render(offset, idx) })
	return nil
}

// renderPressed renders a pointer resting on the magnified item t. Clicks
// and restores use it so the persisted offset always has the same basis.
func (m *Menu) renderPressed(offset float64, t int) {
	m.items[t].Size = m.opts.MaxSize
	m.render(offset, t)
}

// render applies the fisheye shape around the item at index t for a pointer
// offset (pixels along the primary axis) within it.
func (m *Menu) render(offset float64, t int) {
	minSize, maxSize := m.opts.MinSize, m.opts.MaxSize
	delta := maxSize - minSize
	mid := minSize + delta/2
	deltaX := offset / m.items[t].Size
	k := m.opts.FocusedItems

	for i := range m.items {
		it := &m.items[i]
		if it.Gutter {
			continue
		}
		d := i - t
		switch {
		case d == 0:
			it.Size = maxSize
			it.LabelVisible = true
			it.useLarge()
			m.center(it)
		case it.Active:
			// keeps whatever activation rendered
		case d >= -k && d <= k:
			var x float64
			if d < 0 {
				x = (float64(-d-1) + deltaX) / float64(k)
			} else {
				x = (float64(d) - deltaX) / float64(k)
			}
			size := math.Min(round2(minSize+1+Transfer(x)*delta), maxSize)
			it.swapFor(size, mid)
			it.Size = size
			m.center(it)
		default:
			it.Size = minSize
			it.LabelVisible = false
			it.useSmall()
			m.center(it)
		}
	}
}
