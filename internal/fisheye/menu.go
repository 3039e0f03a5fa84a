package fisheye

import (
	"errors"
	"fmt"
)

// PointerEvent is a pointer position relative to the icon it hovers.
// OffsetX is used by horizontal menus and OffsetY by vertical ones.
type PointerEvent struct {
	Target  string
	OffsetX float64
	OffsetY float64
}

// Dimensions is a bounding box in pixels.
type Dimensions struct {
	Width  float64
	Height float64
}

// Menu is the fisheye controller bound to one Container.
type Menu struct {
	container   *Container
	store       Store
	opts        Options
	scheduler   Scheduler
	orientation Orientation
	items       []Item

	// updating is set while a pass mutates items; pointer moves arriving
	// meanwhile are dropped.
	updating bool
	decay    DecayState
	timer    Timer
}

// New builds a Menu over c and restores its state from kv. kv may be nil, in
// which case nothing is persisted.
//
// If c is already initialized, New returns the Menu bound to it and changes
// nothing.
func New(c *Container, kv Store, opts ...Option) (*Menu, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil container", ErrInvalidContainer)
	}
	if c.menu != nil {
		logDebug("Menu %q already initialized, skipping construction", c.ID)
		return c.menu, nil
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("invalid options for menu %q: %w", c.ID, err)
	}

	if kv == nil {
		kv = nopStore{}
	}
	sched := o.scheduler
	if sched == nil {
		sched = NewManualScheduler()
	}

	m := &Menu{
		container:   c,
		store:       kv,
		opts:        o,
		scheduler:   sched,
		orientation: c.Orientation,
	}
	m.buildItems()
	m.restore()
	m.reserveLayout()

	c.menu = m
	logDebug("Menu %q initialized with %d items (%s)", c.ID, len(c.Elements), m.orientation)
	return m, nil
}

func (m *Menu) buildItems() {
	m.items = make([]Item, 0, len(m.container.Elements)+2)
	m.items = append(m.items, newGutter(GutterStartID, m.opts.MaxSize))
	for _, el := range m.container.Elements {
		it := newItem(el, m.opts.MinSize)
		m.center(&it)
		m.items = append(m.items, it)
	}
	m.items = append(m.items, newGutter(GutterEndID, m.opts.MaxSize))
}

// restore applies the first of: the explicit active item option, the
// persisted active item and offset, the element marked active in markup.
func (m *Menu) restore() {
	if id := m.opts.activeItem; id != "" {
		if err := m.Activate(id); err != nil {
			logWarn("Cannot activate %q on menu %q: %v", id, m.container.ID, err)
		}
		return
	}
	if m.restorePersisted() {
		return
	}
	for _, el := range m.container.Elements {
		if el.Active {
			if err := m.Activate(el.ID); err != nil {
				logWarn("Cannot activate %q on menu %q: %v", el.ID, m.container.ID, err)
			}
			return
		}
	}
}

func (m *Menu) restorePersisted() bool {
	id, ok, err := m.store.Get(ActiveKey(m.container.ID))
	if err != nil {
		logError(err, "Failed to read active item of menu %q", m.container.ID)
		return false
	}
	if !ok || id == "" {
		return false
	}
	idx := m.indexOf(id)
	if idx < 0 || m.items[idx].Gutter {
		logDebug("Persisted active item %q is not part of menu %q, ignoring", id, m.container.ID)
		return false
	}

	offset := m.opts.MaxSize / 2
	raw, ok, err := m.store.Get(OffsetKey(m.container.ID))
	switch {
	case err != nil:
		logError(err, "Failed to read offset of menu %q", m.container.ID)
	case ok:
		v, perr := ParseOffset(raw)
		if perr != nil {
			logWarn("Ignoring malformed offset %q of menu %q", raw, m.container.ID)
		} else {
			offset = v
		}
	}

	m.setActive(idx)
	m.apply(func() { m.renderPressed(offset, idx) })
	return true
}

func (m *Menu) reserveLayout() {
	d := m.MaxDimensions()
	if m.container.MinWidth < d.Width {
		m.container.MinWidth = d.Width
	}
	if m.container.MinHeight < d.Height {
		m.container.MinHeight = d.Height
	}
}

// Click activates the clicked item, persists it together with the offset
// along the primary axis and re-renders as if the pointer rested on it. The
// offset is measured against the magnified icon, so restoring the persisted
// offset reproduces the same shape. Like pointer moves, a click arriving
// while another pass is running is dropped without touching any state.
func (m *Menu) Click(ev PointerEvent) error {
	if m.updating {
		logDebug("Dropping click on %q: update in progress", ev.Target)
		return nil
	}
	idx, err := m.resolve(ev.Target)
	if err != nil {
		logWarn("Ignoring click: %v", err)
		return err
	}
	if m.items[idx].Gutter {
		return fmt.Errorf("%w: %q", ErrGutter, ev.Target)
	}
	m.cancelDecay()
	m.setActive(idx)
	offset := m.axisOffset(ev)
	m.persist(OffsetKey(m.container.ID), FormatOffset(offset))
	m.apply(func() { m.renderPressed(offset, idx) })
	return nil
}

// SetActive makes the item with the given id the only active item and
// persists its id. Sizes are left alone.
func (m *Menu) SetActive(id string) error {
	idx, err := m.resolve(id)
	if err != nil {
		return err
	}
	if m.items[idx].Gutter {
		return fmt.Errorf("%w: %q", ErrGutter, id)
	}
	m.setActive(idx)
	m.apply(func() {})
	return nil
}

// Activate sets the item active and renders it as if the pointer rested
// halfway into a minimum sized icon.
func (m *Menu) Activate(id string) error {
	if err := m.SetActive(id); err != nil {
		return err
	}
	half := m.opts.MinSize / 2
	return m.PointerMove(PointerEvent{Target: id, OffsetX: half, OffsetY: half})
}

func (m *Menu) setActive(idx int) {
	for i := range m.items {
		it := &m.items[i]
		if i == idx {
			it.Active = true
			m.persist(ActiveKey(m.container.ID), it.ID)
			continue
		}
		it.Active = false
		it.LabelVisible = false
	}
}

// ActiveItemID returns the id of the active item.
func (m *Menu) ActiveItemID() (string, bool) {
	for _, it := range m.items {
		if it.Active {
			return it.ID, true
		}
	}
	return "", false
}

// MaxDimensions returns the bounding box of the fully magnified menu. The
// item count includes both gutters.
func (m *Menu) MaxDimensions() Dimensions {
	n := float64(len(m.items))
	size, label := m.opts.MaxSize, m.opts.LabelHeight
	if m.orientation == Vertical {
		return Dimensions{
			Width:  size,
			Height: n * (size + label + m.opts.VerticalMargin),
		}
	}
	return Dimensions{
		Width:  n * size,
		Height: size + label,
	}
}

// Items returns a copy of the current items, gutters included.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Item returns the current state of the item with the given id.
func (m *Menu) Item(id string) (Item, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return Item{}, false
	}
	return m.items[idx], true
}

// ID returns the id of the container the menu is bound to.
func (m *Menu) ID() string { return m.container.ID }

// Orientation returns the primary axis.
func (m *Menu) Orientation() Orientation { return m.orientation }

// Options returns the effective options.
func (m *Menu) Options() Options { return m.opts }

// Container returns the container the menu is bound to.
func (m *Menu) Container() *Container { return m.container }

func (m *Menu) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Menu) resolve(id string) (int, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q in menu %q", ErrNotFound, id, m.container.ID)
	}
	return idx, nil
}

func (m *Menu) axisOffset(ev PointerEvent) float64 {
	if m.orientation == Vertical {
		return ev.OffsetY
	}
	return ev.OffsetX
}

func (m *Menu) center(it *Item) {
	if m.orientation == Vertical {
		it.Offset = (m.opts.MaxSize - it.Size) / 2
	}
}

// apply runs fn under the updating guard and notifies the observer. It
// reports false when another pass is already running.
func (m *Menu) apply(fn func()) bool {
	if m.updating {
		return false
	}
	m.updating = true
	defer func() { m.updating = false }()
	fn()
	if m.opts.observer != nil {
		m.opts.observer(m)
	}
	return true
}

// IsNotFound reports whether err means an unknown item.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
