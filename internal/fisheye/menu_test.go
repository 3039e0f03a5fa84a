package fisheye

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsItemsWithGutters(t *testing.T) {
	m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), nil)

	items := m.Items()
	require.Len(t, items, 5)

	assert.True(t, items[0].Gutter)
	assert.Equal(t, GutterStartID, items[0].ID)
	assert.True(t, items[4].Gutter)
	assert.Equal(t, GutterEndID, items[4].ID)
	assert.Equal(t, DefaultMaxSize, items[0].Size)
	assert.Equal(t, DefaultMaxSize, items[4].Size)

	for _, it := range items[1:4] {
		assert.False(t, it.Gutter)
		assert.False(t, it.Active)
		assert.False(t, it.LabelVisible)
		assert.Equal(t, DefaultMinSize, it.Size)
		assert.Equal(t, 0.0, it.Offset)
	}

	_, ok := m.ActiveItemID()
	assert.False(t, ok)
	assert.Equal(t, DecayIdle, m.DecayState())
}

func TestNew_VerticalCentersIcons(t *testing.T) {
	m, _ := newTestMenu(t, testContainer(Vertical, "a", "b"), nil)

	assert.Equal(t, Vertical, m.Orientation())
	assert.Equal(t, 16.0, item(t, m, "a").Offset)
	assert.Equal(t, 0.0, item(t, m, GutterStartID).Offset)
}

func TestNew_IsIdempotent(t *testing.T) {
	c := testContainer(Horizontal, "a", "b", "c")
	m, _ := newTestMenu(t, c, nil)
	require.True(t, c.Initialized())

	require.NoError(t, m.Click(PointerEvent{Target: "b", OffsetX: 10}))
	before := m.Items()

	again, err := New(c, mapStore{}, WithActiveItem("c"), WithMaxSize(200))
	require.NoError(t, err)

	assert.Same(t, m, again)
	assert.Same(t, m, c.Menu())
	assert.Equal(t, before, again.Items())
	id, _ := again.ActiveItemID()
	assert.Equal(t, "b", id)
}

func TestNew_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		c    *Container
		opts []Option
		err  error
	}{
		{name: "nil container", c: nil, err: ErrInvalidContainer},
		{name: "no elements", c: &Container{ID: "x"}, err: ErrNoItems},
		{name: "missing container id", c: &Container{Elements: []Element{{ID: "a"}}}, err: ErrInvalidContainer},
		{name: "missing element id", c: &Container{ID: "x", Elements: []Element{{Label: "a"}}}, err: ErrInvalidContainer},
		{name: "duplicate element id", c: testContainer(Horizontal, "a", "a"), err: ErrInvalidContainer},
		{name: "reserved element id", c: testContainer(Horizontal, GutterEndID), err: ErrInvalidContainer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.c, nil, tt.opts...)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := New(testContainer(Horizontal, "a"), nil, WithMinSize(90))
	assert.Error(t, err)
	_, err = New(testContainer(Horizontal, "a"), nil, WithFocusedItems(0))
	assert.Error(t, err)
}

func TestMaxDimensions(t *testing.T) {
	h, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), nil)
	assert.Equal(t, Dimensions{Width: 5 * 80, Height: 80 + 16}, h.MaxDimensions())

	v, _ := newTestMenu(t, testContainer(Vertical, "a", "b", "c"), nil,
		WithVerticalMargin(4), WithLabelHeight(20))
	assert.Equal(t, Dimensions{Width: 80, Height: 5 * (80 + 20 + 4)}, v.MaxDimensions())
}

func TestNew_ReservesContainerSpace(t *testing.T) {
	c := testContainer(Horizontal, "a", "b")
	_, _ = newTestMenu(t, c, nil)
	assert.Equal(t, 320.0, c.MinWidth)
	assert.Equal(t, 96.0, c.MinHeight)

	wide := testContainer(Horizontal, "a", "b")
	wide.MinWidth = 1000
	_, _ = newTestMenu(t, wide, nil)
	assert.Equal(t, 1000.0, wide.MinWidth)
	assert.Equal(t, 96.0, wide.MinHeight)
}

func TestSetActive(t *testing.T) {
	kv := mapStore{}
	m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), kv)

	require.NoError(t, m.PointerMove(PointerEvent{Target: "a", OffsetX: 0}))
	require.True(t, item(t, m, "a").LabelVisible)
	sizesBefore := sizes(m)

	require.NoError(t, m.SetActive("c"))

	id, ok := m.ActiveItemID()
	require.True(t, ok)
	assert.Equal(t, "c", id)
	assert.Equal(t, "c", kv[ActiveKey("dock")])
	assert.False(t, item(t, m, "a").LabelVisible)
	assert.Equal(t, sizesBefore, sizes(m), "SetActive must not resize")

	require.NoError(t, m.SetActive("a"))
	assert.False(t, item(t, m, "c").Active)
	assert.True(t, item(t, m, "a").Active)

	assert.ErrorIs(t, m.SetActive("nope"), ErrNotFound)
	assert.ErrorIs(t, m.SetActive(GutterStartID), ErrGutter)
	id, _ = m.ActiveItemID()
	assert.Equal(t, "a", id)
}

func TestClick_PersistsAndRenders(t *testing.T) {
	kv := mapStore{}
	m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), kv)

	require.NoError(t, m.Click(PointerEvent{Target: "b", OffsetX: 30, OffsetY: 5}))

	id, ok := m.ActiveItemID()
	require.True(t, ok)
	assert.Equal(t, "b", id)
	assert.Equal(t, "b", kv[ActiveKey("dock")])
	assert.Equal(t, "30", kv[OffsetKey("dock")])

	b := item(t, m, "b")
	assert.Equal(t, DefaultMaxSize, b.Size)
	assert.True(t, b.LabelVisible)
	assert.Equal(t, "b-large", b.Icon)
}

func TestClick_VerticalPersistsYOffset(t *testing.T) {
	kv := mapStore{}
	m, _ := newTestMenu(t, testContainer(Vertical, "a", "b"), kv)

	require.NoError(t, m.Click(PointerEvent{Target: "a", OffsetX: 3, OffsetY: 12.5}))
	assert.Equal(t, "12.5", kv[OffsetKey("dock")])
}

func TestClick_Errors(t *testing.T) {
	m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b"), mapStore{})
	before := m.Items()

	err := m.Click(PointerEvent{Target: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))

	assert.ErrorIs(t, m.Click(PointerEvent{Target: GutterEndID}), ErrGutter)
	assert.Equal(t, before, m.Items())
}

func TestClick_StoreFailureIsNotFatal(t *testing.T) {
	m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b"), failingStore{})

	require.NoError(t, m.Click(PointerEvent{Target: "a", OffsetX: 4}))
	id, _ := m.ActiveItemID()
	assert.Equal(t, "a", id)
}

func TestReload_ReproducesClickShape(t *testing.T) {
	kv := mapStore{}
	first, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c", "d"), kv)
	require.NoError(t, first.Click(PointerEvent{Target: "c", OffsetX: 30}))

	second, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c", "d"), kv)

	id, ok := second.ActiveItemID()
	require.True(t, ok)
	assert.Equal(t, "c", id)
	assert.Equal(t, sizes(first), sizes(second))
	assert.Equal(t, first.Items(), second.Items())
}

func TestReload_ReproducesShapeAfterHoverAndClick(t *testing.T) {
	kv := mapStore{}
	first, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c", "d"), kv)
	require.NoError(t, first.PointerMove(PointerEvent{Target: "c", OffsetX: 30}))
	require.NoError(t, first.Click(PointerEvent{Target: "c", OffsetX: 30}))

	// offset 30 on the magnified 80px icon: the pointer sits left of center
	assert.InDelta(t, 72.04, item(t, first, "b").Size, eps)
	assert.InDelta(t, 60.2, item(t, first, "d").Size, eps)

	second, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c", "d"), kv)

	assert.Equal(t, sizes(first), sizes(second))
	assert.Equal(t, first.Items(), second.Items())
}

func TestReload_ReproducesVerticalShape(t *testing.T) {
	kv := mapStore{}
	first, _ := newTestMenu(t, testContainer(Vertical, "a", "b", "c"), kv)
	require.NoError(t, first.PointerMove(PointerEvent{Target: "b", OffsetX: 3, OffsetY: 20}))
	require.NoError(t, first.Click(PointerEvent{Target: "b", OffsetX: 3, OffsetY: 20}))
	require.Equal(t, "20", kv[OffsetKey("dock")])

	assert.InDelta(t, 76.84, item(t, first, "a").Size, eps)
	assert.InDelta(t, 55.08, item(t, first, "c").Size, eps)

	second, _ := newTestMenu(t, testContainer(Vertical, "a", "b", "c"), kv)

	assert.Equal(t, first.Items(), second.Items())
	assert.Greater(t, item(t, second, "a").Size, item(t, second, "c").Size)
}

func TestClick_MeasuresOffsetOnMagnifiedIcon(t *testing.T) {
	hovered, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), nil)
	require.NoError(t, hovered.PointerMove(PointerEvent{Target: "b", OffsetX: 30}))
	require.NoError(t, hovered.Click(PointerEvent{Target: "b", OffsetX: 30}))

	direct, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), nil)
	require.NoError(t, direct.Click(PointerEvent{Target: "b", OffsetX: 30}))

	assert.Equal(t, hovered.Items(), direct.Items())
}

func TestClick_DroppedDuringUpdate(t *testing.T) {
	kv := mapStore{}
	calls := 0
	var nestedErr error
	observer := func(m *Menu) {
		calls++
		if calls == 1 {
			nestedErr = m.Click(PointerEvent{Target: "c", OffsetX: 10})
		}
	}
	m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), kv, WithObserver(observer))

	require.NoError(t, m.PointerMove(PointerEvent{Target: "a", OffsetX: 24}))

	assert.NoError(t, nestedErr)
	_, ok := m.ActiveItemID()
	assert.False(t, ok, "dropped click must not activate")
	assert.Empty(t, kv)
	assert.Equal(t, DefaultMinSize, item(t, m, "c").Size)
}

func TestRestore_Precedence(t *testing.T) {
	t.Run("explicit active item wins over persisted state", func(t *testing.T) {
		kv := mapStore{ActiveKey("dock"): "a", OffsetKey("dock"): "10"}
		m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), kv, WithActiveItem("c"))

		id, _ := m.ActiveItemID()
		assert.Equal(t, "c", id)
		assert.Equal(t, DefaultMaxSize, item(t, m, "c").Size)
		assert.Equal(t, "c", kv[ActiveKey("dock")])
	})

	t.Run("explicit unknown item leaves menu inactive", func(t *testing.T) {
		m, _ := newTestMenu(t, testContainer(Horizontal, "a"), nil, WithActiveItem("zzz"))
		_, ok := m.ActiveItemID()
		assert.False(t, ok)
	})

	t.Run("stale persisted id means no active item", func(t *testing.T) {
		kv := mapStore{ActiveKey("dock"): "removed", OffsetKey("dock"): "10"}
		m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b"), kv)

		_, ok := m.ActiveItemID()
		assert.False(t, ok)
		for _, it := range m.Items() {
			if !it.Gutter {
				assert.Equal(t, DefaultMinSize, it.Size)
			}
		}
	})

	t.Run("malformed offset falls back to the middle of the icon", func(t *testing.T) {
		kv := mapStore{ActiveKey("dock"): "b", OffsetKey("dock"): "not-a-number"}
		m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), kv)

		ref, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), mapStore{}, WithActiveItem("b"))
		assert.Equal(t, sizes(ref), sizes(m))
	})

	t.Run("markup active marker used when nothing is persisted", func(t *testing.T) {
		c := testContainer(Horizontal, "a", "b", "c")
		c.Elements[2].Active = true
		m, _ := newTestMenu(t, c, mapStore{})

		id, _ := m.ActiveItemID()
		assert.Equal(t, "c", id)
	})

	t.Run("store read failure is not fatal", func(t *testing.T) {
		m, _ := newTestMenu(t, testContainer(Horizontal, "a"), failingStore{})
		_, ok := m.ActiveItemID()
		assert.False(t, ok)
	})
}

func TestActivate(t *testing.T) {
	m, _ := newTestMenu(t, testContainer(Horizontal, "a", "b", "c"), nil)

	require.NoError(t, m.Activate("b"))

	// offset 24 on a 48px icon: both neighbors at Transfer(0.5)
	assert.Equal(t, DefaultMaxSize, item(t, m, "b").Size)
	assert.InDelta(t, 66.28, item(t, m, "a").Size, eps)
	assert.InDelta(t, 66.28, item(t, m, "c").Size, eps)
	assert.ErrorIs(t, m.Activate("nope"), ErrNotFound)
}
