// Package fisheye implements a magnifying dock menu controller.
//
// A Menu is attached to a Container holding an ordered list of elements, each
// with an icon and an optional label. As the pointer moves over an icon the
// icon grows to the maximum size and its neighbors grow along a cosine easing
// curve; when the pointer leaves, every magnified icon shrinks back to the
// minimum size in fixed steps driven by a chain of one-shot timers.
//
// # Items and gutters
//
// Construction wraps the container's elements with two gutter items, one at
// each end. Gutters are fixed at the maximum size and never activate, resize
// or show a label; they exist so the first and last real items have a
// neighbor to ease against when the pointer rests on the edge of the dock.
//
// # Sizes
//
// Sizes are measured in pixels. For the item under the pointer at offset o
// the normalized position is
//
//	deltaX = o / size(target)
//
// and a neighbor at distance d (1 <= d <= FocusedItems) receives
//
//	size = round2(MinSize + 1 + Transfer(x) * (MaxSize - MinSize))
//
// with x = (d-1+deltaX)/FocusedItems on the left and (d-deltaX)/FocusedItems
// on the right, clamped to MaxSize. Every other non-active item is reset to
// MinSize. deltaX is not clamped: offsets beyond the icon extrapolate the
// curve.
//
// # Active item
//
// At most one item is active. Clicking an item activates it and persists its
// id and the click offset to the injected Store under keys scoped by the
// container id, so a later Menu built over the same store reproduces the same
// magnification. Click offsets are measured against the magnified icon, the
// way the pointer sees it while pressing. Active items are excluded from
// easing and decay.
//
// # Events and timers
//
// A Menu is not safe for concurrent use. Hosts call PointerMove, PointerLeave
// and Click from a single goroutine, and the Scheduler must run its callbacks
// on that goroutine too. While a pointer move is being applied further pointer
// moves are dropped, not queued.
//
// # Usage
//
//	c := &fisheye.Container{
//	    ID:          "main",
//	    Orientation: fisheye.Horizontal,
//	    Elements: []fisheye.Element{
//	        {ID: "home", Label: "Home", Icon: "⌂"},
//	        {ID: "mail", Label: "Mail", Icon: "✉"},
//	    },
//	}
//	m, err := fisheye.New(c, store.NewMemory(), fisheye.WithScheduler(sched))
//	if err != nil {
//	    return err
//	}
//	_ = m.PointerMove(fisheye.PointerEvent{Target: "home", OffsetX: 12})
//	m.PointerLeave()
package fisheye
