package fisheye

// Item is the rendered state of one menu entry.
type Item struct {
	ID    string
	Label string
	// LabelVisible is true while the label is shown.
	LabelVisible bool

	// Icon is the glyph currently displayed.
	Icon      string
	IconLarge string
	IconSmall string

	// Size is the current edge length in pixels.
	Size float64
	// Offset is the lateral centering offset of a vertical menu.
	Offset float64

	Gutter bool
	Active bool
}

// useLarge swaps to the large variant if one is declared.
func (it *Item) useLarge() {
	if it.IconLarge != "" {
		it.Icon = it.IconLarge
	}
}

// useSmall swaps to the small variant if one is declared.
func (it *Item) useSmall() {
	if it.IconSmall != "" {
		it.Icon = it.IconSmall
	}
}

// swapFor picks the variant for size. A size exactly at mid keeps the current
// glyph.
func (it *Item) swapFor(size, mid float64) {
	switch {
	case size > mid:
		it.useLarge()
	case size < mid:
		it.useSmall()
	}
}

func newItem(el Element, size float64) Item {
	return Item{
		ID:        el.ID,
		Label:     el.Label,
		Icon:      el.Icon,
		IconLarge: el.IconLarge,
		IconSmall: el.IconSmall,
		Size:      size,
	}
}

func newGutter(id string, size float64) Item {
	return Item{ID: id, Size: size, Gutter: true}
}
