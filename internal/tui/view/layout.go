package view

import (
	"math"

	"fisheye/internal/fisheye"
	"fisheye/internal/tui/model"
)

// Position of the dock inside the full screen view: the title takes the
// first row.
const (
	DockTop  = 1
	DockLeft = 0
)

// minBoxCells is the smallest bordered box that still has a content cell.
const minBoxCells = 3

// Box is the cell rectangle of one item, relative to the dock origin.
type Box struct {
	Item fisheye.Item
	X, Y int
	W, H int
}

// Layout places the items of a menu on the cell grid. Horizontal docks put
// boxes side by side, bottom aligned, with one label row below. Vertical
// docks stack boxes, centered on a column as wide as a magnified item, with
// labels to the right.
type Layout struct {
	Orientation fisheye.Orientation
	Geometry    model.Geometry
	Boxes       []Box
	// MaxCols and MaxRows are the cell size of a magnified item.
	MaxCols int
	MaxRows int
	Width   int
	Height  int
}

// Hit is a pointer position resolved against a Layout.
type Hit struct {
	Item    fisheye.Item
	OffsetX float64
	OffsetY float64
}

// ComputeLayout lays out menu for the given cell geometry.
func ComputeLayout(menu *fisheye.Menu, g model.Geometry) Layout {
	opts := menu.Options()
	l := Layout{
		Orientation: menu.Orientation(),
		Geometry:    g,
		MaxCols:     cells(opts.MaxSize, g.CellWidth),
		MaxRows:     cells(opts.MaxSize, g.CellHeight),
	}

	x, y := 0, 0
	for _, it := range menu.Items() {
		b := Box{Item: it, W: cells(it.Size, g.CellWidth), H: cells(it.Size, g.CellHeight)}
		if l.Orientation == fisheye.Vertical {
			b.X = int(math.Round(it.Offset / float64(g.CellWidth)))
			if b.X+b.W > l.MaxCols {
				b.X = l.MaxCols - b.W
			}
			b.Y = y
			y += b.H + int(math.Round(opts.VerticalMargin/float64(g.CellHeight)))
		} else {
			b.X = x
			b.Y = l.MaxRows - b.H
			x += b.W
		}
		l.Boxes = append(l.Boxes, b)
	}

	if l.Orientation == fisheye.Vertical {
		l.Width = l.MaxCols + 1 + labelCells(opts.LabelHeight, g.CellWidth)
		l.Height = y
	} else {
		l.Width = x
		l.Height = l.MaxRows + 1
	}
	return l
}

// HitTest resolves a cell relative to the dock origin. Hits are band based:
// on a horizontal dock any row of the icon area over an item's columns hits
// it, on a vertical dock any column of the icon area over its rows. The
// offset along the primary axis is the pointer position inside the item in
// pixels, scaled to the item's current size.
func (l Layout) HitTest(col, row int) (Hit, bool) {
	if l.Orientation == fisheye.Vertical {
		if col < 0 || col >= l.MaxCols {
			return Hit{}, false
		}
		for _, b := range l.Boxes {
			if row >= b.Y && row < b.Y+b.H {
				return Hit{
					Item:    b.Item,
					OffsetX: float64(col-b.X) * float64(l.Geometry.CellWidth),
					OffsetY: scaled(row-b.Y, b.H, b.Item.Size),
				}, true
			}
		}
		return Hit{}, false
	}

	if row < 0 || row >= l.MaxRows {
		return Hit{}, false
	}
	for _, b := range l.Boxes {
		if col >= b.X && col < b.X+b.W {
			return Hit{
				Item:    b.Item,
				OffsetX: scaled(col-b.X, b.W, b.Item.Size),
				OffsetY: float64(row-b.Y) * float64(l.Geometry.CellHeight),
			}, true
		}
	}
	return Hit{}, false
}

// Center returns the dock relative cell at the middle of the box of id.
func (l Layout) Center(id string) (col, row int, ok bool) {
	for _, b := range l.Boxes {
		if b.Item.ID == id {
			return b.X + b.W/2, b.Y + b.H/2, true
		}
	}
	return 0, 0, false
}

// cells converts a pixel size to a whole number of cells, never fewer than a
// bordered box needs.
func cells(px float64, cell int) int {
	n := int(math.Round(px / float64(cell)))
	if n < minBoxCells {
		return minBoxCells
	}
	return n
}

// labelCells is the label column width of vertical docks. Labels get the
// room of a few label heights, which keeps short names untruncated.
func labelCells(labelHeight float64, cell int) int {
	n := int(math.Round(4 * labelHeight / float64(cell)))
	if n < 8 {
		return 8
	}
	return n
}

// scaled maps cell i of n (the cell's center) into a pixel offset inside an
// item of size px.
func scaled(i, n int, px float64) float64 {
	return (float64(i) + 0.5) / float64(n) * px
}
