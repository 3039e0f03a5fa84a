package fisheye

import (
	"fmt"
	"strings"
)

// Orientation is the primary axis of a menu.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String makes Orientation satisfy the fmt.Stringer interface.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation converts "horizontal" or "vertical" (case-insensitive) into
// an Orientation. An empty string means Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// Reserved ids of the two gutter items.
const (
	GutterStartID = "gutter-start"
	GutterEndID   = "gutter-end"
)

// IsReservedID reports whether id is used by a gutter item.
func IsReservedID(id string) bool {
	return id == GutterStartID || id == GutterEndID
}

// Element is one entry of a Container as declared by the host.
type Element struct {
	ID    string
	Label string
	// Icon is the glyph shown before any variant swap.
	Icon string
	// IconLarge and IconSmall are optional; when empty no swap happens for
	// that variant.
	IconLarge string
	IconSmall string
	// Active marks the element as active when nothing else selects one.
	Active bool
}

// Container is the host-side element a Menu attaches to. New writes the
// layout reservation and the initialized marker back into it.
type Container struct {
	ID          string
	Orientation Orientation
	Elements    []Element

	// MinWidth and MinHeight are raised by New to fit the fully magnified
	// menu.
	MinWidth  float64
	MinHeight float64

	menu *Menu
}

// Initialized reports whether a Menu is already bound to the container.
func (c *Container) Initialized() bool {
	return c.menu != nil
}

// Menu returns the Menu bound to the container, or nil.
func (c *Container) Menu() *Menu {
	return c.menu
}

func (c *Container) validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: container id is empty", ErrInvalidContainer)
	}
	if len(c.Elements) == 0 {
		return ErrNoItems
	}
	seen := make(map[string]struct{}, len(c.Elements))
	for i, el := range c.Elements {
		if el.ID == "" {
			return fmt.Errorf("%w: element %d has no id", ErrInvalidContainer, i)
		}
		if IsReservedID(el.ID) {
			return fmt.Errorf("%w: element id %q is reserved", ErrInvalidContainer, el.ID)
		}
		if _, dup := seen[el.ID]; dup {
			return fmt.Errorf("%w: duplicate element id %q", ErrInvalidContainer, el.ID)
		}
		seen[el.ID] = struct{}{}
	}
	return nil
}
