package fisheye

import "errors"

var (
	// ErrNotFound is returned when an event or call names an item that is not
	// part of the menu.
	ErrNotFound = errors.New("item not found")

	// ErrGutter is returned when a gutter item is clicked or activated.
	ErrGutter = errors.New("gutter items cannot be activated")

	// ErrNoItems is returned by New for a container without elements.
	ErrNoItems = errors.New("container has no items")

	// ErrInvalidContainer is returned by New for malformed element lists.
	ErrInvalidContainer = errors.New("invalid container")
)
