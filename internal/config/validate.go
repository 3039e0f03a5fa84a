package config

import (
	"errors"
	"fmt"
	"strings"

	"fisheye/internal/fisheye"
)

// Validate checks the merged configuration. All problems are reported
// together.
func (c FisheyeConfig) Validate() error {
	var errs []error

	w := c.Widget
	if w.MinSize <= 0 {
		errs = append(errs, fmt.Errorf("widget.minSize must be positive"))
	}
	if w.MaxSize <= w.MinSize {
		errs = append(errs, fmt.Errorf("widget.maxSize (%v) must be greater than widget.minSize (%v)", w.MaxSize, w.MinSize))
	}
	if w.FocusedItems < 1 {
		errs = append(errs, fmt.Errorf("widget.focusedItems must be at least 1"))
	}
	if w.DecayStep <= 0 {
		errs = append(errs, fmt.Errorf("widget.decayStep must be positive"))
	}
	if w.DecayInterval <= 0 {
		errs = append(errs, fmt.Errorf("widget.decayInterval must be positive"))
	}
	if w.CellWidth <= 0 || w.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("widget.cellWidth and widget.cellHeight must be positive"))
	}

	switch strings.ToLower(c.Store.Backend) {
	case "", "memory", "file", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("store.backend %q is not one of memory, file, sqlite", c.Store.Backend))
	}

	if len(c.Docks) == 0 {
		errs = append(errs, fmt.Errorf("at least one dock must be defined"))
	}
	docks := make(map[string]struct{})
	for i, d := range c.Docks {
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("docks[%d]: id is empty", i))
		} else if _, dup := docks[d.ID]; dup {
			errs = append(errs, fmt.Errorf("docks[%d]: duplicate id %q", i, d.ID))
		}
		docks[d.ID] = struct{}{}

		if _, err := fisheye.ParseOrientation(d.Orientation); err != nil {
			errs = append(errs, fmt.Errorf("dock %q: %w", d.ID, err))
		}
		if len(d.Items) == 0 {
			errs = append(errs, fmt.Errorf("dock %q: no items", d.ID))
		}

		items := make(map[string]struct{})
		active := 0
		for j, it := range d.Items {
			switch {
			case it.ID == "":
				errs = append(errs, fmt.Errorf("dock %q: items[%d]: id is empty", d.ID, j))
			case fisheye.IsReservedID(it.ID):
				errs = append(errs, fmt.Errorf("dock %q: item id %q is reserved", d.ID, it.ID))
			default:
				if _, dup := items[it.ID]; dup {
					errs = append(errs, fmt.Errorf("dock %q: duplicate item id %q", d.ID, it.ID))
				}
				items[it.ID] = struct{}{}
			}
			if it.Active {
				active++
			}
		}
		if active > 1 {
			errs = append(errs, fmt.Errorf("dock %q: %d items marked active, at most one allowed", d.ID, active))
		}
	}

	return errors.Join(errs...)
}
