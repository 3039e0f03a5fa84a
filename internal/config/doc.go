// Package config provides configuration management for fisheye.
//
// This package implements a layered configuration system that allows users to
// customize docks and widget behavior through YAML files. Configuration is
// loaded from multiple sources and merged in a specific order, with later
// sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - Stock widget sizes and one sample dock named "main"
//
//  2. User Configuration (~/.config/fisheye/config.yaml)
//     - Personal docks and preferences
//
//  3. Project Configuration (./.fisheye/config.yaml)
//     - Docks shared with a team via version control
//
// A single file can be used instead of the user and project layers with
// LoadConfigFromPath; it is still layered over the defaults.
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info        # debug, info, warn, error
//	  colorMode: auto       # auto, dark, light
//	widget:
//	  minSize: 48           # icon edge in pixels when at rest
//	  maxSize: 80           # icon edge in pixels under the pointer
//	  focusedItems: 1       # eased neighbors on each side
//	  verticalMargin: 0
//	  labelHeight: 16
//	  decayStep: 2
//	  decayInterval: 30ms
//	  cellWidth: 8          # pixels per terminal column
//	  cellHeight: 16        # pixels per terminal row
//	store:
//	  backend: file         # memory, file, sqlite
//	  path: ""              # defaults to ~/.config/fisheye/state.yaml (or state.db)
//	docks:
//	  - id: main
//	    orientation: horizontal
//	    items:
//	      - id: home
//	        label: Home
//	        icon: "⌂"
//	        iconLarge: "⌂"
//	        iconSmall: "·"
//	        active: false
//
// # Merging
//
// Scalar settings override only when set (non-zero). Docks are matched by id:
// an overlay dock replaces the base dock with the same id, new docks are
// appended in declaration order.
//
// # Validation
//
// The merged result is validated before it is returned: sizes must be
// positive with maxSize above minSize, dock and item ids must be unique and
// must not use the reserved gutter ids, orientations must be horizontal or
// vertical, and at most one item per dock may be marked active.
package config
