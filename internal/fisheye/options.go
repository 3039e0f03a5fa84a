package fisheye

import (
	"fmt"
	"time"
)

// Default widget constants.
const (
	DefaultMinSize        = 48.0
	DefaultMaxSize        = 80.0
	DefaultFocusedItems   = 1
	DefaultVerticalMargin = 0.0
	DefaultLabelHeight    = 16.0
	DefaultDecayStep      = 2.0
	DefaultDecayInterval  = 30 * time.Millisecond
)

// Options holds the tunables of a Menu. Use the With* functions to change
// them.
type Options struct {
	MinSize        float64
	MaxSize        float64
	FocusedItems   int
	VerticalMargin float64
	LabelHeight    float64
	DecayStep      float64
	DecayInterval  time.Duration

	scheduler  Scheduler
	activeItem string
	observer   func(*Menu)
}

// Option configures a Menu at construction.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		MinSize:        DefaultMinSize,
		MaxSize:        DefaultMaxSize,
		FocusedItems:   DefaultFocusedItems,
		VerticalMargin: DefaultVerticalMargin,
		LabelHeight:    DefaultLabelHeight,
		DecayStep:      DefaultDecayStep,
		DecayInterval:  DefaultDecayInterval,
	}
}

func (o Options) validate() error {
	if o.MinSize <= 0 {
		return fmt.Errorf("min size must be positive, got %v", o.MinSize)
	}
	if o.MaxSize <= o.MinSize {
		return fmt.Errorf("max size %v must be greater than min size %v", o.MaxSize, o.MinSize)
	}
	if o.FocusedItems < 1 {
		return fmt.Errorf("focused items must be at least 1, got %d", o.FocusedItems)
	}
	if o.DecayStep <= 0 {
		return fmt.Errorf("decay step must be positive, got %v", o.DecayStep)
	}
	if o.DecayInterval <= 0 {
		return fmt.Errorf("decay interval must be positive, got %v", o.DecayInterval)
	}
	if o.LabelHeight < 0 || o.VerticalMargin < 0 {
		return fmt.Errorf("label height and vertical margin must not be negative")
	}
	return nil
}

// WithMinSize sets the icon edge length in the non-magnified state.
func WithMinSize(px float64) Option {
	return func(o *Options) { o.MinSize = px }
}

// WithMaxSize sets the icon edge length of the focused item.
func WithMaxSize(px float64) Option {
	return func(o *Options) { o.MaxSize = px }
}

// WithFocusedItems sets how many neighbors on each side of the focused item
// are eased.
func WithFocusedItems(n int) Option {
	return func(o *Options) { o.FocusedItems = n }
}

// WithVerticalMargin sets the gap between items of a vertical menu.
func WithVerticalMargin(px float64) Option {
	return func(o *Options) { o.VerticalMargin = px }
}

// WithLabelHeight sets the height reserved for a label.
func WithLabelHeight(px float64) Option {
	return func(o *Options) { o.LabelHeight = px }
}

// WithDecayStep sets how many pixels each decay pass removes.
func WithDecayStep(px float64) Option {
	return func(o *Options) { o.DecayStep = px }
}

// WithDecayInterval sets the delay between decay passes.
func WithDecayInterval(d time.Duration) Option {
	return func(o *Options) { o.DecayInterval = d }
}

// WithScheduler sets the timer source for the decay animation. Without it the
// menu uses a ManualScheduler that only fires when advanced.
func WithScheduler(s Scheduler) Option {
	return func(o *Options) { o.scheduler = s }
}

// WithActiveItem activates the element with the given id at construction,
// taking precedence over any persisted state.
func WithActiveItem(id string) Option {
	return func(o *Options) { o.activeItem = id }
}

// WithObserver registers a callback invoked after every state change. It runs
// while the menu is updating, so pointer moves issued from it are dropped.
func WithObserver(fn func(*Menu)) Option {
	return func(o *Options) { o.observer = fn }
}
