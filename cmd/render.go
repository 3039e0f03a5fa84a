package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fisheye/internal/app"
	"fisheye/internal/fisheye"
	"fisheye/internal/store"
	"fisheye/internal/tui/view"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	hovers []string
	clicks []string
	leave  bool
	ticks  int
	trace  bool
	memory bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [dock-id]",
		Short: "Render a dock after scripted pointer events, without a TUI",
		Long: `Builds the dock as it would appear on start, applies scripted pointer
events and prints the result followed by the item sizes in pixels.

Events are applied in this order: every --hover, every --click, --leave,
then --ticks decay steps. Pointer positions are written as id:offset, the
offset in pixels along the dock axis. --ticks -1 runs the decay until it
settles.

Clicks are persisted to the configured store unless --memory is given.`,
		Example: `  fisheye render main --hover mail:24
  fisheye render main --click notes:10 --memory
  fisheye render --hover home:0 --leave --ticks 3 --trace`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.NewConfig(true, debug, dockArg(args), "", configPath)
			if opts.memory {
				cfg.StoreBackend = store.BackendMemory
			}
			application, err := newApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer application.Close()

			return runRender(cmd.OutOrStdout(), application.Services().Docks, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.hovers, "hover", nil, "Move the pointer over an item, as id:offset (repeatable)")
	cmd.Flags().StringArrayVar(&opts.clicks, "click", nil, "Click an item, as id:offset (repeatable)")
	cmd.Flags().BoolVar(&opts.leave, "leave", false, "Move the pointer off the dock")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "Decay steps to run after the events, -1 until settled")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Print the item sizes after every update")
	cmd.Flags().BoolVar(&opts.memory, "memory", false, "Do not persist clicks")
	return cmd
}

func runRender(w io.Writer, docks *app.ConfigAdapter, opts renderOptions) error {
	sched := fisheye.NewManualScheduler()
	menuOpts := []fisheye.Option{fisheye.WithScheduler(sched)}
	if opts.trace {
		menuOpts = append(menuOpts, fisheye.WithObserver(func(m *fisheye.Menu) {
			fmt.Fprintf(w, "[%6s] %s\n", sched.Now(), view.SizeVector(m))
		}))
	}

	menu, err := docks.BuildMenu(menuOpts...)
	if err != nil {
		return err
	}

	for _, h := range opts.hovers {
		ev, err := parsePointerArg(h)
		if err != nil {
			return err
		}
		if err := menu.PointerMove(ev); err != nil {
			return fmt.Errorf("hover %q: %w", h, err)
		}
	}
	for _, c := range opts.clicks {
		ev, err := parsePointerArg(c)
		if err != nil {
			return err
		}
		if err := menu.Click(ev); err != nil {
			return fmt.Errorf("click %q: %w", c, err)
		}
	}
	if opts.leave {
		menu.PointerLeave()
	}
	switch {
	case opts.ticks < 0:
		sched.Drain(0)
	default:
		for i := 0; i < opts.ticks; i++ {
			sched.Advance(menu.Options().DecayInterval)
		}
	}

	widget := docks.Widget()
	if err := app.RenderStatic(w, menu, widget.CellWidth, widget.CellHeight); err != nil {
		return err
	}
	active, _ := menu.ActiveItemID()
	_, err = fmt.Fprintf(w, "sizes:  %s\nactive: %s\ndecay:  %s\n", view.SizeVector(menu), active, menu.DecayState())
	return err
}

// parsePointerArg parses "id:offset". The offset is used on both axes.
func parsePointerArg(s string) (fisheye.PointerEvent, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return fisheye.PointerEvent{}, fmt.Errorf("invalid pointer %q: want id:offset", s)
	}
	offset, err := strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return fisheye.PointerEvent{}, fmt.Errorf("invalid offset in %q: %w", s, err)
	}
	return fisheye.PointerEvent{Target: s[:i], OffsetX: offset, OffsetY: offset}, nil
}
