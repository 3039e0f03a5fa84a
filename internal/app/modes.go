package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"fisheye/internal/fisheye"
	"fisheye/internal/tui/controller"
	"fisheye/internal/tui/design"
	"fisheye/internal/tui/model"
	"fisheye/internal/tui/view"
	"fisheye/pkg/logging"
)

// runStaticMode renders the dock once, as restored from the store.
func runStaticMode(ctx context.Context, config *Config, services *Services) error {
	logging.Debug("CLI", "Running in no-TUI mode.")

	var opts []fisheye.Option
	if config.ActiveItem != "" {
		opts = append(opts, fisheye.WithActiveItem(config.ActiveItem))
	}
	menu, err := services.Docks.BuildMenu(opts...)
	if err != nil {
		logging.Error("CLI", err, "Failed to build dock")
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	return RenderStatic(out, menu, services.Docks.Widget().CellWidth, services.Docks.Widget().CellHeight)
}

// RenderStatic writes the dock without the interactive chrome.
func RenderStatic(w io.Writer, menu *fisheye.Menu, cellWidth, cellHeight int) error {
	geometry := model.Geometry{CellWidth: cellWidth, CellHeight: cellHeight}
	_, err := fmt.Fprintln(w, view.RenderDock(view.ComputeLayout(menu, geometry), ""))
	return err
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(config.FisheyeConfig.GlobalSettings.ColorMode)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(LogLevel(config))
	defer logging.CloseTUIChannel()

	// Create and configure the TUI program
	p, err := controller.NewProgram(ctx, model.TUIConfig{
		DebugMode:  config.Debug,
		ColorMode:  config.FisheyeConfig.GlobalSettings.ColorMode,
		ActiveItem: config.ActiveItem,
		Source:     services.Docks,
	}, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
