package cmd

import (
	"fmt"
	"os"

	"fisheye/internal/app"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// For mocking in tests
var isTerminal = term.IsTerminal

func newRunCmd() *cobra.Command {
	var activeItem string
	var noTUI bool

	cmd := &cobra.Command{
		Use:   "run [dock-id]",
		Short: "Show a dock in the interactive terminal UI",
		Long: `Shows the dock in a full screen terminal UI that follows the mouse.

Move the pointer over the icons to magnify them, click to activate one. The
keyboard works too: arrow keys move a focus that acts like the pointer,
enter activates, esc leaves the dock, y copies the active item id and ? shows
all keys.

Without a dock id the first configured dock is shown. When stdout is not a
terminal, or with --no-tui, the dock is rendered once and the command exits.
The configuration file is watched and the dock is rebuilt when it changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !noTUI && !isTerminal(int(os.Stdout.Fd())) {
				noTUI = true
			}

			cfg := app.NewConfig(noTUI, debug, dockArg(args), activeItem, configPath)
			cfg.Output = cmd.OutOrStdout()

			application, err := newApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer application.Close()

			return application.Run(commandContext(cmd))
		},
	}

	cmd.Flags().StringVar(&activeItem, "active", "", "Item to activate on start, overriding the remembered one")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Render the dock once instead of starting the TUI")
	return cmd
}
