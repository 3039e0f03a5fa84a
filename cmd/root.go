package cmd

import (
	"context"
	"os"

	"fisheye/internal/app"

	"github.com/spf13/cobra"
)

// configPath points at a single configuration file instead of the layered
// lookup.
var configPath string

// debug enables verbose logging across the application.
var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fisheye",
	Short: "A magnifying dock menu for the terminal",
	Long: `fisheye shows a row or column of icons that grow as the mouse pointer
approaches them and shrink back when it leaves. Clicking an icon makes it
the active item, which is remembered across runs.

Docks are declared in ~/.config/fisheye/config.yaml and .fisheye/config.yaml
(or a single file passed with --config).`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown docks, unreadable config)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "fisheye version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps the application for a subcommand.
func newApplication(cfg *app.Config) (*app.Application, error) {
	cfg.ConfigPath = configPath
	cfg.Debug = debug
	return app.NewApplication(cfg)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func dockArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newStateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default: layered ~/.config/fisheye and ./.fisheye)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
