package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alfredjeanlab/classkit/internal/config"
	"github.com/alfredjeanlab/classkit/internal/logic"
	"github.com/alfredjeanlab/classkit/internal/ui"
	"github.com/spf13/cobra"
)

// Fixed sample inputs for the simulator.
const (
	inputA = 1
	inputB = 0
)

var (
	jsonOutput bool
	noColor    bool

	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:          "gates",
	Short:        "Logic gate simulator",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if noColor {
			cfg.Color = config.ColorNever
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
		logger.Debug("config loaded", "path", cfg.Path, "color", cfg.Color)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b := logic.FromInt(inputA), logic.FromInt(inputB)
		logger.Debug("simulating", "a", a, "b", b)
		result := logic.Simulate(a, b)

		if jsonOutput {
			return printSimulationJSON(cmd.OutOrStdout(), result)
		}
		return printSimulationText(cmd.OutOrStdout(), result)
	},
}

// styler returns the color styler for the current command's stdout.
func styler(cmd *cobra.Command) ui.Styler {
	mode := config.ColorAuto
	if cfg != nil {
		mode = cfg.Color
	}
	return ui.NewStyler(ui.ShouldUseColor(mode, cmd.OutOrStdout()))
}

// helpColorMode resolves the color mode for help output, which runs without
// PersistentPreRunE. An unreadable config falls back to auto.
func helpColorMode() config.ColorMode {
	if noColor {
		return config.ColorNever
	}
	c, err := config.Load()
	if err != nil {
		return config.ColorAuto
	}
	return c.Color
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.SetHelpFunc(ui.HelpFunc(helpColorMode))

	rootCmd.AddCommand(tableCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
