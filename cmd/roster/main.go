package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alfredjeanlab/classkit/internal/config"
	"github.com/alfredjeanlab/classkit/internal/model"
	"github.com/alfredjeanlab/classkit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:          "roster",
	Short:        "Print the student database",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
		logger.Debug("config loaded", "path", cfg.Path)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		roster := model.DefaultRoster()
		logger.Debug("roster loaded", "records", roster.Len())

		if jsonOutput {
			logger.Debug("rendering roster", "format", "json")
			return printRosterJSON(cmd.OutOrStdout(), roster)
		}
		logger.Debug("rendering roster", "format", "text")
		return printRosterText(cmd.OutOrStdout(), roster)
	},
}

// helpColorMode resolves the color mode for help output, which runs without
// PersistentPreRunE. An unreadable config falls back to auto.
func helpColorMode() config.ColorMode {
	c, err := config.Load()
	if err != nil {
		return config.ColorAuto
	}
	return c.Color
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.SetHelpFunc(ui.HelpFunc(helpColorMode))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
