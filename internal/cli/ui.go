package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/neumorph/internal/logging"
	"github.com/opencode-ai/neumorph/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive editor",
	Long:  "Launch the neumorph terminal editor: adjust sliders, pick a color, toggle dark mode and copy the CSS.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the editor requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or print CSS directly",
			NextStep: "neumorph css --help",
		}
	}

	cfg := currentConfig()
	logger := logging.Component("tui")

	available, err := loadPresets(cfg)
	if err != nil {
		// A broken preset file should not keep the editor from starting.
		logger.Warn().Err(err).Msg("presets unavailable")
	}

	return tui.RunWithConfig(tui.Config{
		Initial:   cfg.Defaults,
		Theme:     cfg.TUI.Theme,
		Step:      cfg.TUI.Step,
		BigStep:   cfg.TUI.BigStep,
		Presets:   available,
		Clipboard: os.Stderr,
		Logger:    logger,
	})
}
