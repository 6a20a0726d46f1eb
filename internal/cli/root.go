// Package cli implements the neumorph command line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/neumorph/internal/config"
	"github.com/opencode-ai/neumorph/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	jsonOutput     bool
	nonInteractive bool

	appConfig  *config.Config
	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "neumorph",
	Short: "Neumorphism CSS generator",
	Long: "neumorph previews soft, dual-shadow \"neumorphic\" elements and generates their CSS.\n" +
		"Run `neumorph ui` for the interactive editor or `neumorph css` for one-shot output.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return initLogging(cmd, cfg)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/neumorph/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start interactive UIs")
}

// Execute runs the root command.
func Execute(version string) error {
	if version != "" {
		appVersion = version
	}
	return rootCmd.Execute()
}

func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return config.DefaultConfig()
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// initLogging sends logs to stderr, except for the TUI which owns the
// terminal: there logs go to the configured file or nowhere.
func initLogging(cmd *cobra.Command, cfg *config.Config) error {
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Output: os.Stderr,
	}
	if logLevel != "" {
		opts.Level = logLevel
	}
	if cmd == uiCmd && opts.File == "" {
		opts.Output = io.Discard
	}
	if err := logging.Init(opts); err != nil {
		return err
	}

	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", cfg.Source).
		Msg("configuration loaded")
	return nil
}
