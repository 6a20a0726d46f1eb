package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/neumorph/internal/config"
	"github.com/opencode-ai/neumorph/internal/presets"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List and inspect presets",
	Long:  "Presets are named parameter sets read from YAML files in the preset search paths, plus the built-in set.",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadPresets(currentConfig())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, items)
		}

		if len(items) == 0 {
			_, err := fmt.Fprintln(out, "No presets found.")
			return err
		}

		return writeTable(out, presetTableHeaders, presetRows(items))
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a preset's CSS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := presets.FindPreset(presetSearchPaths(currentConfig()), args[0])
		if err != nil {
			return fmt.Errorf("preset %q: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			style := preset.Style()
			return WriteOutput(out, CSSResult{
				Params:  preset.Params,
				Style:   style,
				CSS:     style.CSS(),
				CSSLine: style.CSSLine(),
			})
		}

		fmt.Fprintf(out, "# %s (%s)\n", preset.Name, preset.Source)
		if preset.Description != "" {
			fmt.Fprintf(out, "# %s\n", preset.Description)
		}
		_, err = fmt.Fprintln(out, preset.Style().CSS())
		return err
	},
}

func presetSearchPaths(cfg *config.Config) []string {
	projectDir, err := os.Getwd()
	if err != nil {
		projectDir = ""
	}
	return presets.PresetSearchPaths(projectDir, cfg.Presets.Dirs)
}

func loadPresets(cfg *config.Config) ([]*presets.Preset, error) {
	return presets.LoadPresetsFromSearchPaths(presetSearchPaths(cfg))
}
