package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/neumorph/internal/clipboard"
	"github.com/opencode-ai/neumorph/internal/config"
	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/logging"
	"github.com/opencode-ai/neumorph/internal/neumorph"
	"github.com/opencode-ai/neumorph/internal/presets"
)

var (
	cssSize      int
	cssRadius    int
	cssBlur      int
	cssIntensity int
	cssColor     string
	cssDark      bool
	cssPreset    string
	cssOneLine   bool
	cssCopy      bool
)

func init() {
	rootCmd.AddCommand(cssCmd)
	addCSSFlags(cssCmd)
}

func addCSSFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cssSize, "size", neumorph.DefaultSize, "element size in px (100-400)")
	cmd.Flags().IntVar(&cssRadius, "radius", neumorph.DefaultCornerRadius, "corner radius in percent (0-50)")
	cmd.Flags().IntVar(&cssBlur, "blur", neumorph.DefaultBlur, "shadow blur in px (5-50)")
	cmd.Flags().IntVar(&cssIntensity, "intensity", neumorph.DefaultIntensity, "shadow offset in px (1-30)")
	cmd.Flags().StringVar(&cssColor, "color", neumorph.DefaultColor, "background color (#rgb or #rrggbb)")
	cmd.Flags().BoolVar(&cssDark, "dark", false, "use the dark shadow pair")
	cmd.Flags().StringVar(&cssPreset, "preset", "", "start from a named preset")
	cmd.Flags().BoolVar(&cssOneLine, "oneline", false, "print the CSS on a single line")
	cmd.Flags().BoolVar(&cssCopy, "copy", false, "also copy the CSS to the terminal clipboard (OSC52)")
}

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the CSS for a set of parameters",
	Long: "Print the generated CSS. Parameters start from the configured defaults,\n" +
		"then the --preset (if any), then any explicitly given flags. Values outside\n" +
		"the slider ranges are clamped.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()

		params, err := resolveCSSParams(cmd, cfg)
		if err != nil {
			return err
		}

		ed := editor.New(cfg.Defaults)
		if err := ed.Apply(params); err != nil {
			return err
		}

		logger := logging.Component("css")
		logger.Debug().
			Interface("params", ed.Params()).
			Msg("derived style")

		if cssCopy {
			if err := clipboard.Copy(cmd.ErrOrStderr(), ed.CSS()); err != nil {
				return err
			}
		}

		return writeCSSResult(cmd.OutOrStdout(), ed)
	},
}

// CSSResult is the payload written by `neumorph css --json`.
type CSSResult struct {
	Params  neumorph.ParameterSet `json:"params"`
	Style   neumorph.Style        `json:"style"`
	CSS     string                `json:"css"`
	CSSLine string                `json:"css_line"`
}

func newCSSResult(ed *editor.Editor) CSSResult {
	style := ed.Style()
	return CSSResult{
		Params:  ed.Params(),
		Style:   style,
		CSS:     style.CSS(),
		CSSLine: style.CSSLine(),
	}
}

func writeCSSResult(out io.Writer, ed *editor.Editor) error {
	if IsJSONOutput() {
		return WriteOutput(out, newCSSResult(ed))
	}
	text := ed.CSS()
	if cssOneLine {
		text = ed.Style().CSSLine()
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

// resolveCSSParams layers defaults, preset and explicitly set flags.
func resolveCSSParams(cmd *cobra.Command, cfg *config.Config) (neumorph.ParameterSet, error) {
	params := cfg.Defaults
	if cssPreset != "" {
		preset, err := presets.FindPreset(presetSearchPaths(cfg), cssPreset)
		if err != nil {
			return neumorph.ParameterSet{}, fmt.Errorf("preset %q: %w", cssPreset, err)
		}
		params = preset.Params
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		params.Size = cssSize
	}
	if flags.Changed("radius") {
		params.CornerRadius = cssRadius
	}
	if flags.Changed("blur") {
		params.Blur = cssBlur
	}
	if flags.Changed("intensity") {
		params.Intensity = cssIntensity
	}
	if flags.Changed("color") {
		params.Color = cssColor
	}
	if flags.Changed("dark") {
		params.DarkMode = cssDark
	}
	return params, nil
}
