// Package config loads neumorph configuration from YAML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/neumorph"
	"github.com/opencode-ai/neumorph/internal/tui/styles"
)

const (
	// EnvPrefix prefixes every environment override, e.g. NEUMORPH_PREVIEW_PORT.
	EnvPrefix = "NEUMORPH"

	DefaultPreviewHost = "127.0.0.1"
	DefaultPreviewPort = 7410
	DefaultStep        = 1
	DefaultBigStep     = 10
)

// Config is the full application configuration.
type Config struct {
	Defaults neumorph.ParameterSet `mapstructure:"defaults"`
	TUI      TUIConfig             `mapstructure:"tui"`
	Preview  PreviewConfig         `mapstructure:"preview"`
	Logging  LoggingConfig         `mapstructure:"logging"`
	Presets  PresetsConfig         `mapstructure:"presets"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// TUIConfig controls the terminal editor.
type TUIConfig struct {
	// Theme is "auto" (follow the dark mode toggle) or a fixed theme name.
	Theme   string `mapstructure:"theme"`
	Step    int    `mapstructure:"step"`
	BigStep int    `mapstructure:"big_step"`
}

// PreviewConfig controls the HTML preview server.
type PreviewConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// PresetsConfig lists extra preset directories searched before the defaults.
type PresetsConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: neumorph.DefaultParameterSet(),
		TUI: TUIConfig{
			Theme:   styles.ThemeAuto,
			Step:    DefaultStep,
			BigStep: DefaultBigStep,
		},
		Preview: PreviewConfig{
			Host: DefaultPreviewHost,
			Port: DefaultPreviewPort,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var configDirFunc = defaultConfigDirs

func defaultConfigDirs() []string {
	dirs := make([]string, 0, 2)
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "neumorph"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "neumorph"))
	}
	return dirs
}

// Load reads configuration from path, or from the first config.yaml found in
// the user config directories when path is empty. Environment variables
// override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range configDirFunc() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("defaults.size", cfg.Defaults.Size)
	v.SetDefault("defaults.corner_radius", cfg.Defaults.CornerRadius)
	v.SetDefault("defaults.blur", cfg.Defaults.Blur)
	v.SetDefault("defaults.intensity", cfg.Defaults.Intensity)
	v.SetDefault("defaults.color", cfg.Defaults.Color)
	v.SetDefault("defaults.dark_mode", cfg.Defaults.DarkMode)

	v.SetDefault("tui.theme", cfg.TUI.Theme)
	v.SetDefault("tui.step", cfg.TUI.Step)
	v.SetDefault("tui.big_step", cfg.TUI.BigStep)

	v.SetDefault("preview.host", cfg.Preview.Host)
	v.SetDefault("preview.port", cfg.Preview.Port)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)

	v.SetDefault("presets.dirs", cfg.Presets.Dirs)
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	for _, field := range editor.Fields() {
		value := field.Value(c.Defaults)
		bounds := field.Bounds()
		if !bounds.Contains(value) {
			return fmt.Errorf("defaults.%s must be between %d and %d, got %d", field, bounds.Min, bounds.Max, value)
		}
	}
	color, err := editor.NormalizeColor(c.Defaults.Color)
	if err != nil {
		return fmt.Errorf("defaults.color: %w", err)
	}
	c.Defaults.Color = color

	if !styles.IsKnownTheme(c.TUI.Theme) {
		return fmt.Errorf("tui.theme %q is not a known theme", c.TUI.Theme)
	}
	if c.TUI.Step < 1 {
		return fmt.Errorf("tui.step must be at least 1")
	}
	if c.TUI.BigStep < c.TUI.Step {
		return fmt.Errorf("tui.big_step must be at least tui.step")
	}

	if strings.TrimSpace(c.Preview.Host) == "" {
		return fmt.Errorf("preview.host must not be empty")
	}
	if c.Preview.Port < 1 || c.Preview.Port > 65535 {
		return fmt.Errorf("preview.port must be between 1 and 65535")
	}

	return nil
}
