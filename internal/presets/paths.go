package presets

import (
	"os"
	"path/filepath"
	"strings"
)

// PresetSearchPaths returns preset directories in precedence order: extra
// directories from the config, the project's .neumorph/presets, then the
// user's config directory ($XDG_CONFIG_HOME or ~/.config).
func PresetSearchPaths(projectDir string, extra []string) []string {
	paths := make([]string, 0, len(extra)+2)
	for _, dir := range extra {
		if dir = strings.TrimSpace(dir); dir != "" {
			paths = append(paths, dir)
		}
	}

	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".neumorph", "presets"))
	}
	if dir := userPresetDir(); dir != "" {
		paths = append(paths, dir)
	}
	return paths
}

func userPresetDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "neumorph", "presets")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "neumorph", "presets")
	}
	return ""
}

// catalog keeps the first preset seen under each name, in insertion order.
type catalog struct {
	byName map[string]*Preset
	order  []*Preset
}

func (c *catalog) add(items []*Preset) {
	for _, preset := range items {
		if _, shadowed := c.byName[preset.Name]; shadowed {
			continue
		}
		c.byName[preset.Name] = preset
		c.order = append(c.order, preset)
	}
}

// LoadPresetsFromSearchPaths loads presets from paths. A file preset hides
// any later preset of the same name, builtins included.
func LoadPresetsFromSearchPaths(paths []string) ([]*Preset, error) {
	found := catalog{byName: make(map[string]*Preset)}

	for _, dir := range paths {
		items, err := LoadPresetsFromDir(dir)
		if err != nil {
			return nil, err
		}
		found.add(items)
	}

	builtins, err := LoadBuiltinPresets()
	if err != nil {
		return nil, err
	}
	found.add(builtins)

	return found.order, nil
}

// FindPreset returns the preset visible under name.
func FindPreset(paths []string, name string) (*Preset, error) {
	items, err := LoadPresetsFromSearchPaths(paths)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for _, preset := range items {
		if preset.Name == name {
			return preset, nil
		}
	}
	return nil, ErrPresetNotFound
}
