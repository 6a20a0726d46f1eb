package presets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/neumorph/internal/neumorph"
)

const presetPattern = "**/*.{yaml,yml}"

// LoadPreset reads a single preset from disk.
func LoadPreset(path string) (*Preset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("preset path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	preset, err := parsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	preset.Source = path
	return preset, nil
}

// LoadPresetsFromDir loads every preset below dir, including nested
// directories. A missing directory yields no presets.
func LoadPresetsFromDir(dir string) ([]*Preset, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Preset{}, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Preset{}, nil
		}
		return nil, fmt.Errorf("stat presets dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("presets path %s is not a directory", dir)
	}

	return loadPresetsFromFS(os.DirFS(dir), func(match string) string {
		return filepath.Join(dir, filepath.FromSlash(match))
	})
}

// loadPresetsFromFS parses every preset file in fsys, sorted by preset name.
// source maps a matched path to the value recorded in Preset.Source.
func loadPresetsFromFS(fsys fs.FS, source func(match string) string) ([]*Preset, error) {
	matches, err := doublestar.Glob(fsys, presetPattern)
	if err != nil {
		return nil, fmt.Errorf("match presets: %w", err)
	}
	sort.Strings(matches)

	presets := make([]*Preset, 0, len(matches))
	for _, match := range matches {
		origin := source(match)
		data, err := fs.ReadFile(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", origin, err)
		}
		preset, err := parsePreset(data)
		if err != nil {
			return nil, fmt.Errorf("parse preset %s: %w", origin, err)
		}
		preset.Source = origin
		presets = append(presets, preset)
	}

	sort.SliceStable(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets, nil
}

func parsePreset(data []byte) (*Preset, error) {
	preset := Preset{Params: neumorph.DefaultParameterSet()}
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, err
	}

	preset.Name = strings.TrimSpace(preset.Name)
	if err := preset.Validate(); err != nil {
		return nil, err
	}

	return &preset, nil
}
