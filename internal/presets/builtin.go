package presets

import (
	"embed"
	"fmt"
	"io/fs"
)

// BuiltinSource is the Source of presets compiled into the binary.
const BuiltinSource = "builtin"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinPresets returns the presets bundled with the binary.
func LoadBuiltinPresets() ([]*Preset, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("open builtin presets: %w", err)
	}
	return loadPresetsFromFS(sub, func(string) string { return BuiltinSource })
}
