// Package presets provides named parameter sets loaded from YAML files.
package presets

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/neumorph"
)

var (
	// ErrPresetNameRequired is returned when a preset has no name.
	ErrPresetNameRequired = errors.New("preset name is required")
	// ErrPresetNotFound is returned when a preset is not found.
	ErrPresetNotFound = errors.New("preset not found")
)

// ValidationError describes an invalid field in a preset.
type ValidationError struct {
	Preset  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Preset != "" {
		return fmt.Sprintf("preset %s: %s: %s", e.Preset, e.Field, e.Message)
	}
	return fmt.Sprintf("preset %s: %s", e.Field, e.Message)
}

// Preset is a named parameter set. Fields missing from the file keep their
// default values.
type Preset struct {
	Name        string                `yaml:"name" json:"name"`
	Description string                `yaml:"description" json:"description,omitempty"`
	Params      neumorph.ParameterSet `yaml:",inline" json:"params"`
	Source      string                `yaml:"-" json:"source"` // file path or "builtin"
}

// Validate checks that the preset is usable by the editor without clamping.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return ErrPresetNameRequired
	}
	for _, field := range editor.Fields() {
		value := field.Value(p.Params)
		bounds := field.Bounds()
		if !bounds.Contains(value) {
			return &ValidationError{
				Preset:  p.Name,
				Field:   field.String(),
				Message: fmt.Sprintf("%d is outside %d..%d", value, bounds.Min, bounds.Max),
			}
		}
	}
	color, err := editor.NormalizeColor(p.Params.Color)
	if err != nil {
		return &ValidationError{Preset: p.Name, Field: "color", Message: err.Error()}
	}
	p.Params.Color = color
	return nil
}

// Style derives the preset's style.
func (p *Preset) Style() neumorph.Style {
	return neumorph.Derive(p.Params)
}
