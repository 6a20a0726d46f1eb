// Package editor implements the editing surface around the style deriver:
// a mutable parameter record that clamps every change and re-derives.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/neumorph/internal/neumorph"
)

// ErrUnknownField is returned when a field name cannot be resolved.
var ErrUnknownField = errors.New("unknown field")

// Field identifies a numeric slider parameter.
type Field int

const (
	FieldSize Field = iota
	FieldCornerRadius
	FieldBlur
	FieldIntensity
)

// Fields lists the slider fields in display order.
func Fields() []Field {
	return []Field{FieldSize, FieldCornerRadius, FieldBlur, FieldIntensity}
}

func (f Field) String() string {
	switch f {
	case FieldSize:
		return "size"
	case FieldCornerRadius:
		return "corner_radius"
	case FieldBlur:
		return "blur"
	case FieldIntensity:
		return "intensity"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Label is the human-readable slider label.
func (f Field) Label() string {
	switch f {
	case FieldSize:
		return "Size"
	case FieldCornerRadius:
		return "Corner Radius"
	case FieldBlur:
		return "Blur"
	case FieldIntensity:
		return "Intensity"
	default:
		return f.String()
	}
}

// Unit is the CSS unit of the field.
func (f Field) Unit() string {
	if f == FieldCornerRadius {
		return "%"
	}
	return "px"
}

// Bounds returns the slider range of the field.
func (f Field) Bounds() neumorph.Range {
	switch f {
	case FieldSize:
		return neumorph.SizeRange
	case FieldCornerRadius:
		return neumorph.CornerRadiusRange
	case FieldBlur:
		return neumorph.BlurRange
	case FieldIntensity:
		return neumorph.IntensityRange
	default:
		return neumorph.Range{}
	}
}

// Clamp limits v to the field's slider range.
func (f Field) Clamp(v int) int {
	return f.Bounds().Clamp(v)
}

// ParseField resolves a field from its name or a common alias.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "size":
		return FieldSize, nil
	case "corner_radius", "corner-radius", "radius":
		return FieldCornerRadius, nil
	case "blur":
		return FieldBlur, nil
	case "intensity":
		return FieldIntensity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Value reads the field from a parameter set.
func (f Field) Value(p neumorph.ParameterSet) int {
	switch f {
	case FieldSize:
		return p.Size
	case FieldCornerRadius:
		return p.CornerRadius
	case FieldBlur:
		return p.Blur
	case FieldIntensity:
		return p.Intensity
	default:
		return 0
	}
}

func (f Field) set(p *neumorph.ParameterSet, v int) {
	switch f {
	case FieldSize:
		p.Size = v
	case FieldCornerRadius:
		p.CornerRadius = v
	case FieldBlur:
		p.Blur = v
	case FieldIntensity:
		p.Intensity = v
	}
}
