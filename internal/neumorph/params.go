// Package neumorph derives neumorphic element styles and their CSS text.
package neumorph

// Default parameter values for a fresh editing session.
const (
	DefaultSize         = 200
	DefaultCornerRadius = 50
	DefaultBlur         = 20
	DefaultIntensity    = 10
	DefaultColor        = "#e0e0e0"
)

// Range is an inclusive integer domain.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Parameter domains. The deriver itself never enforces them.
var (
	SizeRange         = Range{Min: 100, Max: 400}
	CornerRadiusRange = Range{Min: 0, Max: 50}
	BlurRange         = Range{Min: 5, Max: 50}
	IntensityRange    = Range{Min: 1, Max: 30}
)

// ParameterSet holds the user-adjustable inputs of a neumorphic element.
type ParameterSet struct {
	Size         int    `json:"size" yaml:"size" mapstructure:"size"`
	CornerRadius int    `json:"corner_radius" yaml:"corner_radius" mapstructure:"corner_radius"`
	Blur         int    `json:"blur" yaml:"blur" mapstructure:"blur"`
	Intensity    int    `json:"intensity" yaml:"intensity" mapstructure:"intensity"`
	Color        string `json:"color" yaml:"color" mapstructure:"color"`
	DarkMode     bool   `json:"dark_mode" yaml:"dark_mode" mapstructure:"dark_mode"`
}

// DefaultParameterSet returns the starting parameters of an editing session.
func DefaultParameterSet() ParameterSet {
	return ParameterSet{
		Size:         DefaultSize,
		CornerRadius: DefaultCornerRadius,
		Blur:         DefaultBlur,
		Intensity:    DefaultIntensity,
		Color:        DefaultColor,
		DarkMode:     false,
	}
}

// InDomain reports whether every numeric field lies within its domain.
func (p ParameterSet) InDomain() bool {
	return SizeRange.Contains(p.Size) &&
		CornerRadiusRange.Contains(p.CornerRadius) &&
		BlurRange.Contains(p.Blur) &&
		IntensityRange.Contains(p.Intensity)
}
