package editor

import (
	"github.com/opencode-ai/neumorph/internal/neumorph"
)

// Editor holds the parameters of one editing session together with the
// style derived from them. Every mutation clamps and re-derives, so Style and
// CSS always reflect the current parameters.
type Editor struct {
	params neumorph.ParameterSet
	style  neumorph.Style
}

// New creates an editor seeded with initial. Numeric fields are clamped and
// an invalid color falls back to the default color.
func New(initial neumorph.ParameterSet) *Editor {
	e := &Editor{}
	e.params = clampParams(initial)
	if color, err := NormalizeColor(initial.Color); err == nil {
		e.params.Color = color
	} else {
		e.params.Color = neumorph.DefaultColor
	}
	e.recompute()
	return e
}

// Params returns a copy of the current parameters.
func (e *Editor) Params() neumorph.ParameterSet {
	return e.params
}

// Style returns the derived style.
func (e *Editor) Style() neumorph.Style {
	return e.style
}

// CSS returns the generated CSS block.
func (e *Editor) CSS() string {
	return e.style.CSS()
}

// Value returns the current value of a slider field.
func (e *Editor) Value(f Field) int {
	return f.Value(e.params)
}

// Set assigns a slider field and returns the value actually stored.
func (e *Editor) Set(f Field, v int) int {
	clamped := f.Clamp(v)
	f.set(&e.params, clamped)
	e.recompute()
	return clamped
}

// Step moves a slider field by delta.
func (e *Editor) Step(f Field, delta int) int {
	return e.Set(f, e.Value(f)+delta)
}

// SetColor assigns the background color. On error the previous color is kept.
func (e *Editor) SetColor(value string) error {
	color, err := NormalizeColor(value)
	if err != nil {
		return err
	}
	e.params.Color = color
	e.recompute()
	return nil
}

// SetDarkMode selects the shadow color pair.
func (e *Editor) SetDarkMode(dark bool) {
	e.params.DarkMode = dark
	e.recompute()
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (e *Editor) ToggleDarkMode() bool {
	e.SetDarkMode(!e.params.DarkMode)
	return e.params.DarkMode
}

// Apply replaces all parameters at once. The color is validated before
// anything changes.
func (e *Editor) Apply(p neumorph.ParameterSet) error {
	color, err := NormalizeColor(p.Color)
	if err != nil {
		return err
	}
	e.params = clampParams(p)
	e.params.Color = color
	e.recompute()
	return nil
}

// Reset restores the default parameters.
func (e *Editor) Reset() {
	e.params = neumorph.DefaultParameterSet()
	e.recompute()
}

func (e *Editor) recompute() {
	e.style = neumorph.Derive(e.params)
}

func clampParams(p neumorph.ParameterSet) neumorph.ParameterSet {
	out := p
	for _, f := range Fields() {
		f.set(&out, f.Clamp(f.Value(p)))
	}
	return out
}
