package neumorph

import (
	"fmt"
	"strings"
)

// Shadow colors for each theme.
const (
	LightThemeDarkShadow  = "#bebebe"
	LightThemeLightShadow = "#ffffff"
	DarkThemeDarkShadow   = "#1a1a1a"
	DarkThemeLightShadow  = "#2c2c2c"
)

// ShadowPalette is the color pair used for the two shadow layers.
type ShadowPalette struct {
	Dark  string `json:"dark"`
	Light string `json:"light"`
}

// PaletteFor returns the shadow colors for the given theme flag.
func PaletteFor(darkMode bool) ShadowPalette {
	if darkMode {
		return ShadowPalette{Dark: DarkThemeDarkShadow, Light: DarkThemeLightShadow}
	}
	return ShadowPalette{Dark: LightThemeDarkShadow, Light: LightThemeLightShadow}
}

// Shadow is a single drop-shadow layer.
type Shadow struct {
	OffsetX int    `json:"offset_x"`
	OffsetY int    `json:"offset_y"`
	Blur    int    `json:"blur"`
	Color   string `json:"color"`
}

// String renders the layer as a box-shadow value.
func (s Shadow) String() string {
	return fmt.Sprintf("%dpx %dpx %dpx %s", s.OffsetX, s.OffsetY, s.Blur, s.Color)
}

// Style is the renderable descriptor of a neumorphic element.
type Style struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	BorderRadius    int    `json:"border_radius"`
	BackgroundColor string `json:"background_color"`
	DarkShadow      Shadow `json:"dark_shadow"`
	LightShadow     Shadow `json:"light_shadow"`
}

// Derive maps a parameter set to its style. Values outside the parameter
// domains pass through unchanged.
func Derive(p ParameterSet) Style {
	palette := PaletteFor(p.DarkMode)
	return Style{
		Width:           p.Size,
		Height:          p.Size,
		BorderRadius:    p.CornerRadius,
		BackgroundColor: p.Color,
		DarkShadow: Shadow{
			OffsetX: p.Intensity,
			OffsetY: p.Intensity,
			Blur:    p.Blur,
			Color:   palette.Dark,
		},
		LightShadow: Shadow{
			OffsetX: -p.Intensity,
			OffsetY: -p.Intensity,
			Blur:    p.Blur,
			Color:   palette.Light,
		},
	}
}

// BoxShadow renders both layers as a single box-shadow value.
func (s Style) BoxShadow() string {
	return s.DarkShadow.String() + ", " + s.LightShadow.String()
}

// cssLines holds the generated CSS block. Width and height end in commas and
// the shadow layers are split across two lines, matching the text users
// already copy from the generator.
func (s Style) cssLines() []string {
	return []string{
		fmt.Sprintf("width: %dpx,", s.Width),
		fmt.Sprintf("height: %dpx,", s.Height),
		fmt.Sprintf("box-shadow: %s,", s.DarkShadow),
		fmt.Sprintf("%s;", s.LightShadow),
		fmt.Sprintf("border-radius: %d%%;", s.BorderRadius),
		fmt.Sprintf("background-color: %s;", s.BackgroundColor),
	}
}

// CSS returns the generated CSS block, one declaration per line.
func (s Style) CSS() string {
	return strings.Join(s.cssLines(), "\n")
}

// CSSLine returns the generated CSS block on a single line.
func (s Style) CSSLine() string {
	return strings.Join(s.cssLines(), " ")
}

// InlineCSS renders the style as a valid inline style attribute value.
func (s Style) InlineCSS() string {
	declarations := []string{
		fmt.Sprintf("width: %dpx", s.Width),
		fmt.Sprintf("height: %dpx", s.Height),
		fmt.Sprintf("border-radius: %d%%", s.BorderRadius),
		fmt.Sprintf("background-color: %s", s.BackgroundColor),
		fmt.Sprintf("box-shadow: %s", s.BoxShadow()),
		"transition: all 0.3s ease",
	}
	return strings.Join(declarations, "; ") + ";"
}
