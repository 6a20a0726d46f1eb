package styles

// ThemeTokens defines the semantic color roles for the editor chrome.
type ThemeTokens struct {
	Stage     string // area behind the preview element
	Text      string
	TextMuted string
	Accent    string
	Focus     string
	Track     string // unfilled slider track
	Code      string // generated CSS panel background
	CodeText  string
	Success   string
	Error     string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// ThemeAuto makes the chrome follow the element's dark mode flag.
const ThemeAuto = "auto"

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	LightTheme.Name:        LightTheme,
	DarkTheme.Name:         DarkTheme,
	HighContrastTheme.Name: HighContrastTheme,
}

// IsKnownTheme reports whether name is "auto" or a palette in Themes.
func IsKnownTheme(name string) bool {
	if name == ThemeAuto {
		return true
	}
	_, ok := Themes[name]
	return ok
}

// ThemeFor resolves the chrome palette for a configured theme name and the
// current dark mode flag.
func ThemeFor(name string, darkMode bool) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	if darkMode {
		return DarkTheme
	}
	return LightTheme
}
