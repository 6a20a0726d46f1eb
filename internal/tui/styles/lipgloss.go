package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme       Theme
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Stage       lipgloss.Style
	Focus       lipgloss.Style
	SliderFill  lipgloss.Style
	SliderTrack lipgloss.Style
	CodeTitle   lipgloss.Style
	Code        lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles builds styles from the light theme.
func DefaultStyles() Styles {
	return BuildStyles(LightTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:       theme,
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Stage:       lipgloss.NewStyle().Background(lipgloss.Color(tokens.Stage)),
		Focus:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		SliderFill:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)),
		SliderTrack: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Track)),
		CodeTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(tokens.Code)).Bold(true).Padding(0, 1),
		Code:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.CodeText)).Background(lipgloss.Color(tokens.Code)).Padding(0, 1),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
	}
}
