package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/neumorph/internal/tui/styles"
)

// ColorRow renders the background color control: a swatch and its hex value.
type ColorRow struct {
	Value   string
	Focused bool
	// Editor is the rendered text input while the color is being edited.
	Editor string
}

// Render draws the row.
func (c ColorRow) Render(styleSet styles.Styles) string {
	marker := "  "
	labelStyle := styleSet.Text
	if c.Focused {
		marker = styleSet.Focus.Render("› ")
		labelStyle = styleSet.Focus
	}

	swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Value)).Render("    ")
	value := styleSet.Muted.Render(c.Value)
	if c.Editor != "" {
		value = c.Editor
	}

	return marker + labelStyle.Render(padRight("Color", sliderLabelWidth)) + swatch + " " + value
}
