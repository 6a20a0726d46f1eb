package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/neumorph/internal/tui/styles"
)

// RenderCSSPanel renders the generated CSS block under a heading. The CSS
// text is shown verbatim; width only pads the panel.
func RenderCSSPanel(styleSet styles.Styles, css string, width int) string {
	lines := strings.Split(css, "\n")
	inner := lipgloss.Width("Generated CSS")
	for _, line := range lines {
		inner = max(inner, lipgloss.Width(line))
	}
	if width > 2 {
		inner = max(inner, width-2)
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, styleSet.CodeTitle.Render(padRight("Generated CSS", inner)))
	for _, line := range lines {
		out = append(out, styleSet.Code.Render(padRight(line, inner)))
	}
	return strings.Join(out, "\n")
}
