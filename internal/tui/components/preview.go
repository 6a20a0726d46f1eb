package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/neumorph"
)

const (
	// pixels per terminal cell; cells are roughly twice as tall as wide.
	pixelsPerColumn  = 10
	pixelsPerRow     = 20
	roundedThreshold = 25
)

// PreviewSize returns the body size in cells for a style, shrunk to fit
// within maxWidth x maxHeight including border and shadows.
func PreviewSize(style neumorph.Style, maxWidth, maxHeight int) (int, int) {
	width := max(style.Width/pixelsPerColumn, 4)
	height := max(style.Height/pixelsPerRow, 2)
	reach := shadowReach(style)

	if maxWidth > 0 {
		if limit := maxWidth - 2 - 2*reach; width > limit {
			width = max(limit, 4)
		}
	}
	if maxHeight > 0 {
		if limit := maxHeight - 2 - 2*shadowRows(reach); height > limit {
			height = max(limit, 2)
		}
	}
	return width, height
}

// shadowReach is the horizontal shadow offset in cells.
func shadowReach(style neumorph.Style) int {
	offset := style.DarkShadow.OffsetX
	if offset < 0 {
		offset = -offset
	}
	return 1 + offset/15
}

func shadowRows(reach int) int {
	return max(reach/2, 1)
}

// RenderPreview draws an approximation of the element: a block in the
// background color, a rounded or square outline, the light shadow above and
// to the left, and the dark shadow below and to the right.
func RenderPreview(style neumorph.Style, maxWidth, maxHeight int) string {
	width, height := PreviewSize(style, maxWidth, maxHeight)
	reach := shadowReach(style)
	rows := shadowRows(reach)

	background := lipgloss.Color(style.BackgroundColor)
	labelColor := lipgloss.Color("#111111")
	if editor.IsDarkColor(style.BackgroundColor) {
		labelColor = lipgloss.Color("#F5F5F5")
	}

	border := lipgloss.NormalBorder()
	if style.BorderRadius >= roundedThreshold {
		border = lipgloss.RoundedBorder()
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Background(background).
		Foreground(labelColor).
		Border(border).
		BorderForeground(background).
		Render(style.BackgroundColor)

	bodyLines := strings.Split(body, "\n")
	boxWidth := lipgloss.Width(body)

	light := lipgloss.NewStyle().Background(lipgloss.Color(style.LightShadow.Color))
	dark := lipgloss.NewStyle().Background(lipgloss.Color(style.DarkShadow.Color))
	gap := strings.Repeat(" ", reach)

	lines := make([]string, 0, len(bodyLines)+2*rows)
	for i := 0; i < rows; i++ {
		lines = append(lines, light.Render(strings.Repeat(" ", boxWidth))+gap+gap)
	}
	for i, line := range bodyLines {
		left := gap
		if i < len(bodyLines)-rows {
			left = light.Render(gap)
		}
		right := gap
		if i >= rows {
			right = dark.Render(gap)
		}
		lines = append(lines, left+line+right)
	}
	for i := 0; i < rows; i++ {
		lines = append(lines, gap+gap+dark.Render(strings.Repeat(" ", boxWidth)))
	}

	return strings.Join(lines, "\n")
}
