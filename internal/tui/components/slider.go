// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/neumorph/internal/neumorph"
	"github.com/opencode-ai/neumorph/internal/tui/styles"
)

const (
	sliderLabelWidth = 14
	sliderValueWidth = 6
	minTrackWidth    = 8
)

// Slider is a labeled horizontal range control.
type Slider struct {
	Label   string
	Value   int
	Unit    string
	Bounds  neumorph.Range
	Focused bool
	// Pending is direct numeric input not yet committed.
	Pending string
}

// Render draws the slider in the given total width.
func (s Slider) Render(styleSet styles.Styles, width int) string {
	marker := "  "
	labelStyle := styleSet.Text
	if s.Focused {
		marker = styleSet.Focus.Render("› ")
		labelStyle = styleSet.Focus
	}

	label := labelStyle.Render(padRight(s.Label, sliderLabelWidth))

	value := fmt.Sprintf("%d%s", s.Value, s.Unit)
	valueStyle := styleSet.Muted
	if s.Pending != "" {
		value = s.Pending + "_"
		valueStyle = styleSet.Focus
	}
	valueText := valueStyle.Render(padLeft(value, sliderValueWidth))

	trackWidth := width - lipgloss.Width(marker) - sliderLabelWidth - sliderValueWidth - 2
	if trackWidth < minTrackWidth {
		trackWidth = minTrackWidth
	}

	return marker + label + s.track(styleSet, trackWidth) + "  " + valueText
}

func (s Slider) track(styleSet styles.Styles, width int) string {
	knob := knobPosition(s.Value, s.Bounds, width)
	filled := strings.Repeat("━", knob)
	rest := strings.Repeat("─", width-knob-1)
	return styleSet.SliderFill.Render(filled+"●") + styleSet.SliderTrack.Render(rest)
}

// knobPosition maps value onto [0, width-1].
func knobPosition(value int, bounds neumorph.Range, width int) int {
	if width <= 1 || bounds.Max <= bounds.Min {
		return 0
	}
	clamped := bounds.Clamp(value)
	return (clamped - bounds.Min) * (width - 1) / (bounds.Max - bounds.Min)
}

func padRight(value string, width int) string {
	if gap := width - lipgloss.Width(value); gap > 0 {
		return value + strings.Repeat(" ", gap)
	}
	return value
}

func padLeft(value string, width int) string {
	if gap := width - lipgloss.Width(value); gap > 0 {
		return strings.Repeat(" ", gap) + value
	}
	return value
}
