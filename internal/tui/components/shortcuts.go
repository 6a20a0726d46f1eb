package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/neumorph/internal/tui/styles"
)

// Shortcut represents a keyboard-triggered action.
type Shortcut struct {
	Key     string // Keyboard key (e.g., "t", "c")
	Label   string // Display label (e.g., "Theme", "Copy")
	Enabled bool   // Whether the action is available
}

// RenderShortcutBar renders a horizontal bar of available shortcuts.
// Format: "t:Theme  c:Copy CSS  q:Quit"
func RenderShortcutBar(styleSet styles.Styles, shortcuts []Shortcut) string {
	if len(shortcuts) == 0 {
		return ""
	}

	var parts []string
	for _, shortcut := range shortcuts {
		if !shortcut.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		part := fmt.Sprintf("%s:%s", keyStyle.Render(shortcut.Key), styleSet.Muted.Render(shortcut.Label))
		parts = append(parts, part)
	}

	return strings.Join(parts, "  ")
}

// EditorShortcuts returns the shortcuts available in the editor. Preset
// cycling is offered only when presets are loaded.
func EditorShortcuts(hasPresets bool) []Shortcut {
	return []Shortcut{
		{Key: "↑↓", Label: "Select", Enabled: true},
		{Key: "←→", Label: "Adjust", Enabled: true},
		{Key: "0-9", Label: "Type value", Enabled: true},
		{Key: "t", Label: "Theme", Enabled: true},
		{Key: "c", Label: "Copy CSS", Enabled: true},
		{Key: "p", Label: "Preset", Enabled: hasPresets},
		{Key: "r", Label: "Reset", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}
