package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for values that are not hex RGB colors.
var ErrInvalidColor = errors.New("invalid hex color")

// NormalizeColor parses a hex color ("#rgb" or "#rrggbb", leading '#'
// optional) and returns it as lowercase "#rrggbb".
func NormalizeColor(value string) (string, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidColor)
	}
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}
	if len(raw) != 4 && len(raw) != 7 || !isHexDigits(raw[1:]) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	c, err := colorful.Hex(strings.ToLower(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return c.Hex(), nil
}

// isHexDigits guards colorful.Hex, whose Sscanf parsing skips spaces.
func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsDarkColor reports whether text on the color should be light.
func IsDarkColor(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l < 0.55
}
