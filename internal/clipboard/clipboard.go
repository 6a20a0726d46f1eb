// Package clipboard copies text to the terminal clipboard via OSC52.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Env looks up environment variables. os.Getenv satisfies it.
type Env func(key string) string

// Copy writes text to out as an OSC52 clipboard sequence, wrapped for tmux
// or screen when the environment indicates a multiplexer.
func Copy(out io.Writer, text string) error {
	return CopyWithEnv(out, text, os.Getenv)
}

// CopyWithEnv is Copy with an explicit environment lookup.
func CopyWithEnv(out io.Writer, text string, env Env) error {
	if out == nil {
		return fmt.Errorf("clipboard output is required")
	}
	if _, err := Sequence(text, env).WriteTo(out); err != nil {
		return fmt.Errorf("write clipboard sequence: %w", err)
	}
	return nil
}

// Sequence builds the escape sequence for text.
func Sequence(text string, env Env) osc52.Sequence {
	seq := osc52.New(text)
	if env == nil {
		return seq
	}
	switch {
	case env("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(env("TERM"), "screen"):
		seq = seq.Screen()
	}
	return seq
}
