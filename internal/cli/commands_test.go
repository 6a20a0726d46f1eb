package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/presets"
)

// resetFlags restores every flag to its default so repeated executions of
// rootCmd do not see values or Changed state from earlier runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// cliEnv isolates a command run: a config file pointing at presetDir and an
// empty user config home.
type cliEnv struct {
	configPath string
	presetDir  string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg"))
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	env := cliEnv{
		configPath: filepath.Join(root, "config.yaml"),
		presetDir:  filepath.Join(root, "presets"),
	}
	if err := os.MkdirAll(env.presetDir, 0o755); err != nil {
		t.Fatalf("mkdir presets: %v", err)
	}
	config := "logging:\n  level: error\npresets:\n  dirs:\n    - " + env.presetDir + "\n"
	if err := os.WriteFile(env.configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func (e cliEnv) writePreset(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(e.presetDir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

// run executes the root command and returns stdout and stderr.
func (e cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCSSCommandClampsFlags(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "css", "--size", "900", "--blur", "1", "--intensity", "40")
	require.NoError(t, err)
	require.Contains(t, out, "width: 400px,\nheight: 400px,\n")
	require.Contains(t, out, "box-shadow: 30px 30px 5px #bebebe,\n-30px -30px 5px #ffffff;\n")
}

func TestCSSCommandOneLine(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "css", "--oneline")
	require.NoError(t, err)
	require.Equal(t, "width: 200px, height: 200px, box-shadow: 10px 10px 20px #bebebe, -10px -10px 20px #ffffff; border-radius: 50%; background-color: #e0e0e0;\n", out)
}

func TestCSSCommandRejectsInvalidColor(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "css", "--color", "nope")
	if !errors.Is(err, editor.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	require.Empty(t, out)
}

func TestCSSCommandCopiesToClipboard(t *testing.T) {
	env := newCLIEnv(t)

	out, errOut, err := env.run(t, "css", "--copy", "--dark")
	require.NoError(t, err)
	require.Contains(t, out, "#1a1a1a")

	require.True(t, strings.HasPrefix(errOut, "\x1b]52;c;"), "stderr = %q", errOut)
	payload := base64.StdEncoding.EncodeToString([]byte(strings.TrimSuffix(out, "\n")))
	require.Contains(t, errOut, payload)
}

func TestCSSCommandJSONFromPreset(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "--json", "css", "--preset", "pill", "--dark")
	require.NoError(t, err)

	var result CSSResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 120, result.Params.Size)
	require.True(t, result.Params.DarkMode)
	require.Equal(t, "#2c2c2c", result.Style.LightShadow.Color)
	require.Equal(t, result.Style.CSS(), result.CSS)
}

func TestPresetsListTable(t *testing.T) {
	env := newCLIEnv(t)
	path := env.writePreset(t, "flat.yaml", "name: flat\ndescription: No depth\nsize: 150\n")

	out, _, err := env.run(t, "presets", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.True(t, strings.HasPrefix(lines[0], "NAME"), "header = %q", lines[0])
	require.Len(t, lines, 6)

	fields := strings.Fields(lines[1])
	require.Equal(t, []string{"flat", "150px", "50%", "light", "#e0e0e0", path, "No", "depth"}, fields)
	require.Contains(t, out, "midnight")
}

func TestPresetsListJSON(t *testing.T) {
	env := newCLIEnv(t)
	env.writePreset(t, "soft.yaml", "name: soft\nsize: 222\n")

	out, _, err := env.run(t, "presets", "list", "--json")
	require.NoError(t, err)

	var items []presets.Preset
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	byName := make(map[string]presets.Preset, len(items))
	for _, item := range items {
		byName[item.Name] = item
	}
	require.Equal(t, 222, byName["soft"].Params.Size)
	require.Equal(t, presets.BuiltinSource, byName["card"].Source)
}

func TestPresetsShow(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "presets", "show", "pill")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# pill (builtin)\n# Small round button"), "out = %q", out)
	require.Contains(t, out, "width: 120px,\n")
	require.Contains(t, out, "background-color: #f0f0f3;\n")

	_, _, err = env.run(t, "presets", "show", "missing")
	if !errors.Is(err, presets.ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "version")
	require.NoError(t, err)
	require.Equal(t, appVersion+"\n", out)

	out, _, err = env.run(t, "version", "--json")
	require.NoError(t, err)
	require.JSONEq(t, `{"version":"`+appVersion+`"}`, out)
}

func TestServeCommandReportsListenErrors(t *testing.T) {
	env := newCLIEnv(t)

	_, _, err := env.run(t, "serve", "--port", "70000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to listen")
}

func TestConfigErrorsStopCommands(t *testing.T) {
	env := newCLIEnv(t)
	if err := os.WriteFile(env.configPath, []byte("preview:\n  port: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := env.run(t, "version")
	require.Error(t, err)
	require.Contains(t, err.Error(), "preview.port")
}
