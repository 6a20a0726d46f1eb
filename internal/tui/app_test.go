package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/neumorph"
	"github.com/opencode-ai/neumorph/internal/presets"
)

func testModel(t *testing.T, mutate func(*Config)) model {
	t.Helper()
	cfg := Config{
		Initial:   neumorph.DefaultParameterSet(),
		Step:      1,
		BigStep:   10,
		Clipboard: &bytes.Buffer{},
		Logger:    zerolog.Nop(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return newModel(cfg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		updated, ok := next.(model)
		if !ok {
			t.Fatalf("expected model, got %T", next)
		}
		m = updated
	}
	return m, cmd
}

func TestArrowKeysAdjustFocusedSlider(t *testing.T) {
	m := testModel(t, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 202, m.editor.Value(editor.FieldSize))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	require.Equal(t, 192, m.editor.Value(editor.FieldSize))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 49, m.editor.Value(editor.FieldCornerRadius))
	require.Contains(t, m.editor.CSS(), "border-radius: 49%;")
}

func TestHomeEndJumpToBounds(t *testing.T) {
	m := testModel(t, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 50, m.editor.Value(editor.FieldBlur))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	require.Equal(t, 5, m.editor.Value(editor.FieldBlur))
}

func TestAdjustStopsAtBounds(t *testing.T) {
	m := testModel(t, nil)

	for i := 0; i < 40; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftRight})
	}
	require.Equal(t, 400, m.editor.Value(editor.FieldSize))
}

func TestDirectNumericEntryIsClamped(t *testing.T) {
	m := testModel(t, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, runes("4"), runes("5"))
	require.Equal(t, colorRow, m.focus)
	require.Empty(t, m.pending, "digits are ignored on the color row")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, runes("4"), runes("5"), runes("9"))
	require.Equal(t, "459", m.pending)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, 30, m.editor.Value(editor.FieldIntensity))
	require.Empty(t, m.pending)
	require.Contains(t, m.status, "limited to 1..30")
}

func TestEscCancelsPendingBeforeQuitting(t *testing.T) {
	m := testModel(t, nil)

	m, cmd := press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, cmd)
	require.Empty(t, m.pending)
	require.Equal(t, neumorph.DefaultSize, m.editor.Value(editor.FieldSize))

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestThemeToggle(t *testing.T) {
	m := testModel(t, nil)
	require.Equal(t, "light", m.styles.Theme.Name)

	m, _ = press(t, m, runes("t"))
	require.True(t, m.editor.Params().DarkMode)
	require.Equal(t, "dark", m.styles.Theme.Name)
	require.Contains(t, m.editor.CSS(), "#1a1a1a")
	require.Contains(t, m.View(), "☾ Dark")

	m, _ = press(t, m, runes("t"))
	require.False(t, m.editor.Params().DarkMode)
	require.Equal(t, "light", m.styles.Theme.Name)
}

func TestPinnedThemeIgnoresDarkMode(t *testing.T) {
	m := testModel(t, func(cfg *Config) { cfg.Theme = "high-contrast" })

	m, _ = press(t, m, runes("t"))
	require.Equal(t, "high-contrast", m.styles.Theme.Name)
}

func TestColorEntry(t *testing.T) {
	m := testModel(t, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.editingColor)
	require.Equal(t, "#e0e0e0", m.colorInput.Value())

	m.colorInput.SetValue("")
	m, _ = press(t, m, runes("#"), runes("3"), runes("6"), runes("9"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.editingColor)
	require.Equal(t, "#336699", m.editor.Params().Color)
	require.Contains(t, m.editor.CSS(), "background-color: #336699;")
}

func TestColorEntryFocusesInput(t *testing.T) {
	m := testModel(t, nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.colorInput.Focused())
	require.NotNil(t, cmd)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("f"))
	require.Equal(t, "#e0e0ef", m.colorInput.Value())
}

func TestStatusCommandsKeepModelUpdates(t *testing.T) {
	items := []*presets.Preset{
		{Name: "one", Params: neumorph.ParameterSet{Size: 120, CornerRadius: 10, Blur: 10, Intensity: 3, Color: "#ffffff"}},
	}
	m := testModel(t, func(cfg *Config) { cfg.Presets = items })

	m, cmd := press(t, m, runes("p"))
	require.NotNil(t, cmd)
	require.Equal(t, 0, m.presetIndex)
	require.Equal(t, 1, m.statusSeq)

	m, _ = press(t, m, runes("9"), runes("9"), runes("9"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 400, m.editor.Value(editor.FieldSize))
	require.Equal(t, 2, m.statusSeq)
	require.Equal(t, "Size limited to 100..400", m.status)
	require.Empty(t, m.pending)
}

func TestInvalidColorKeepsEditing(t *testing.T) {
	m := testModel(t, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	m.colorInput.SetValue("#12")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, m.editingColor)
	require.True(t, m.statusError)
	require.Equal(t, "#e0e0e0", m.editor.Params().Color)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.editingColor)
}

func TestCopyWritesClipboardSequence(t *testing.T) {
	buf := &bytes.Buffer{}
	m := testModel(t, func(cfg *Config) { cfg.Clipboard = buf })

	m, cmd := press(t, m, runes("c"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	require.True(t, strings.HasPrefix(buf.String(), "\x1b]52;"))
	require.Equal(t, "Copied CSS to clipboard", m.status)
	require.False(t, m.statusError)
}

func TestStatusClearsOnlyForLatestMessage(t *testing.T) {
	m := testModel(t, nil)

	m, _ = press(t, m, runes("r"))
	first := m.statusSeq
	m, _ = press(t, m, runes("r"))

	m, _ = press(t, m, clearStatusMsg{seq: first})
	require.NotEmpty(t, m.status)

	m, _ = press(t, m, clearStatusMsg{seq: m.statusSeq})
	require.Empty(t, m.status)
}

func TestPresetCycling(t *testing.T) {
	items := []*presets.Preset{
		{Name: "one", Params: neumorph.ParameterSet{Size: 120, CornerRadius: 10, Blur: 10, Intensity: 3, Color: "#ffffff"}},
		{Name: "two", Params: neumorph.ParameterSet{Size: 300, CornerRadius: 40, Blur: 30, Intensity: 9, Color: "#222222", DarkMode: true}},
	}
	m := testModel(t, func(cfg *Config) { cfg.Presets = items })

	m, _ = press(t, m, runes("p"))
	require.Equal(t, items[0].Params, m.editor.Params())
	require.Equal(t, "Preset: one", m.status)

	m, _ = press(t, m, runes("p"))
	require.Equal(t, items[1].Params, m.editor.Params())
	require.Equal(t, "dark", m.styles.Theme.Name)

	m, _ = press(t, m, runes("p"))
	require.Equal(t, items[0].Params, m.editor.Params())

	m, _ = press(t, m, runes("r"))
	require.Equal(t, neumorph.DefaultParameterSet(), m.editor.Params())
}

func TestPresetWithoutPresets(t *testing.T) {
	m := testModel(t, nil)

	m, _ = press(t, m, runes("p"))
	require.True(t, m.statusError)
	require.Equal(t, neumorph.DefaultParameterSet(), m.editor.Params())
}

func TestViewShowsControlsAndCSS(t *testing.T) {
	m := testModel(t, nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := m.View()
	for _, want := range []string{
		"Neumorphism CSS Generator",
		"Size",
		"Corner Radius",
		"Blur",
		"Intensity",
		"Color",
		"Generated CSS",
		"box-shadow: 10px 10px 20px #bebebe,",
		"-10px -10px 20px #ffffff;",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewNarrowLayout(t *testing.T) {
	m := testModel(t, nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()
	require.Contains(t, view, "Generated CSS")
	require.Contains(t, view, "#e0e0e0")
}

func TestViewTooSmall(t *testing.T) {
	m := testModel(t, nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	view := m.View()
	if !strings.Contains(view, "Terminal too small (40x10).") {
		t.Fatalf("expected small terminal message, got:\n%s", view)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t, nil)

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}
