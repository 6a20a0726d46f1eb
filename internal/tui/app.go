// Package tui implements the neumorph terminal editor.
package tui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/neumorph/internal/clipboard"
	"github.com/opencode-ai/neumorph/internal/editor"
	"github.com/opencode-ai/neumorph/internal/neumorph"
	"github.com/opencode-ai/neumorph/internal/presets"
	"github.com/opencode-ai/neumorph/internal/tui/components"
	"github.com/opencode-ai/neumorph/internal/tui/styles"
)

// Config configures the editor program.
type Config struct {
	Initial neumorph.ParameterSet
	// Theme is styles.ThemeAuto or a fixed palette name.
	Theme   string
	Step    int
	BigStep int
	Presets []*presets.Preset
	// Clipboard receives OSC52 sequences. Defaults to os.Stderr.
	Clipboard io.Writer
	Logger    zerolog.Logger
}

// RunWithConfig launches the editor program.
func RunWithConfig(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const (
	minWidth      = 72
	minHeight     = 24
	wideLayoutMin = 110
	controlsWidth = 56
	maxPending    = 3
	statusTTL     = 3 * time.Second
)

// focus rows: one per slider field, then the color row.
var colorRow = len(editor.Fields())

type model struct {
	width  int
	height int

	editor  *editor.Editor
	styles  styles.Styles
	theme   string
	step    int
	bigStep int

	focus   int
	pending string

	colorInput   textinput.Model
	editingColor bool

	presets     []*presets.Preset
	presetIndex int

	clipboard io.Writer
	logger    zerolog.Logger

	status      string
	statusError bool
	statusSeq   int
}

func newModel(cfg Config) model {
	step := cfg.Step
	if step < 1 {
		step = 1
	}
	bigStep := cfg.BigStep
	if bigStep < step {
		bigStep = step * 10
	}
	theme := cfg.Theme
	if theme == "" {
		theme = styles.ThemeAuto
	}
	out := cfg.Clipboard
	if out == nil {
		out = os.Stderr
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "#rrggbb"
	input.CharLimit = 7

	m := model{
		editor:      editor.New(cfg.Initial),
		theme:       theme,
		step:        step,
		bigStep:     bigStep,
		colorInput:  input,
		presets:     cfg.Presets,
		presetIndex: -1,
		clipboard:   out,
		logger:      cfg.Logger,
	}
	m.refreshStyles()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editingColor {
			return m.updateColorInput(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("copy css failed")
			cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
			return m, cmd
		}
		m.logger.Info().Int("bytes", len(msg.css)).Msg("css copied")
		cmd := m.setStatus("Copied CSS to clipboard", false)
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusError = false
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.pending != "" {
			m.pending = ""
			return m, nil
		}
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.pending = ""
		m.focus = (m.focus + colorRow) % (colorRow + 1)
	case "down", "j", "tab":
		m.pending = ""
		m.focus = (m.focus + 1) % (colorRow + 1)
	case "left", "h":
		m.adjust(-m.step)
	case "right", "l":
		m.adjust(m.step)
	case "shift+left", "pgdown":
		m.adjust(-m.bigStep)
	case "shift+right", "pgup":
		m.adjust(m.bigStep)
	case "home":
		if field, ok := m.focusedField(); ok {
			m.pending = ""
			m.set(field, field.Bounds().Min)
		}
	case "end":
		if field, ok := m.focusedField(); ok {
			m.pending = ""
			m.set(field, field.Bounds().Max)
		}
	case "backspace":
		if len(m.pending) > 0 {
			m.pending = m.pending[:len(m.pending)-1]
		}
	case "enter":
		if m.focus == colorRow {
			return m.startColorInput()
		}
		cmd := m.commitPending()
		return m, cmd
	case "t":
		dark := m.editor.ToggleDarkMode()
		m.refreshStyles()
		m.logger.Debug().Bool("dark_mode", dark).Msg("theme toggled")
	case "c":
		return m, copyCmd(m.clipboard, m.editor.CSS())
	case "p":
		cmd := m.nextPreset()
		return m, cmd
	case "r":
		m.pending = ""
		m.editor.Reset()
		m.presetIndex = -1
		m.refreshStyles()
		cmd := m.setStatus("Reset to defaults", false)
		return m, cmd
	default:
		if _, ok := m.focusedField(); ok && isDigit(key) && len(m.pending) < maxPending {
			m.pending += key
		}
	}
	return m, nil
}

func (m model) focusedField() (editor.Field, bool) {
	fields := editor.Fields()
	if m.focus < 0 || m.focus >= len(fields) {
		return 0, false
	}
	return fields[m.focus], true
}

func (m *model) adjust(delta int) {
	field, ok := m.focusedField()
	if !ok {
		return
	}
	m.pending = ""
	m.set(field, m.editor.Value(field)+delta)
}

func (m *model) set(field editor.Field, value int) {
	stored := m.editor.Set(field, value)
	m.logger.Debug().Str("field", field.String()).Int("value", stored).Msg("parameter changed")
}

func (m *model) commitPending() tea.Cmd {
	field, ok := m.focusedField()
	if !ok || m.pending == "" {
		return nil
	}
	value, err := strconv.Atoi(m.pending)
	m.pending = ""
	if err != nil {
		return m.setStatus(fmt.Sprintf("Invalid number: %v", err), true)
	}
	stored := m.editor.Set(field, value)
	m.logger.Debug().Str("field", field.String()).Int("value", stored).Msg("parameter entered")
	if stored != value {
		bounds := field.Bounds()
		return m.setStatus(fmt.Sprintf("%s limited to %d..%d", field.Label(), bounds.Min, bounds.Max), false)
	}
	return nil
}

func (m model) startColorInput() (tea.Model, tea.Cmd) {
	m.editingColor = true
	m.colorInput.SetValue(m.editor.Params().Color)
	m.colorInput.CursorEnd()
	cmd := m.colorInput.Focus()
	return m, cmd
}

func (m model) updateColorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.editingColor = false
		m.colorInput.Blur()
		return m, nil
	case "enter":
		if err := m.editor.SetColor(m.colorInput.Value()); err != nil {
			m.logger.Debug().Err(err).Msg("color rejected")
			cmd := m.setStatus(err.Error(), true)
			return m, cmd
		}
		m.editingColor = false
		m.colorInput.Blur()
		m.logger.Debug().Str("color", m.editor.Params().Color).Msg("color changed")
		return m, nil
	}

	var cmd tea.Cmd
	m.colorInput, cmd = m.colorInput.Update(msg)
	return m, cmd
}

func (m *model) nextPreset() tea.Cmd {
	if len(m.presets) == 0 {
		return m.setStatus("No presets available", true)
	}
	m.pending = ""
	m.presetIndex = (m.presetIndex + 1) % len(m.presets)
	preset := m.presets[m.presetIndex]
	if err := m.editor.Apply(preset.Params); err != nil {
		return m.setStatus(fmt.Sprintf("Preset %s: %v", preset.Name, err), true)
	}
	m.refreshStyles()
	m.logger.Debug().Str("preset", preset.Name).Msg("preset applied")
	return m.setStatus(fmt.Sprintf("Preset: %s", preset.Name), false)
}

func (m *model) refreshStyles() {
	m.styles = styles.BuildStyles(styles.ThemeFor(m.theme, m.editor.Params().DarkMode))
}

func (m *model) setStatus(text string, isError bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusError = isError
	return clearStatusAfter(m.statusSeq)
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{m.headerLine(), ""}
	lines = append(lines, m.body())
	lines = append(lines, "", m.statusLine())
	lines = append(lines, components.RenderShortcutBar(m.styles, components.EditorShortcuts(len(m.presets) > 0)))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) headerLine() string {
	mode := "☀ Light"
	if m.editor.Params().DarkMode {
		mode = "☾ Dark"
	}
	return m.styles.Title.Render("Neumorphism CSS Generator") + "  " + m.styles.Muted.Render(mode)
}

func (m model) body() string {
	controls := m.controls()
	width := m.width
	if width == 0 {
		width = wideLayoutMin
	}

	if width >= wideLayoutMin {
		stageWidth := width - controlsWidth - 2
		stageHeight := max(lipgloss.Height(controls), m.availableHeight())
		return lipgloss.JoinHorizontal(lipgloss.Top, m.stage(stageWidth, stageHeight), "  ", controls)
	}

	stageHeight := m.availableHeight() - lipgloss.Height(controls)
	return lipgloss.JoinVertical(lipgloss.Left, m.stage(width, max(stageHeight, 6)), controls)
}

// availableHeight is the room left for the body after header, status and
// shortcut lines.
func (m model) availableHeight() int {
	if m.height == 0 {
		return 16
	}
	return m.height - 6
}

func (m model) stage(width, height int) string {
	preview := components.RenderPreview(m.editor.Style(), width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, preview,
		lipgloss.WithWhitespaceBackground(m.styles.Stage.GetBackground()))
}

func (m model) controls() string {
	lines := make([]string, 0, colorRow+3)
	for i, field := range editor.Fields() {
		slider := components.Slider{
			Label:   field.Label(),
			Value:   m.editor.Value(field),
			Unit:    field.Unit(),
			Bounds:  field.Bounds(),
			Focused: m.focus == i,
		}
		if m.focus == i {
			slider.Pending = m.pending
		}
		lines = append(lines, slider.Render(m.styles, controlsWidth))
	}

	row := components.ColorRow{Value: m.editor.Params().Color, Focused: m.focus == colorRow}
	if m.editingColor {
		row.Editor = m.colorInput.View()
	}
	lines = append(lines, row.Render(m.styles), "")
	lines = append(lines, components.RenderCSSPanel(m.styles, m.editor.CSS(), controlsWidth))

	return joinLines(lines)
}

func (m model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return m.styles.Error.Render(m.status)
	}
	return m.styles.Success.Render(m.status)
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Error.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, line := range lines[1:] {
		out += "\n" + line
	}
	return out
}

type copiedMsg struct {
	css string
	err error
}

func copyCmd(out io.Writer, css string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{css: css, err: clipboard.Copy(out, css)}
	}
}

type clearStatusMsg struct {
	seq int
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
