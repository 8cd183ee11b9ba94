// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal provides the interactive terminal widget: a transcript
// viewport above a prompt line, driven by an interpreter.
package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
)

// DefaultPrompt is shown before the input and before every echoed command.
const DefaultPrompt = "~/portfolio $"

// Title is drawn in the window title bar.
const Title = "bash - portfolio"

const (
	defaultWidth  = 72
	defaultHeight = 12
	inputLimit    = 256
)

// SubmittedMsg is emitted after a line has been submitted.
type SubmittedMsg struct {
	Input string
	Lines int
}

// Model is the Bubble Tea model for the terminal widget.
type Model struct {
	interp *interpreter.Interpreter
	theme  *styles.Theme
	keyMap KeyMap

	prompt   string
	input    textinput.Model
	viewport viewport.Model

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(m *Model) {
		if prompt != "" {
			m.prompt = prompt
		}
	}
}

// New creates a terminal widget over interp. The input starts focused.
func New(interp *interpreter.Interpreter, theme *styles.Theme, opts ...Option) Model {
	if theme == nil {
		theme = styles.NewTheme()
	}

	ti := textinput.New()
	ti.Placeholder = `try "help"`
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.CharLimit = inputLimit
	ti.Focus()

	m := Model{
		interp:   interp,
		theme:    theme,
		keyMap:   DefaultKeyMap(),
		prompt:   DefaultPrompt,
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.input.Prompt = theme.Prompt.Render(m.prompt) + " "
	m.refresh()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and forwards everything else to the input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Submit):
			return m.submit()
		case key.Matches(msg, m.keyMap.Complete):
			m.complete()
			return m, nil
		case key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input and clears it.
func (m Model) submit() (Model, tea.Cmd) {
	raw := m.input.Value()
	m.interp.Submit(raw)
	m.input.Reset()
	m.refresh()

	lines := m.interp.Len()
	return m, func() tea.Msg {
		return SubmittedMsg{Input: raw, Lines: lines}
	}
}

// complete replaces the input with the first matching command.
func (m *Model) complete() {
	if match, ok := m.interp.Autocomplete(m.input.Value()); ok {
		m.input.SetValue(match)
		m.input.CursorEnd()
	}
}

// refresh re-renders the transcript and scrolls to the bottom.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	transcript := m.interp.Transcript()
	rows := make([]string, 0, len(transcript))
	for _, line := range transcript {
		style := m.theme.LineStyle(line)
		if line.IsCommand() {
			rows = append(rows, m.theme.Prompt.Render(m.prompt)+" "+style.Render(line.Text))
			continue
		}
		rows = append(rows, style.Width(m.viewport.Width).Render(line.Text))
	}
	return strings.Join(rows, "\n")
}

// SetSize sets the outer width and height of the widget, including the
// border, title bar and prompt line.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Border (2) and body padding (2)
	m.viewport.Width = max(width-4, 10)
	// Border (2), title (1), prompt (1)
	m.viewport.Height = max(height-4, 1)
	m.input.Width = max(m.viewport.Width-lipgloss.Width(m.input.Prompt)-1, 1)
	m.refresh()
}

// Focus focuses the prompt.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus from the prompt.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the prompt has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.input.Value()
}

// Transcript returns the interpreter transcript.
func (m Model) Transcript() []interpreter.Line {
	return m.interp.Transcript()
}

// KeyMap returns the widget key bindings.
func (m Model) KeyMap() KeyMap {
	return m.keyMap
}

// View renders the window.
func (m Model) View() string {
	title := m.theme.TerminalTitle.Width(m.viewport.Width + 2).Render(Title)
	body := m.theme.TerminalBody.Render(
		lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.input.View()),
	)
	return m.theme.TerminalBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
