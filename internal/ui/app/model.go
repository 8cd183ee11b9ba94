// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the top-level portfolio TUI: a hero with the
// interactive terminal, an about page with a skills filter and a contact
// page with a message form.
package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/terminal"
)

// =============================================================================
// SECTIONS
// =============================================================================

// Section is one page of the app.
type Section int

const (
	SectionHome Section = iota
	SectionAbout
	SectionContact

	sectionCount
)

// String returns the tab label of the section.
func (s Section) String() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About"
	case SectionContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// =============================================================================
// OPTIONS
// =============================================================================

// DefaultRoleInterval is how long each typed role stays fully shown.
const DefaultRoleInterval = 2 * time.Second

// Options configures the app.
type Options struct {
	// Profile is the portfolio content (default: profile.Default())
	Profile *profile.Profile

	// Interpreter drives the hero terminal (default: built from Profile
	// with the greeting)
	Interpreter *interpreter.Interpreter

	// Contact delivers the contact form; nil reports every submission
	// as failed
	Contact Submitter

	// ContactTimeout bounds a single submission
	ContactTimeout time.Duration

	// Theme (default: styles.NewTheme())
	Theme *styles.Theme

	// Prompt overrides the terminal prompt
	Prompt string

	// RoleInterval is the hold time of each typed role
	RoleInterval time.Duration

	// MarkdownStyle is the glamour style of the bio ("auto", "dark", "light")
	MarkdownStyle string
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the top-level Bubble Tea model.
type Model struct {
	profile *profile.Profile
	theme   *styles.Theme
	keys    KeyMap

	section Section
	width   int
	height  int

	typer    roleTyper
	terminal terminal.Model
	about    aboutModel
	contact  contactModel
}

// New creates the app model.
func New(opts Options) Model {
	p := opts.Profile
	if p == nil {
		p = profile.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	interp := opts.Interpreter
	if interp == nil {
		interp = interpreter.New(interpreter.DefaultTable(p),
			interpreter.WithGreeting(interpreter.GreetingLines(p.Handle)...))
	}
	hold := opts.RoleInterval
	if hold <= 0 {
		hold = DefaultRoleInterval
	}
	markdownStyle := opts.MarkdownStyle
	if markdownStyle == "" {
		if theme.IsDark {
			markdownStyle = "dark"
		} else {
			markdownStyle = "light"
		}
	}

	keys := DefaultKeyMap()
	return Model{
		profile:  p,
		theme:    theme,
		keys:     keys,
		section:  SectionHome,
		width:    100,
		height:   30,
		typer:    newRoleTyper(p.Roles, hold),
		terminal: terminal.New(interp, theme, terminal.WithPrompt(opts.Prompt)),
		about:    newAboutModel(p, theme, keys, markdownStyle),
		contact:  newContactModel(p, theme, keys, opts.Contact, opts.ContactTimeout),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.terminal.Init(), roleTick(TypeDelay))
}

// Section returns the section being shown.
func (m Model) Section() Section {
	return m.section
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextSection):
			return m.show((m.section + 1) % sectionCount)
		case key.Matches(msg, m.keys.PrevSection):
			return m.show((m.section + sectionCount - 1) % sectionCount)
		case key.Matches(msg, m.keys.Home):
			return m.show(SectionHome)
		case key.Matches(msg, m.keys.About):
			return m.show(SectionAbout)
		case key.Matches(msg, m.keys.Contact):
			return m.show(SectionContact)
		}
		return m.updateSection(msg)

	case roleTickMsg:
		return m, roleTick(m.typer.Step())

	case terminal.SubmittedMsg:
		return m, nil

	case contactResultMsg, dismissStatusMsg:
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd
	}

	// Spinner ticks, cursor blinks and mouse events.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.contact, cmd = m.contact.Update(msg)
	cmds = append(cmds, cmd)
	if m.section == SectionHome {
		m.terminal, cmd = m.terminal.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.section == SectionAbout {
		m.about, cmd = m.about.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// updateSection forwards a key press to the section being shown.
func (m Model) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.section {
	case SectionHome:
		m.terminal, cmd = m.terminal.Update(msg)
	case SectionAbout:
		m.about, cmd = m.about.Update(msg)
	case SectionContact:
		m.contact, cmd = m.contact.Update(msg)
	}
	return m, cmd
}

// show switches sections, moving focus with it.
func (m Model) show(s Section) (tea.Model, tea.Cmd) {
	if s == m.section {
		return m, nil
	}
	m.section = s
	m.terminal.Blur()
	m.contact.Blur()

	switch s {
	case SectionHome:
		return m, m.terminal.Focus()
	case SectionContact:
		return m, m.contact.Focus()
	}
	return m, nil
}

// layout sizes the sections to the window.
func (m *Model) layout() {
	// App padding, tab bar and help line
	innerWidth := max(m.width-m.theme.App.GetHorizontalFrameSize(), 20)
	innerHeight := max(m.height-m.theme.App.GetVerticalFrameSize()-4, 6)

	termHeight := max(innerHeight-heroHeaderHeight(m.profile, m.theme, innerWidth)-1, 6)
	m.terminal.SetSize(min(innerWidth, 90), termHeight)
	m.about.SetSize(innerWidth, innerHeight)
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.section {
	case SectionHome:
		body = renderHeroHeader(m.profile, m.typer.Text(), m.theme, m.width) + "\n\n" + m.terminal.View()
	case SectionAbout:
		body = m.about.View()
	case SectionContact:
		body = m.contact.View()
	}

	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		body,
		m.theme.HelpLine.Render(formatHelp(m.keys.sectionHelp(m.section))),
	))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(sectionCount)+1)
	tabs = append(tabs, m.theme.Prompt.Render(strings.ToLower(m.profile.Initials)))
	for s := SectionHome; s < sectionCount; s++ {
		style := m.theme.Tab
		if s == m.section {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options, altScreen bool) error {
	progOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(New(opts), progOpts...).Run()
	return err
}
