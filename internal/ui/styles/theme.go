// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
)

// Theme modes accepted by NewThemeFor.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// NAVIGATION
	// ==========================================================================

	App       lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	HelpLine  lipgloss.Style
	HelpKey   lipgloss.Style

	// ==========================================================================
	// HERO
	// ==========================================================================

	Greeting lipgloss.Style
	Name     lipgloss.Style
	Role     lipgloss.Style
	Cursor   lipgloss.Style
	Tagline  lipgloss.Style
	Social   lipgloss.Style

	// ==========================================================================
	// TERMINAL WIDGET
	// ==========================================================================

	TerminalBox      lipgloss.Style
	TerminalTitle    lipgloss.Style
	TerminalBody     lipgloss.Style
	Prompt           lipgloss.Style
	CommandText      lipgloss.Style
	OutputText       lipgloss.Style
	HelpItem         lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// ABOUT
	// ==========================================================================

	SectionTitle lipgloss.Style
	SectionSub   lipgloss.Style
	Tag          lipgloss.Style
	Chip         lipgloss.Style
	ChipActive   lipgloss.Style
	SkillName    lipgloss.Style
	SkillLevel   lipgloss.Style
	ServiceCard  lipgloss.Style
	ServiceTitle lipgloss.Style
	ServiceDesc  lipgloss.Style

	// ==========================================================================
	// CONTACT
	// ==========================================================================

	Label         lipgloss.Style
	Link          lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	FieldError    lipgloss.Style

	// ==========================================================================
	// STATUS
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	Spinner      lipgloss.Style
}

// NewTheme creates a theme using the detected terminal background.
func NewTheme() *Theme {
	return NewThemeFor(ModeAuto)
}

// NewThemeFor creates a theme for mode ("auto", "dark" or "light"). Unknown
// modes behave like "auto".
func NewThemeFor(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case ModeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Navigation
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Tab = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.TabActive = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Underline(true).
		Padding(0, 2)

	t.HelpLine = lipgloss.NewStyle().
		Foreground(TextMuted).
		MarginTop(1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	// Hero
	t.Greeting = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Name = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.Role = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.Cursor = lipgloss.NewStyle().
		Foreground(Green)

	t.Tagline = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(64)

	t.Social = lipgloss.NewStyle().
		Foreground(Cyan).
		Underline(true)

	// Terminal widget
	t.TerminalBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.TerminalTitle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(SurfaceDim).
		Padding(0, 1)

	t.TerminalBody = lipgloss.NewStyle().
		Padding(0, 1)

	t.Prompt = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.CommandText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.OutputText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.HelpItem = lipgloss.NewStyle().
		Foreground(Amber)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// About
	t.SectionTitle = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true).
		MarginBottom(1)

	t.SectionSub = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Tag = lipgloss.NewStyle().
		Foreground(Cyan).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.Chip = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ChipActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true).
		Padding(0, 1)

	t.SkillName = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.SkillLevel = lipgloss.NewStyle().
		Foreground(Green)

	t.ServiceCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1).
		Width(34)

	t.ServiceTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ServiceDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Contact
	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(10)

	t.Link = lipgloss.NewStyle().
		Foreground(Cyan).
		Underline(true)

	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputFocused = t.Input.
		BorderForeground(Cyan)

	t.Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 3)

	t.ButtonFocused = t.Button.
		Foreground(TextInverse).
		Background(Green).
		BorderForeground(Green).
		Bold(true)

	t.FieldError = lipgloss.NewStyle().
		Foreground(Rose)

	// Status
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Green)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// LineStyle returns the style for a transcript line.
func (t *Theme) LineStyle(line interpreter.Line) lipgloss.Style {
	switch {
	case line.IsCommand():
		return t.CommandText
	case line.Style == interpreter.StyleHelpItem:
		return t.HelpItem
	default:
		return t.OutputText
	}
}
