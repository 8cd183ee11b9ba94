// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for every portfolio CLI command.
//
// Colors are disabled for non-TTY output and when NO_COLOR is set.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Green)

	// SectionStyle is used for section headers within commands
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan)

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// ValueStyle is used for regular values and text
	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// SuccessStyle is used for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// PromptStyle colors the prompt in front of echoed commands
	PromptStyle = lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true)

	// HelpItemStyle colors help rows
	HelpItemStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)
)

// =============================================================================
// TTY-AWARE STYLING HELPERS
// =============================================================================

// paint renders text with style when w is a colored terminal, otherwise
// returns the text unmodified.
func paint(w io.Writer, style lipgloss.Style, text string) string {
	if !colorize(w) {
		return text
	}
	return style.Render(text)
}

// formatLine renders one transcript line the way the terminal widget shows it.
func formatLine(w io.Writer, prompt string, line interpreter.Line) string {
	if line.IsCommand() {
		return paint(w, PromptStyle, prompt) + " " + line.Text
	}
	if line.Style == interpreter.StyleHelpItem {
		return paint(w, HelpItemStyle, line.Text)
	}
	return line.Text
}

// printLines writes lines to w, one per row.
func printLines(w io.Writer, prompt string, lines []interpreter.Line) {
	for _, line := range lines {
		fmt.Fprintln(w, formatLine(w, prompt, line))
	}
}

// printField writes an aligned "label  value" row.
func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", paint(w, LabelStyle, fmt.Sprintf("%-10s", label+":")), value)
}

// printTitle writes a bold title with an underline of matching width.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, paint(w, TitleStyle, title))
	fmt.Fprintln(w, paint(w, DimStyle, strings.Repeat("-", lipgloss.Width(title))))
}
