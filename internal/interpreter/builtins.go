// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpreter

import (
	"fmt"
	"strings"

	"github.com/ayoobkibrahim/portfolio-tui/internal/util"
)

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

const (
	// HelpHeader opens the help listing.
	HelpHeader = "Available commands:"

	// HelpColumn is the width the token column of the help listing is
	// padded to.
	HelpColumn = 18

	// SkillSeparator joins skill names in the skills output.
	SkillSeparator = " • "
)

// Biography is the content the built-in commands describe.
type Biography interface {
	// WhoAmI is the one-line identity answer.
	WhoAmI() string
	// Overview is the one-line professional summary.
	Overview() string
	// SkillNames lists the skills shown by the skills command.
	SkillNames() []string
	// ContactEmail is the address shown by the contact command.
	ContactEmail() string
	// KernelBanner is the uname -a easter egg.
	KernelBanner() string
}

// DefaultTable returns the portfolio command table:
// help, whoami, about, skills, contact, clear and the hidden uname -a.
func DefaultTable(bio Biography) *Table {
	single := func(text string) Handler {
		return func(*Table) Result {
			return Result{Lines: []Line{OutputLine(text)}}
		}
	}

	return MustTable(
		Entry{Token: "help", Description: "List all commands", Handler: Help},
		Entry{Token: "whoami", Description: "Display user profile", Handler: single(bio.WhoAmI())},
		Entry{Token: "about", Description: "View professional summary", Handler: single(bio.Overview())},
		Entry{Token: "skills", Description: "List technical skills", Handler: single(strings.Join(bio.SkillNames(), SkillSeparator))},
		Entry{Token: "contact", Description: "Get contact info", Handler: single("Email: " + bio.ContactEmail())},
		Entry{Token: "clear", Description: "Clear terminal", Handler: Clear},
		Entry{Token: "uname -a", Description: "Print system information", Handler: single(bio.KernelBanner()), Hidden: true},
	)
}

// Help lists every visible entry of t under HelpHeader.
func Help(t *Table) Result {
	visible := t.Visible()
	lines := make([]Line, 0, len(visible)+1)
	lines = append(lines, OutputLine(HelpHeader))
	for _, e := range visible {
		lines = append(lines, StyledLine(HelpRow(e), StyleHelpItem))
	}
	return Result{Lines: lines}
}

// HelpRow formats one row of the help listing.
func HelpRow(e Entry) string {
	return fmt.Sprintf("%s - %s", util.PadRight(e.Token, HelpColumn), e.Description)
}

// Clear empties the transcript.
func Clear(*Table) Result {
	return Result{Reset: true}
}

// GreetingLines are the lines a fresh terminal shows before any input.
func GreetingLines(handle string) []Line {
	return []Line{
		OutputLine(fmt.Sprintf("Loading user profile: %s...", handle)),
		OutputLine(`Type "help" to see available commands.`),
	}
}
