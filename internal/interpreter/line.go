// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpreter

import "fmt"

// =============================================================================
// TRANSCRIPT LINES
// =============================================================================

// Kind tags a transcript line as an echoed command or as output.
type Kind int

const (
	KindCommand Kind = iota // Echo of what the user entered
	KindOutput              // Text produced in response
)

// StyleHelpItem is the style tag carried by the rows of the help listing.
const StyleHelpItem = "help-item"

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindOutput:
		return "output"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name so JSON transcripts read naturally.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindCommand, KindOutput:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown line kind %d", int(k))
	}
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "command":
		*k = KindCommand
	case "output":
		*k = KindOutput
	default:
		return fmt.Errorf("unknown line kind %q", text)
	}
	return nil
}

// Line is a single row of the transcript.
type Line struct {
	Kind  Kind   `json:"type"`
	Text  string `json:"text"`
	Style string `json:"style,omitempty"` // Only set on help rows
}

// CommandLine returns the echo line recorded for a submitted command.
func CommandLine(text string) Line {
	return Line{Kind: KindCommand, Text: text}
}

// OutputLine returns an unstyled output line.
func OutputLine(text string) Line {
	return Line{Kind: KindOutput, Text: text}
}

// StyledLine returns an output line carrying a style tag.
func StyledLine(text, style string) Line {
	return Line{Kind: KindOutput, Text: text, Style: style}
}

// IsCommand reports whether the line echoes user input.
func (l Line) IsCommand() bool {
	return l.Kind == KindCommand
}
