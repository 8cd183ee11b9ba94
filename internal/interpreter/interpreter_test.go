// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpreter

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBio struct{}

func (fakeBio) WhoAmI() string       { return "Jane Doe - Platform Engineer" }
func (fakeBio) Overview() string     { return "Automates everything." }
func (fakeBio) SkillNames() []string { return []string{"Docker", "Kubernetes", "Terraform"} }
func (fakeBio) ContactEmail() string { return "jane@example.com" }
func (fakeBio) KernelBanner() string { return "Linux lab 6.1.0 x86_64 GNU/Linux" }

func newTestInterpreter(opts ...Option) *Interpreter {
	return New(DefaultTable(fakeBio{}), opts...)
}

// =============================================================================
// SUBMIT TESTS
// =============================================================================

func TestSubmit_KnownCommandsAppendEchoAndOutput(t *testing.T) {
	tests := []struct {
		input string
		want  []Line
	}{
		{"whoami", []Line{CommandLine("whoami"), OutputLine("Jane Doe - Platform Engineer")}},
		{"about", []Line{CommandLine("about"), OutputLine("Automates everything.")}},
		{"skills", []Line{CommandLine("skills"), OutputLine("Docker • Kubernetes • Terraform")}},
		{"contact", []Line{CommandLine("contact"), OutputLine("Email: jane@example.com")}},
		{"uname -a", []Line{CommandLine("uname -a"), OutputLine("Linux lab 6.1.0 x86_64 GNU/Linux")}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			in := newTestInterpreter(WithGreeting(OutputLine("prior")))
			got := in.Submit(tc.input)
			require.Len(t, got, 1+len(tc.want))
			assert.Equal(t, OutputLine("prior"), got[0])
			assert.Equal(t, tc.want, got[1:])
		})
	}
}

func TestSubmit_UnknownCommand(t *testing.T) {
	for _, input := range []string{"ls", "sudo rm -rf /", "help me", "whoami2"} {
		in := newTestInterpreter()
		got := in.Submit(input)

		require.Len(t, got, 2, "input %q", input)
		assert.Equal(t, CommandLine(input), got[0])
		assert.Equal(t, OutputLine(fmt.Sprintf(`Command not found: %s. Type "help" for list.`, input)), got[1])
	}
}

func TestSubmit_EmptyInputIsNoop(t *testing.T) {
	in := newTestInterpreter(WithGreeting(GreetingLines("jane")...))
	in.Submit("whoami")
	before := in.Transcript()

	for _, input := range []string{"", "   ", "\t\n"} {
		got := in.Submit(input)
		assert.Equal(t, before, got, "input %q", input)
	}
}

func TestSubmit_ClearEmptiesTranscript(t *testing.T) {
	in := newTestInterpreter(WithGreeting(GreetingLines("jane")...))
	in.Submit("help")
	in.Submit("nope")
	require.NotZero(t, in.Len())

	got := in.Submit("clear")
	assert.Empty(t, got)
	assert.Zero(t, in.Len())

	// Clearing an empty transcript stays empty and records nothing.
	assert.Empty(t, in.Submit("  CLEAR "))
}

func TestSubmit_Help(t *testing.T) {
	in := newTestInterpreter()
	got := in.Submit("help")

	visible := in.Table().Visible()
	require.Len(t, got, 2+len(visible))
	assert.Equal(t, CommandLine("help"), got[0])
	assert.Equal(t, OutputLine(HelpHeader), got[1])

	for i, e := range visible {
		row := got[2+i]
		assert.Equal(t, StyleHelpItem, row.Style)
		assert.True(t, strings.HasPrefix(row.Text, e.Token))
		assert.Equal(t, HelpColumn, strings.Index(row.Text, " - "), "row %q", row.Text)
		assert.True(t, strings.HasSuffix(row.Text, " - "+e.Description))
	}
	for _, row := range got {
		assert.NotContains(t, row.Text, "uname")
	}
}

func TestSubmit_RepeatedHelpIsIdentical(t *testing.T) {
	in := newTestInterpreter()
	first := in.Submit("help")
	second := in.Submit("help")

	require.Len(t, second, 2*len(first))
	assert.Equal(t, first, second[len(first):])
}

func TestSubmit_CaseInsensitive(t *testing.T) {
	upper := newTestInterpreter().Submit("WHOAMI")
	lower := newTestInterpreter().Submit("whoami")

	assert.Equal(t, lower, upper)
	assert.Equal(t, "whoami", upper[0].Text)

	mixed := newTestInterpreter().Submit("  NoSuchThing ")
	assert.Equal(t, "nosuchthing", mixed[0].Text)
}

func TestSubmit_ReturnsCopy(t *testing.T) {
	in := newTestInterpreter()
	got := in.Submit("whoami")
	got[0].Text = "tampered"

	assert.Equal(t, "whoami", in.Transcript()[0].Text)
}

func TestWithMaxLines(t *testing.T) {
	in := newTestInterpreter(WithMaxLines(3))
	in.Submit("whoami")
	in.Submit("about")

	got := in.Transcript()
	require.Len(t, got, 3)
	assert.Equal(t, []Line{
		OutputLine("Jane Doe - Platform Engineer"),
		CommandLine("about"),
		OutputLine("Automates everything."),
	}, got)
}

func TestWithMaxLines_ZeroIsUnbounded(t *testing.T) {
	in := newTestInterpreter(WithMaxLines(0))
	for i := 0; i < 50; i++ {
		in.Submit("whoami")
	}
	assert.Equal(t, 100, in.Len())
}

// =============================================================================
// AUTOCOMPLETE TESTS
// =============================================================================

func TestAutocomplete(t *testing.T) {
	tests := []struct {
		partial string
		want    string
		found   bool
	}{
		{"wh", "whoami", true},
		{"WH", "whoami", true},
		{"c", "contact", true},
		{"cl", "clear", true},
		{"", "help", true},
		{"zz", "", false},
		{"un", "", false}, // hidden
		{"help ", "", false},
	}

	in := newTestInterpreter()
	for _, tc := range tests {
		got, ok := in.Autocomplete(tc.partial)
		if got != tc.want || ok != tc.found {
			t.Errorf("Autocomplete(%q) = (%q, %v), want (%q, %v)", tc.partial, got, ok, tc.want, tc.found)
		}
	}
}

func TestAutocomplete_DoesNotTouchTranscript(t *testing.T) {
	in := newTestInterpreter()
	in.Autocomplete("wh")
	assert.Zero(t, in.Len())
}

// =============================================================================
// LINE TESTS
// =============================================================================

func TestLine_JSON(t *testing.T) {
	data, err := json.Marshal([]Line{CommandLine("help"), StyledLine("row", StyleHelpItem)})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"command","text":"help"},{"type":"output","text":"row","style":"help-item"}]`, string(data))

	var back []Line
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back[0].IsCommand())
	assert.Equal(t, StyleHelpItem, back[1].Style)
}

func TestGreetingLines(t *testing.T) {
	lines := GreetingLines("jane-devops")
	require.Len(t, lines, 2)
	assert.Equal(t, "Loading user profile: jane-devops...", lines[0].Text)
	assert.Equal(t, `Type "help" to see available commands.`, lines[1].Text)
}
