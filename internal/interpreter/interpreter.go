// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpreter

import "fmt"

// NotFoundFormat is the output line for input that matches no command.
const NotFoundFormat = `Command not found: %s. Type "help" for list.`

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithGreeting seeds the transcript with lines shown before any input.
func WithGreeting(lines ...Line) Option {
	return func(in *Interpreter) {
		in.transcript = append(in.transcript, lines...)
	}
}

// WithMaxLines caps the transcript at n lines, discarding the oldest ones.
// Zero or a negative n leaves the transcript unbounded.
func WithMaxLines(n int) Option {
	return func(in *Interpreter) {
		if n < 0 {
			n = 0
		}
		in.maxLines = n
	}
}

// Interpreter dispatches input against a command table and owns the
// resulting transcript. It is not safe for concurrent use; callers that
// share one across goroutines must serialize access.
type Interpreter struct {
	table      *Table
	transcript []Line
	maxLines   int
}

// New creates an interpreter over table.
func New(table *Table, opts ...Option) *Interpreter {
	in := &Interpreter{table: table}
	for _, opt := range opts {
		opt(in)
	}
	in.trim()
	return in
}

// Submit processes one line of input and returns the transcript afterwards.
//
// Empty input changes nothing. A known command appends its echo followed by
// its output, unless the command resets the transcript, in which case the
// transcript becomes empty and the command is not recorded. Anything else
// appends the echo and a single not-found line.
func (in *Interpreter) Submit(raw string) []Line {
	input := Normalize(raw)
	if input == "" {
		return in.Transcript()
	}

	entry, ok := in.table.Lookup(input)
	if !ok {
		in.transcript = append(in.transcript,
			CommandLine(input),
			OutputLine(fmt.Sprintf(NotFoundFormat, input)),
		)
		in.trim()
		return in.Transcript()
	}

	result := entry.Handler(in.table)
	if result.Reset {
		in.transcript = nil
		return in.Transcript()
	}

	in.transcript = append(in.transcript, CommandLine(input))
	in.transcript = append(in.transcript, result.Lines...)
	in.trim()
	return in.Transcript()
}

// Autocomplete returns the first command token, in table order, that starts
// with the lower-cased partial input.
func (in *Interpreter) Autocomplete(partial string) (string, bool) {
	return in.table.Complete(partial)
}

// Transcript returns a copy of the current transcript.
func (in *Interpreter) Transcript() []Line {
	out := make([]Line, len(in.transcript))
	copy(out, in.transcript)
	return out
}

// Len returns the number of lines in the transcript.
func (in *Interpreter) Len() int {
	return len(in.transcript)
}

// Table returns the command table the interpreter dispatches against.
func (in *Interpreter) Table() *Table {
	return in.table
}

func (in *Interpreter) trim() {
	if in.maxLines == 0 || len(in.transcript) <= in.maxLines {
		return
	}
	drop := len(in.transcript) - in.maxLines
	kept := make([]Line, in.maxLines)
	copy(kept, in.transcript[drop:])
	in.transcript = kept
}
