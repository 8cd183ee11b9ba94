// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Result is what a handler contributes to the transcript.
type Result struct {
	// Lines are appended after the command echo.
	Lines []Line

	// Reset replaces the whole transcript with an empty one. The command
	// itself is not recorded when Reset is set.
	Reset bool
}

// Handler produces the output of a command. It receives the table it was
// dispatched from so listings such as help can describe their siblings.
type Handler func(t *Table) Result

// Entry is one row of the command table.
type Entry struct {
	// Token is the normalized keyword (e.g., "whoami")
	Token string

	// Description is shown by help
	Description string

	// Handler executes the command
	Handler Handler

	// Hidden commands run but are neither listed by help nor autocompleted
	Hidden bool
}

// =============================================================================
// COMMAND TABLE
// =============================================================================

// Errors returned by NewTable.
var (
	ErrEmptyToken     = errors.New("command token is empty")
	ErrDuplicateToken = errors.New("duplicate command token")
	ErrNilHandler     = errors.New("command handler is nil")
)

// Table is an immutable, ordered command table. Iteration order is the order
// entries were given to NewTable and is what help and autocomplete follow.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table from entries. Tokens must be non-empty, unique and
// already in normalized form, otherwise they could never be matched.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Token == "" {
			return nil, ErrEmptyToken
		}
		if Normalize(e.Token) != e.Token {
			return nil, fmt.Errorf("command token %q is not normalized", e.Token)
		}
		if e.Handler == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilHandler, e.Token)
		}
		if _, dup := t.index[e.Token]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateToken, e.Token)
		}
		t.index[e.Token] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// MustTable is NewTable for statically known tables. It panics on error.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the entry registered for token.
func (t *Table) Lookup(token string) (Entry, bool) {
	i, ok := t.index[token]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns every entry, hidden ones included, in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Visible returns the entries shown by help, in table order.
func (t *Table) Visible() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries, hidden ones included.
func (t *Table) Len() int {
	return len(t.entries)
}

// Complete returns the first visible token that starts with the lower-cased
// partial. An empty partial matches the first visible entry.
func (t *Table) Complete(partial string) (string, bool) {
	prefix := lower(partial)
	for _, e := range t.entries {
		if e.Hidden {
			continue
		}
		if strings.HasPrefix(e.Token, prefix) {
			return e.Token, true
		}
	}
	return "", false
}

// Candidates returns every visible token starting with the lower-cased
// partial, in table order. Line editors use it to cycle through matches.
func (t *Table) Candidates(partial string) []string {
	prefix := lower(partial)
	var out []string
	for _, e := range t.entries {
		if !e.Hidden && strings.HasPrefix(e.Token, prefix) {
			out = append(out, e.Token)
		}
	}
	return out
}
