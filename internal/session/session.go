// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"time"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
)

// =============================================================================
// SESSION
// =============================================================================

// Session is one visitor's terminal. The embedded interpreter is only
// touched with mu held, so each transcript keeps a single logical owner
// even when requests for the same session race.
type Session struct {
	mu sync.Mutex

	id           string
	interp       *interpreter.Interpreter
	startTime    time.Time
	lastActivity time.Time
	commands     int
}

func newSession(id string, interp *interpreter.Interpreter, now time.Time) *Session {
	return &Session{
		id:           id,
		interp:       interp,
		startTime:    now,
		lastActivity: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Submit runs one line of input and returns the resulting transcript.
func (s *Session) Submit(raw string) []interpreter.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = time.Now()
	if interpreter.Normalize(raw) != "" {
		s.commands++
	}
	return s.interp.Submit(raw)
}

// Autocomplete returns the first visible command starting with partial.
func (s *Session) Autocomplete(partial string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = time.Now()
	return s.interp.Autocomplete(partial)
}

// Table returns the command table the session dispatches through. Tables are
// immutable, so no lock is needed.
func (s *Session) Table() *interpreter.Table {
	return s.interp.Table()
}

// Transcript returns a copy of the transcript.
func (s *Session) Transcript() []interpreter.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interp.Transcript()
}

// Touch records activity without running a command.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()
}

// IdleTime returns how long since last activity.
func (s *Session) IdleTime() time.Duration {
	return s.idleAt(time.Now())
}

func (s *Session) idleAt(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActivity)
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a point-in-time snapshot of a session.
type Status struct {
	SessionID string        `json:"id"`
	StartTime time.Time     `json:"started_at"`
	Duration  time.Duration `json:"-"`
	IdleTime  time.Duration `json:"-"`
	Commands  int           `json:"commands"`
	Lines     int           `json:"lines"`
}

// GetStatus returns the current session status.
func (s *Session) GetStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	return Status{
		SessionID: s.id,
		StartTime: s.startTime,
		Duration:  now.Sub(s.startTime),
		IdleTime:  now.Sub(s.lastActivity),
		Commands:  s.commands,
		Lines:     s.interp.Len(),
	}
}

// FormatDuration returns a human-readable duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return formatInt(int(d.Seconds())) + "s"
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return formatInt(mins) + "m"
	}
	return formatInt(mins) + "m " + formatInt(secs) + "s"
}
