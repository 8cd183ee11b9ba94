// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session hosts many independent terminal sessions with idle expiry.
package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
)

// Sentinel errors.
var (
	ErrNotFound        = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Factory builds the interpreter for a new session.
type Factory func() *interpreter.Interpreter

// Config holds configuration for the session manager.
type Config struct {
	// IdleTimeout drops sessions idle for longer (default: 30 minutes)
	IdleTimeout time.Duration

	// SweepInterval is how often Run sweeps (default: 1 minute)
	SweepInterval time.Duration

	// MaxSessions bounds concurrent sessions (0 = unbounded)
	MaxSessions int
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		IdleTimeout:   30 * time.Minute,
		SweepInterval: time.Minute,
		MaxSessions:   1000,
	}
}

// Manager maps session ids to sessions. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	factory       Factory
	idleTimeout   time.Duration
	sweepInterval time.Duration
	maxSessions   int

	// Callbacks
	onChange func(active int)
	onExpire func(id string)
}

// NewManager creates a new session manager.
func NewManager(cfg Config, factory Factory) *Manager {
	def := DefaultConfig()
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = def.IdleTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = def.SweepInterval
	}
	if cfg.MaxSessions < 0 {
		cfg.MaxSessions = 0
	}

	return &Manager{
		sessions:      make(map[string]*Session),
		factory:       factory,
		idleTimeout:   cfg.IdleTimeout,
		sweepInterval: cfg.SweepInterval,
		maxSessions:   cfg.MaxSessions,
	}
}

// =============================================================================
// CALLBACKS
// =============================================================================

// SetChangeCallback sets the function called with the session count after
// every create, delete or sweep.
func (m *Manager) SetChangeCallback(fn func(active int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// SetExpireCallback sets the function called for each session dropped by Sweep.
func (m *Manager) SetExpireCallback(fn func(id string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = fn
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Create starts a new session.
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.mu.Unlock()
		return nil, ErrTooManySessions
	}

	s := newSession(uuid.NewString(), m.factory(), time.Now())
	m.sessions[s.id] = s
	active := len(m.sessions)
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange(active)
	}
	return s, nil
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete ends the session with id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	if _, ok := m.sessions[id]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.sessions, id)
	active := len(m.sessions)
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange(active)
	}
	return nil
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IdleTimeout returns the configured idle timeout.
func (m *Manager) IdleTimeout() time.Duration {
	return m.idleTimeout
}

// =============================================================================
// EXPIRY
// =============================================================================

// Sweep drops every session idle for longer than the idle timeout as of now
// and returns how many were dropped.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.idleAt(now) > m.idleTimeout {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(m.sessions, id)
	}
	active := len(m.sessions)
	onChange := m.onChange
	onExpire := m.onExpire
	m.mu.Unlock()

	// Execute callbacks outside lock
	if onExpire != nil {
		for _, id := range expired {
			onExpire(id)
		}
	}
	if len(expired) > 0 && onChange != nil {
		onChange(active)
	}
	return len(expired)
}

// Run sweeps periodically until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func formatInt(n int) string {
	return strconv.Itoa(n)
}
