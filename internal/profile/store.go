// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

import "sync/atomic"

// Store holds the current profile for concurrent readers. The watcher swaps
// in new values; readers never see a partially updated profile.
type Store struct {
	v atomic.Pointer[Profile]
}

// NewStore creates a store holding p.
func NewStore(p *Profile) *Store {
	s := &Store{}
	s.Set(p)
	return s
}

// Get returns the current profile. Callers must not modify it.
func (s *Store) Get() *Profile {
	return s.v.Load()
}

// Set replaces the current profile.
func (s *Store) Set(p *Profile) {
	if p == nil {
		p = Default()
	}
	s.v.Store(p)
}
