// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session hosts many independent terminal sessions with idle expiry.
//
// # Key Types
//
//   - Manager: maps uuid session ids to sessions and sweeps idle ones
//   - Session: one interpreter guarded by a mutex
//
// # Usage
//
//	mgr := session.NewManager(session.DefaultConfig(), newInterpreter)
//	go mgr.Run(ctx)
//
//	s, err := mgr.Create()
//	lines := s.Submit("help")
package session
