// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the portfolio packages.
//
// # Key Functions
//
// Text layout:
//   - PadRight: left-aligned fixed-width columns (help listing)
//   - TruncateWidth: width-aware truncation with ellipsis
//   - StringWidth: display width of a string
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	row := util.PadRight("whoami", 18) + " - Display user profile"
//
//	err := util.AtomicWriteFile(path, data, 0600)
package util
