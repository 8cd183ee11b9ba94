// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpreter implements the portfolio terminal: a fixed command
// table, a transcript of command and output lines, and prefix autocomplete.
//
// The interpreter is synchronous and single-owner. Every Submit runs to
// completion and returns the full transcript; there is no error path, an
// unknown command simply produces the "Command not found" output line.
//
// # Key Types
//
//   - Line: one transcript row, either a Command echo or an Output line
//   - Table: immutable, ordered command table injected into the interpreter
//   - Entry: a (token, description, handler) triple
//   - Interpreter: owns one transcript and dispatches input against a Table
//
// # Usage
//
//	table := interpreter.DefaultTable(prof)
//	term := interpreter.New(table, interpreter.WithGreeting(interpreter.GreetingLines(prof.Handle)...))
//
//	lines := term.Submit("  WhoAmI ")
//	// lines[len(lines)-2] == Line{Kind: KindCommand, Text: "whoami"}
//
//	match, ok := term.Autocomplete("wh")
//	// match == "whoami", ok == true
package interpreter
