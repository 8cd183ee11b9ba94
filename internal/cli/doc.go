// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the portfolio command line with cobra.
//
// Running portfolio with no arguments opens the full-screen interface. The
// subcommands expose the same content without it:
//
//	portfolio repl                      line-mode terminal with history
//	portfolio exec whoami               one command, printed
//	portfolio skills --category CI/CD   skills with level bars
//	portfolio categories                skill categories
//	portfolio about                     rendered biography
//	portfolio contact send --name ...   deliver the contact form
//	portfolio profile show --format json
//	portfolio config show|path|init|get|set|keys
//	portfolio serve --addr :8080 --watch
//	portfolio version
//
// Output is colored only on a terminal and never when NO_COLOR is set.
package cli
