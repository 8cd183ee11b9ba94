// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpreter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and lower-cases raw input. The
// result is what gets matched against the table and echoed in the
// transcript.
func Normalize(raw string) string {
	return lower(strings.TrimSpace(raw))
}

// lower applies Unicode lower-casing. A Caser keeps state between calls, so
// one is built per call rather than shared.
func lower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}
