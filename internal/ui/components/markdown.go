// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// Glamour style names accepted by RenderMarkdown besides "auto".
const (
	MarkdownDark  = "dark"
	MarkdownLight = "light"
	MarkdownNoTTY = "notty"
)

// RenderMarkdown renders markdown for terminal display wrapped at width.
// style is "auto", "dark", "light" or "notty". The source is returned
// unchanged when the renderer cannot be built or rendering fails.
func RenderMarkdown(source string, width int, style string) string {
	if width <= 0 {
		width = 80
	}

	styleOpt := glamour.WithAutoStyle()
	switch style {
	case MarkdownDark, MarkdownLight, MarkdownNoTTY:
		styleOpt = glamour.WithStandardStyle(style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return source
	}

	rendered, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.Trim(rendered, "\n")
}
