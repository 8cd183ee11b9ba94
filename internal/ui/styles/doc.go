// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the portfolio TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. A Theme groups the styles for each section of the interface:
navigation tabs, the hero, the terminal widget, the about page and the
contact form.

# Usage

	theme := styles.NewThemeFor(cfg.UI.Theme)
	theme.SetSize(msg.Width, msg.Height)
	fmt.Println(theme.Prompt.Render("~/portfolio $"))

Transcript lines are styled with Theme.LineStyle, which colors help rows
differently from other output.
*/
package styles
