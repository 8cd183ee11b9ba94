// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
	"github.com/ayoobkibrahim/portfolio-tui/internal/util"
)

// =============================================================================
// SKILL BARS
// =============================================================================

// Progress bar glyphs.
const (
	BarFull  = "#"
	BarEmpty = "-"
)

// RenderProgressBar renders a bar of width cells filled to percent (0-100).
func RenderProgressBar(width, percent int) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(percent, 100))
	filled := width * percent / 100
	return strings.Repeat(BarFull, filled) + strings.Repeat(BarEmpty, width-filled)
}

// SkillList renders skills as "name [#####-----] 80%" rows.
type SkillList struct {
	Skills    []profile.Skill
	NameWidth int
	BarWidth  int
	Theme     *styles.Theme
}

// Render renders the list, one skill per line.
func (l SkillList) Render() string {
	if len(l.Skills) == 0 {
		return ""
	}

	nameWidth := l.NameWidth
	if nameWidth <= 0 {
		for _, s := range l.Skills {
			nameWidth = max(nameWidth, util.StringWidth(s.Name))
		}
	}
	barWidth := l.BarWidth
	if barWidth <= 0 {
		barWidth = 20
	}

	nameStyle, levelStyle := lipgloss.NewStyle(), lipgloss.NewStyle()
	if l.Theme != nil {
		nameStyle, levelStyle = l.Theme.SkillName, l.Theme.SkillLevel
	}

	rows := make([]string, 0, len(l.Skills))
	for _, s := range l.Skills {
		rows = append(rows, fmt.Sprintf("%s [%s] %3d%%",
			nameStyle.Render(util.PadRight(util.TruncateWidth(s.Name, nameWidth), nameWidth)),
			levelStyle.Render(RenderProgressBar(barWidth, s.Level)),
			s.Level,
		))
	}
	return strings.Join(rows, "\n")
}
