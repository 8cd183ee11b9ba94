// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
)

// =============================================================================
// TYPED ROLE ROTATION
// =============================================================================

// Typing speeds of the rotating role.
const (
	TypeDelay   = 50 * time.Millisecond
	DeleteDelay = 30 * time.Millisecond
)

// roleTyper types each role one rune at a time, holds it, deletes it and
// moves on to the next role.
type roleTyper struct {
	roles    [][]rune
	index    int
	shown    int
	deleting bool
	hold     time.Duration
}

func newRoleTyper(roles []string, hold time.Duration) roleTyper {
	r := roleTyper{hold: hold}
	for _, role := range roles {
		if role != "" {
			r.roles = append(r.roles, []rune(role))
		}
	}
	return r
}

// Text returns the currently visible part of the role.
func (r roleTyper) Text() string {
	if len(r.roles) == 0 {
		return ""
	}
	return string(r.roles[r.index][:r.shown])
}

// Step advances one rune and returns the delay until the next step.
func (r *roleTyper) Step() time.Duration {
	if len(r.roles) == 0 {
		return r.hold
	}

	full := len(r.roles[r.index])
	if !r.deleting {
		if r.shown < full {
			r.shown++
			if r.shown == full {
				return r.hold
			}
			return TypeDelay
		}
		r.deleting = true
	}

	if r.shown > 0 {
		r.shown--
	}
	if r.shown == 0 {
		r.deleting = false
		r.index = (r.index + 1) % len(r.roles)
		return TypeDelay
	}
	return DeleteDelay
}

func roleTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return roleTickMsg{}
	})
}

// =============================================================================
// HERO VIEW
// =============================================================================

// renderHeroHeader renders everything above the terminal widget.
func renderHeroHeader(p *profile.Profile, role string, theme *styles.Theme, width int) string {
	var b strings.Builder

	b.WriteString(theme.Greeting.Render("Hello, I'm"))
	b.WriteString("\n")
	b.WriteString(theme.Name.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(theme.Prompt.Render(">_ ") + theme.Role.Render(role) + theme.Cursor.Render(styles.CursorGlyph))
	b.WriteString("\n\n")

	tagline := theme.Tagline
	if width > 0 {
		tagline = tagline.Width(min(width, 72))
	}
	b.WriteString(tagline.Render(p.Tagline))
	b.WriteString("\n\n")

	links := make([]string, 0, len(p.Socials)+1)
	for _, s := range p.Socials {
		links = append(links, theme.Social.Render(s.Label))
	}
	if p.Email != "" {
		links = append(links, theme.Social.Render("Email"))
	}
	sep := "  "
	if theme.Width > 0 && theme.GetLayoutMode() == styles.LayoutNarrow {
		sep = "\n"
	}
	b.WriteString(strings.Join(links, sep))

	return b.String()
}

// heroHeaderHeight returns the rendered height of the hero header.
func heroHeaderHeight(p *profile.Profile, theme *styles.Theme, width int) int {
	return lipgloss.Height(renderHeroHeader(p, "", theme, width))
}
