// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the application-wide keyboard bindings. Section-specific
// bindings only apply while that section is shown.
type KeyMap struct {
	// Global
	Quit        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Home        key.Binding
	About       key.Binding
	Contact     key.Binding

	// About
	FilterNext key.Binding
	FilterPrev key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Contact
	FocusNext key.Binding
	FocusPrev key.Binding
	Confirm   key.Binding
	Send      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "prev section"),
		),
		Home: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "home"),
		),
		About: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "about"),
		),
		Contact: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "contact"),
		),
		FilterNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next category"),
		),
		FilterPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev category"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓", "scroll"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab", "next field"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-Tab", "prev field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "next/send"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "send"),
		),
	}
}

// sectionHelp returns the bindings listed in the help line for s.
func (k KeyMap) sectionHelp(s Section) []key.Binding {
	global := []key.Binding{k.Home, k.About, k.Contact, k.Quit}
	switch s {
	case SectionAbout:
		return append([]key.Binding{k.FilterPrev, k.FilterNext, k.ScrollDown}, global...)
	case SectionContact:
		return append([]key.Binding{k.FocusNext, k.Confirm, k.Send}, global...)
	default:
		return global
	}
}

// formatHelp renders bindings as "key desc • key desc".
func formatHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
