// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/components"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
)

// =============================================================================
// ABOUT SECTION
// =============================================================================

// aboutModel shows the bio, the filterable skills grid and the services.
type aboutModel struct {
	profile       *profile.Profile
	theme         *styles.Theme
	keys          KeyMap
	markdownStyle string

	category string
	viewport viewport.Model
	width    int

	// Rendered bio, cached per width
	bio      string
	bioWidth int
}

func newAboutModel(p *profile.Profile, theme *styles.Theme, keys KeyMap, markdownStyle string) aboutModel {
	m := aboutModel{
		profile:       p,
		theme:         theme,
		keys:          keys,
		markdownStyle: markdownStyle,
		category:      profile.AllCategories,
		viewport:      viewport.New(80, 20),
		width:         80,
	}
	m.refresh()
	return m
}

// Category returns the active skills filter.
func (m aboutModel) Category() string {
	return m.category
}

func (m aboutModel) Update(msg tea.Msg) (aboutModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.FilterNext):
			m.category = m.profile.NextCategory(m.category, 1)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.FilterPrev):
			m.category = m.profile.NextCategory(m.category, -1)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *aboutModel) SetSize(width, height int) {
	m.width = max(width, 20)
	m.viewport.Width = m.width
	m.viewport.Height = max(height, 3)
	m.refresh()
}

// refresh re-renders the content, keeping the scroll position.
func (m *aboutModel) refresh() {
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.render())
	m.viewport.SetYOffset(offset)
}

func (m *aboutModel) renderBio() string {
	width := min(m.width, 80)
	if m.bio == "" || m.bioWidth != width {
		m.bio = components.RenderMarkdown(m.profile.BioMarkdown(), width, m.markdownStyle)
		m.bioWidth = width
	}
	return m.bio
}

func (m *aboutModel) render() string {
	t := m.theme
	p := m.profile
	sections := make([]string, 0, 8)

	sections = append(sections, t.SectionTitle.Render("About Me"))
	if p.Subtitle != "" {
		sections = append(sections, t.SectionSub.Render(p.Subtitle))
	}
	sections = append(sections, m.renderBio())

	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			tags = append(tags, t.Tag.Render(tag))
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, tags...))
	}

	sections = append(sections, "", t.SectionTitle.Render("Skills"), m.renderChips())
	skills := p.Filter(m.category)
	if len(skills) == 0 {
		sections = append(sections, t.SectionSub.Render("No skills in this category."))
	} else {
		sections = append(sections, components.SkillList{
			Skills:   skills,
			BarWidth: 20,
			Theme:    t,
		}.Render())
	}

	if len(p.Services) > 0 {
		sections = append(sections, "", t.SectionTitle.Render("Services"), m.renderServices())
	}

	return strings.Join(sections, "\n")
}

// renderChips renders the category filter with the active one highlighted.
// Chips wrap onto new rows when they exceed the width.
func (m *aboutModel) renderChips() string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range m.profile.Categories() {
		style := m.theme.Chip
		if c == m.category {
			style = m.theme.ChipActive
		}
		chip := style.Render(c)
		w := lipgloss.Width(chip) + 1
		if rowWidth+w > m.width && len(row) > 0 {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

// renderServices lays out service cards in as many columns as fit.
func (m *aboutModel) renderServices() string {
	t := m.theme
	cards := make([]string, 0, len(m.profile.Services))
	for _, s := range m.profile.Services {
		cards = append(cards, t.ServiceCard.Render(
			t.ServiceTitle.Render(s.Title)+"\n"+t.ServiceDesc.Render(s.Description),
		))
	}

	cardWidth := t.ServiceCard.GetWidth() + t.ServiceCard.GetHorizontalFrameSize()
	perRow := max(1, m.width/max(cardWidth, 1))

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return strings.Join(rows, "\n")
}

func (m aboutModel) View() string {
	return m.viewport.View()
}
