// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

// AllCategories is the filter value that selects every skill.
const AllCategories = "All"

// Categories returns AllCategories followed by each distinct skill category
// in the order it first appears.
func (p *Profile) Categories() []string {
	seen := make(map[string]bool, len(p.Skills))
	out := []string{AllCategories}
	for _, s := range p.Skills {
		if seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		out = append(out, s.Category)
	}
	return out
}

// Filter returns the skills in category, in declaration order. AllCategories
// (or an empty category) returns every skill; an unknown category returns
// an empty slice.
func (p *Profile) Filter(category string) []Skill {
	if category == "" || category == AllCategories {
		return append([]Skill(nil), p.Skills...)
	}
	out := []Skill{}
	for _, s := range p.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// NextCategory returns the category after current in Categories(), wrapping
// around. step may be negative. An unknown current restarts at AllCategories.
func (p *Profile) NextCategory(current string, step int) string {
	cats := p.Categories()
	idx := -1
	for i, c := range cats {
		if c == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return AllCategories
	}
	n := len(cats)
	return cats[((idx+step)%n+n)%n]
}
