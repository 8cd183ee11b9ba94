// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile holds the biographical content rendered by every surface
// of the portfolio: the terminal commands, the TUI sections and the HTTP API.
//
// A default profile is embedded in the binary. A TOML file can override any
// field; missing fields keep their default values.
package profile

import (
	_ "embed"
	"fmt"
	"net/mail"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML string

// =============================================================================
// PROFILE STRUCTURES
// =============================================================================

// Profile is the complete portfolio content.
type Profile struct {
	// Identity
	Handle   string `toml:"handle" json:"handle"`
	Name     string `toml:"name" json:"name"`
	Initials string `toml:"initials" json:"initials"`
	Title    string `toml:"title" json:"title"`
	Identity string `toml:"identity" json:"identity"` // whoami line
	Location string `toml:"location" json:"location"`

	// Hero and About copy
	Subtitle string   `toml:"subtitle" json:"subtitle"`
	Tagline  string   `toml:"tagline" json:"tagline"`
	Summary  string   `toml:"summary" json:"summary"` // about line
	Bio      []string `toml:"bio" json:"bio"`         // Markdown paragraphs
	Roles    []string `toml:"roles" json:"roles"`     // Rotated in the hero
	Tags     []string `toml:"tags" json:"tags"`

	// Contact
	Email string `toml:"email" json:"email"`
	Phone string `toml:"phone" json:"phone"`

	// Kernel is the uname -a banner
	Kernel string `toml:"kernel" json:"kernel"`

	// TerminalSkills is the short list printed by the skills command.
	// Falls back to every skill name when empty.
	TerminalSkills []string `toml:"terminal_skills" json:"terminal_skills"`

	Socials  []Social  `toml:"socials" json:"socials"`
	Skills   []Skill   `toml:"skills" json:"skills"`
	Services []Service `toml:"services" json:"services"`
}

// Social is an external profile link.
type Social struct {
	Label string `toml:"label" json:"label"`
	URL   string `toml:"url" json:"url"`
}

// Skill is one entry of the skills grid.
type Skill struct {
	Name     string `toml:"name" json:"name"`
	Category string `toml:"category" json:"category"`
	Level    int    `toml:"level" json:"level"` // 0-100
}

// Service is one card of the services grid.
type Service struct {
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the embedded profile.
func Default() *Profile {
	p, err := Parse(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded profile is invalid: %v", err))
	}
	return p
}

// Parse decodes a complete profile from TOML text and validates it.
func Parse(text string) (*Profile, error) {
	p := &Profile{}
	if _, err := toml.Decode(text, p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads a profile file and overlays it on the embedded default.
// An empty path returns the default.
func Load(path string) (*Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	var override Profile
	if _, err := toml.DecodeFile(path, &override); err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", path, err)
	}
	p.Merge(&override)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

// Merge copies every non-zero field of other onto p. Lists replace lists
// wholesale so a profile file can drop default skills.
func (p *Profile) Merge(other *Profile) {
	if other == nil {
		return
	}

	str := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	str(&p.Handle, other.Handle)
	str(&p.Name, other.Name)
	str(&p.Initials, other.Initials)
	str(&p.Title, other.Title)
	str(&p.Identity, other.Identity)
	str(&p.Location, other.Location)
	str(&p.Subtitle, other.Subtitle)
	str(&p.Tagline, other.Tagline)
	str(&p.Summary, other.Summary)
	str(&p.Email, other.Email)
	str(&p.Phone, other.Phone)
	str(&p.Kernel, other.Kernel)

	if len(other.Bio) > 0 {
		p.Bio = other.Bio
	}
	if len(other.Roles) > 0 {
		p.Roles = other.Roles
	}
	if len(other.Tags) > 0 {
		p.Tags = other.Tags
	}
	if len(other.TerminalSkills) > 0 {
		p.TerminalSkills = other.TerminalSkills
	}
	if len(other.Socials) > 0 {
		p.Socials = other.Socials
	}
	if len(other.Skills) > 0 {
		p.Skills = other.Skills
	}
	if len(other.Services) > 0 {
		p.Services = other.Services
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid profile field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the fields every surface relies on.
func (p *Profile) Validate() error {
	var errs ValidateErrors

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "is required"})
	}
	if p.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "is required"})
	} else if _, err := mail.ParseAddress(p.Email); err != nil {
		errs = append(errs, ValidationError{Field: "email", Message: fmt.Sprintf("invalid address %q", p.Email)})
	}
	for i, s := range p.Skills {
		if s.Name == "" || s.Category == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("skills[%d]", i),
				Message: "name and category are required",
			})
		}
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("skills[%d].level", i),
				Message: fmt.Sprintf("must be between 0 and 100, got %d", s.Level),
			})
		}
	}
	for i, s := range p.Socials {
		if s.Label == "" || s.URL == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("socials[%d]", i),
				Message: "label and url are required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// TERMINAL CONTENT
// =============================================================================

// WhoAmI returns the identity line, derived from name and title when unset.
func (p *Profile) WhoAmI() string {
	if p.Identity != "" {
		return p.Identity
	}
	if p.Title == "" {
		return p.Name
	}
	return p.Name + " - " + p.Title
}

// Overview returns the one-line professional summary.
func (p *Profile) Overview() string {
	return p.Summary
}

// SkillNames returns the skills printed by the terminal.
func (p *Profile) SkillNames() []string {
	if len(p.TerminalSkills) > 0 {
		out := make([]string, len(p.TerminalSkills))
		copy(out, p.TerminalSkills)
		return out
	}
	out := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		out = append(out, s.Name)
	}
	return out
}

// ContactEmail returns the public contact address.
func (p *Profile) ContactEmail() string {
	return p.Email
}

// KernelBanner returns the uname -a line.
func (p *Profile) KernelBanner() string {
	if p.Kernel != "" {
		return p.Kernel
	}
	return "Linux portfolio x86_64 GNU/Linux"
}

// BioMarkdown joins the bio paragraphs into one Markdown document.
func (p *Profile) BioMarkdown() string {
	return strings.Join(p.Bio, "\n\n")
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Bio = append([]string(nil), p.Bio...)
	c.Roles = append([]string(nil), p.Roles...)
	c.Tags = append([]string(nil), p.Tags...)
	c.TerminalSkills = append([]string(nil), p.TerminalSkills...)
	c.Socials = append([]Social(nil), p.Socials...)
	c.Skills = append([]Skill(nil), p.Skills...)
	c.Services = append([]Service(nil), p.Services...)
	return &c
}
