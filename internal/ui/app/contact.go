// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoobkibrahim/portfolio-tui/internal/contact"
	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/ui/styles"
)

// =============================================================================
// CONTACT SECTION
// =============================================================================

// Form field order. focusButton follows the last input.
const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	focusButton
)

var fieldLabels = [...]string{"Name", "Email", "Subject", "Message"}
var fieldKeys = [...]string{contact.FieldName, contact.FieldEmail, contact.FieldSubject, contact.FieldMessage}

// Submitter delivers a contact form.
type Submitter interface {
	Submit(ctx context.Context, form contact.Form) error
}

// contactModel is the contact info panel and the message form.
type contactModel struct {
	profile *profile.Profile
	theme   *styles.Theme
	keys    KeyMap

	client  Submitter
	timeout time.Duration

	inputs [4]textinput.Model
	focus  int

	submitting bool
	spinner    spinner.Model
	errs       contact.ValidationErrors
	status     contact.Status
	statusSeq  int
}

func newContactModel(p *profile.Profile, theme *styles.Theme, keys KeyMap, client Submitter, timeout time.Duration) contactModel {
	placeholders := [...]string{"Your Name", "your@email.com", "Subject", "Your Message"}
	limits := [...]int{120, 254, 200, contact.MaxMessageLength}

	var inputs [4]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.PlaceholderStyle = theme.InputPlaceholder
		ti.CharLimit = limits[i]
		ti.Width = 48
		inputs[i] = ti
	}

	sp := spinner.New()
	sp.Spinner = styles.LineSpinner.Bubbles()
	sp.Style = theme.Spinner

	if timeout <= 0 {
		timeout = contact.DefaultClientConfig().Timeout
	}

	return contactModel{
		profile: p,
		theme:   theme,
		keys:    keys,
		client:  client,
		timeout: timeout,
		inputs:  inputs,
		spinner: sp,
	}
}

// Form returns the current field values.
func (m contactModel) Form() contact.Form {
	return contact.Form{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Subject: m.inputs[fieldSubject].Value(),
		Message: m.inputs[fieldMessage].Value(),
	}
}

// Focus focuses the current field.
func (m *contactModel) Focus() tea.Cmd {
	return m.setFocus(m.focus)
}

// Blur removes focus from every field.
func (m *contactModel) Blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *contactModel) setFocus(i int) tea.Cmd {
	m.focus = (i + focusButton + 1) % (focusButton + 1)
	m.Blur()
	if m.focus < focusButton {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m contactModel) Update(msg tea.Msg) (contactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Send):
			return m.submit()
		case key.Matches(msg, m.keys.FocusNext):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.FocusPrev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Confirm):
			if m.focus == focusButton {
				return m.submit()
			}
			return m, m.setFocus(m.focus + 1)
		}

		if m.focus < focusButton && !m.submitting {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
		return m, nil

	case contactResultMsg:
		m.submitting = false
		m.status = contact.StatusFor(msg.err)
		if msg.err == nil {
			for i := range m.inputs {
				m.inputs[i].Reset()
			}
		}
		m.statusSeq++
		seq := m.statusSeq
		return m, tea.Tick(contact.DismissAfter, func(time.Time) tea.Msg {
			return dismissStatusMsg{seq: seq}
		})

	case dismissStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = contact.Status{}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blinks
	if m.focus < focusButton {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit validates the form and sends it in the background.
func (m contactModel) submit() (contactModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	form := m.Form().Trimmed()
	m.errs = nil
	if err := form.Validate(); err != nil {
		var verrs contact.ValidationErrors
		if errors.As(err, &verrs) {
			m.errs = verrs
		}
		return m, nil
	}

	m.submitting = true
	m.status = contact.Status{}
	return m, tea.Batch(m.spinner.Tick, sendContact(m.client, form, m.timeout))
}

func sendContact(client Submitter, form contact.Form, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return contactResultMsg{err: contact.ErrMissingAccessKey}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return contactResultMsg{err: client.Submit(ctx, form)}
	}
}

func (m contactModel) fieldError(field string) string {
	for _, e := range m.errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// =============================================================================
// CONTACT VIEW
// =============================================================================

func (m contactModel) View() string {
	t := m.theme
	sections := []string{t.SectionTitle.Render("Get In Touch"), m.renderInfo(), "", m.renderForm()}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, "", status)
	}
	return strings.Join(sections, "\n")
}

func (m contactModel) renderInfo() string {
	t := m.theme
	p := m.profile

	var rows []string
	if p.Email != "" {
		rows = append(rows, t.Label.Render("Email")+t.Link.Render(p.Email))
	}
	if p.Location != "" {
		rows = append(rows, t.Label.Render("Location")+t.CommandText.Render(p.Location))
	}
	if p.Phone != "" {
		rows = append(rows, t.Label.Render("Phone")+t.Link.Render(p.Phone))
	}
	for _, s := range p.Socials {
		rows = append(rows, t.Label.Render(s.Label)+t.Link.Render(s.URL))
	}
	return strings.Join(rows, "\n")
}

func (m contactModel) renderForm() string {
	t := m.theme

	rows := make([]string, 0, len(m.inputs)+1)
	for i := range m.inputs {
		box := t.Input
		if m.focus == i {
			box = t.InputFocused
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, t.Label.Render(fieldLabels[i]), box.Render(m.inputs[i].View()))
		if msg := m.fieldError(fieldKeys[i]); msg != "" {
			row += " " + t.FieldError.Render(fieldLabels[i]+" "+msg)
		}
		rows = append(rows, row)
	}

	button := t.Button
	if m.focus == focusButton {
		button = t.ButtonFocused
	}
	label := "Send Message"
	if m.submitting {
		label = m.spinner.View() + " Sending..."
	}
	rows = append(rows, t.Label.Render("")+button.Render(label))

	return strings.Join(rows, "\n")
}

func (m contactModel) renderStatus() string {
	switch m.status.Kind {
	case contact.StatusSuccess:
		return m.theme.SuccessStyle.Render(styles.StatusIndicators.Success + " " + m.status.Message)
	case contact.StatusError:
		return m.theme.ErrorStyle.Render(styles.StatusIndicators.Error+" "+m.status.Message) +
			"\n" + m.theme.Link.Render(contact.MailtoURL(m.profile.Email, "", ""))
	default:
		return ""
	}
}
