// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contact implements the contact flow: form validation, mailto links
// and submission to a hosted form endpoint.
package contact

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// =============================================================================
// FORM
// =============================================================================

// Form is a contact message.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Field names used in validation errors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// MaxMessageLength caps the message body.
const MaxMessageLength = 5000

// ValidationError describes one invalid form field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of field errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field failed validation.
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Trimmed returns a copy of the form with surrounding whitespace removed.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks that every field is present and the email is well formed.
// It returns ValidationErrors or nil.
func (f Form) Validate() error {
	f = f.Trimmed()
	var errs ValidationErrors

	required := []struct{ field, value string }{
		{FieldName, f.Name},
		{FieldEmail, f.Email},
		{FieldSubject, f.Subject},
		{FieldMessage, f.Message},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, &ValidationError{Field: r.field, Message: "is required"})
		}
	}

	if f.Email != "" {
		addr, err := mail.ParseAddress(f.Email)
		if err != nil || addr.Address != f.Email {
			errs = append(errs, &ValidationError{Field: FieldEmail, Message: "is not a valid email address"})
		}
	}
	if len(f.Message) > MaxMessageLength {
		errs = append(errs, &ValidationError{
			Field:   FieldMessage,
			Message: fmt.Sprintf("must be at most %d characters", MaxMessageLength),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// MAILTO
// =============================================================================

// MailtoURL builds a mailto: link for address with an optional subject and
// body.
func MailtoURL(address, subject, body string) string {
	u := url.URL{Scheme: "mailto", Opaque: address}

	q := url.Values{}
	if subject != "" {
		q.Set("subject", subject)
	}
	if body != "" {
		q.Set("body", body)
	}
	// mailto expects %20 rather than + for spaces.
	u.RawQuery = strings.ReplaceAll(q.Encode(), "+", "%20")
	return u.String()
}

// TelURL builds a tel: link, dropping formatting characters.
func TelURL(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}
