// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import "time"

// StatusKind is the outcome shown after a submission.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return ""
	}
}

// Messages shown to the visitor.
const (
	SuccessMessage = "Message sent successfully! I'll get back to you soon."
	ErrorMessage   = "Failed to send message. Please try again or email me directly."
)

// DismissAfter is how long a status stays visible.
const DismissAfter = 5 * time.Second

// Status is the visitor-facing result of a submission.
type Status struct {
	Kind    StatusKind `json:"-"`
	Message string     `json:"message"`
}

// StatusFor maps a Submit result to the message shown to the visitor.
// Every failure yields the same error message.
func StatusFor(err error) Status {
	if err != nil {
		return Status{Kind: StatusError, Message: ErrorMessage}
	}
	return Status{Kind: StatusSuccess, Message: SuccessMessage}
}

// Visible reports whether the status has something to show.
func (s Status) Visible() bool {
	return s.Kind != StatusNone && s.Message != ""
}
