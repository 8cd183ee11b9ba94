// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/contact"
	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/session"
)

// ============================================================================
// SESSION HANDLERS
// ============================================================================

// SessionResponse is a session id with its transcript.
type SessionResponse struct {
	ID         string             `json:"id"`
	Transcript []interpreter.Line `json:"transcript"`
}

// SubmitRequest is one line of terminal input.
type SubmitRequest struct {
	Input string `json:"input"`
}

// CompleteResponse is the autocomplete result.
type CompleteResponse struct {
	Match string `json:"match"`
	Found bool   `json:"found"`
}

func transcriptOrEmpty(lines []interpreter.Line) []interpreter.Line {
	if lines == nil {
		return []interpreter.Line{}
	}
	return lines
}

// handleCreateSession handles POST /api/sessions.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create()
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			writeError(w, http.StatusServiceUnavailable, "too many active sessions, try again later")
			return
		}
		s.logger.Error("session create failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	writeJSON(w, http.StatusCreated, SessionResponse{
		ID:         sess.ID(),
		Transcript: transcriptOrEmpty(sess.Transcript()),
	})
}

// lookupSession resolves {id}, writing a 404 when it is unknown.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

// handleGetSession handles GET /api/sessions/{id}.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	sess.Touch()
	writeJSON(w, http.StatusOK, SessionResponse{ID: sess.ID(), Transcript: transcriptOrEmpty(sess.Transcript())})
}

// StatusResponse describes a session without its transcript.
type StatusResponse struct {
	session.Status
	Age  string `json:"age"`
	Idle string `json:"idle"`
}

// handleStatus handles GET /api/sessions/{id}/status. It does not count as
// activity.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	st := sess.GetStatus()
	writeJSON(w, http.StatusOK, StatusResponse{
		Status: st,
		Age:    session.FormatDuration(st.Duration),
		Idle:   session.FormatDuration(st.IdleTime),
	})
}

// handleDeleteSession handles DELETE /api/sessions/{id}.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSubmit handles POST /api/sessions/{id}/submit.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Input) > MaxInputLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("input exceeds %d bytes", MaxInputLength))
		return
	}

	lines := sess.Submit(req.Input)
	if token := interpreter.Normalize(req.Input); token != "" {
		_, known := sess.Table().Lookup(token)
		s.metrics.Command(token, known)
	}

	writeJSON(w, http.StatusOK, SessionResponse{ID: sess.ID(), Transcript: transcriptOrEmpty(lines)})
}

// handleComplete handles GET /api/sessions/{id}/complete?partial=.
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	match, found := sess.Autocomplete(r.URL.Query().Get("partial"))
	writeJSON(w, http.StatusOK, CompleteResponse{Match: match, Found: found})
}

// ============================================================================
// CONTENT HANDLERS
// ============================================================================

// CommandInfo is one visible command.
type CommandInfo struct {
	Token       string `json:"token"`
	Description string `json:"description"`
}

// SkillsResponse is the filtered skills list.
type SkillsResponse struct {
	Category string          `json:"category"`
	Skills   []profile.Skill `json:"skills"`
}

// handleCommands handles GET /api/commands.
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	visible := interpreter.DefaultTable(s.profile.Get()).Visible()
	out := make([]CommandInfo, 0, len(visible))
	for _, e := range visible {
		out = append(out, CommandInfo{Token: e.Token, Description: e.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleProfile handles GET /api/profile.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.profile.Get())
}

// handleSkills handles GET /api/skills?category=.
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = profile.AllCategories
	}
	writeJSON(w, http.StatusOK, SkillsResponse{
		Category: category,
		Skills:   s.profile.Get().Filter(category),
	})
}

// handleCategories handles GET /api/categories.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.profile.Get().Categories())
}

// ============================================================================
// CONTACT HANDLER
// ============================================================================

// ContactResponse carries the visitor-facing status message.
type ContactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleContact handles POST /api/contact.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if !decodeJSON(w, r, &form) {
		return
	}

	form = form.Trimmed()
	if err := form.Validate(); err != nil {
		s.metrics.Contact("invalid")
		var verrs contact.ValidationErrors
		errors.As(err, &verrs)
		writeJSON(w, http.StatusBadRequest, ErrorBody{Error: ErrorDetail{
			Message: "invalid contact form",
			Code:    http.StatusBadRequest,
			Fields:  verrs,
		}})
		return
	}

	if s.contact == nil || !s.contact.Configured() {
		s.metrics.Contact("unconfigured")
		writeError(w, http.StatusServiceUnavailable, "contact form is not configured")
		return
	}

	err := s.contact.Submit(r.Context(), form)
	status := contact.StatusFor(err)
	switch {
	case err == nil:
		s.metrics.Contact("success")
		writeJSON(w, http.StatusOK, ContactResponse{Status: status.Kind.String(), Message: status.Message})
	case errors.Is(err, contact.ErrRateLimited):
		s.metrics.Contact("rate_limited")
		w.Header().Set("Retry-After", "60")
		writeError(w, http.StatusTooManyRequests, status.Message)
	default:
		s.metrics.Contact("rejected")
		s.logger.Warn("contact submission failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, status.Message)
	}
}

// ============================================================================
// HEALTH HANDLER
// ============================================================================

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Sessions      int    `json:"sessions"`
	Uptime        string `json:"uptime"`
	ContactStatus string `json:"contact_status"`
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthResponse{
		Status:        "ok",
		Version:       s.opts.Version,
		Sessions:      s.sessions.Len(),
		Uptime:        session.FormatDuration(time.Since(s.started)),
		ContactStatus: "not_configured",
	}
	if s.contact != nil && s.contact.Configured() {
		health.ContactStatus = "configured"
	}
	writeJSON(w, http.StatusOK, health)
}
