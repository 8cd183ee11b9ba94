// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCommand_FoldsUnknownInput(t *testing.T) {
	m := New()

	m.Command("help", true)
	m.Command("help", true)
	m.Command("rm -rf /", false)
	m.Command("sudo", false)

	out := scrape(t, m)
	assert.Contains(t, out, `portfolio_commands_total{command="help",known="true"} 2`)
	assert.Contains(t, out, `portfolio_commands_total{command="unknown",known="false"} 2`)
	assert.NotContains(t, out, "sudo")
}

func TestSessionsActive(t *testing.T) {
	m := New()
	m.SessionsActive(3)
	assert.Contains(t, scrape(t, m), "portfolio_sessions_active 3")

	m.SessionsActive(1)
	assert.Contains(t, scrape(t, m), "portfolio_sessions_active 1")
}

func TestContactAndRequest(t *testing.T) {
	m := New()
	m.Contact("success")
	m.Contact("rejected")
	m.Contact("success")
	m.Request("/api/commands", 200, 0.01)
	m.Request("", 404, 0.01)

	out := scrape(t, m)
	assert.Contains(t, out, `portfolio_contact_submissions_total{result="success"} 2`)
	assert.Contains(t, out, `portfolio_contact_submissions_total{result="rejected"} 1`)
	assert.Contains(t, out, `portfolio_http_requests_total{code="200",route="/api/commands"} 1`)
	assert.Contains(t, out, `portfolio_http_requests_total{code="404",route="unmatched"} 1`)
	assert.Contains(t, out, "portfolio_http_request_duration_seconds_bucket")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.Command("help", true)
	m.SessionsActive(1)
	m.Contact("success")
	m.Request("/", 200, 0)
}

func TestHandler_IncludesRuntimeCollectors(t *testing.T) {
	assert.Contains(t, scrape(t, New()), "go_goroutines")
}
