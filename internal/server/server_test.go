// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/contact"
	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/session"
	"github.com/ayoobkibrahim/portfolio-tui/internal/telemetry"
)

// =============================================================================
// HELPERS
// =============================================================================

func testOptions() Options {
	return Options{
		Version:           "test",
		Greeting:          true,
		Session:           session.DefaultConfig(),
		RequestsPerSecond: 1000,
		RequestBurst:      1000,
		Metrics:           true,
	}
}

func newTestServer(t *testing.T, opts Options, client *contact.Client) (*Server, *telemetry.Metrics) {
	t.Helper()
	metrics := telemetry.New()
	return New(opts, profile.NewStore(profile.Default()), client, metrics, zap.NewNop()), metrics
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createSession(t *testing.T, h http.Handler) SessionResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[SessionResponse](t, rec)
}

// =============================================================================
// SESSION TESTS
// =============================================================================

func TestCreateSession_Greeting(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)

	resp := createSession(t, srv.Handler())
	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.Transcript, 2)
	assert.Equal(t, interpreter.KindOutput, resp.Transcript[0].Kind)
	assert.Contains(t, resp.Transcript[0].Text, "Loading user profile:")
	assert.Equal(t, 1, srv.Sessions().Len())
}

func TestCreateSession_NoGreeting(t *testing.T) {
	opts := testOptions()
	opts.Greeting = false
	srv, _ := newTestServer(t, opts, nil)

	resp := createSession(t, srv.Handler())
	assert.NotNil(t, resp.Transcript)
	assert.Empty(t, resp.Transcript)
}

func TestCreateSession_TooMany(t *testing.T) {
	opts := testOptions()
	opts.Session.MaxSessions = 1
	srv, _ := newTestServer(t, opts, nil)
	h := srv.Handler()

	createSession(t, h)
	rec := do(t, h, http.MethodPost, "/api/sessions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSubmit(t *testing.T) {
	opts := testOptions()
	opts.Greeting = false
	srv, metrics := newTestServer(t, opts, nil)
	h := srv.Handler()
	id := createSession(t, h).ID

	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantFirst interpreter.Line
		wantLast  string
	}{
		{
			name:      "whoami",
			input:     "whoami",
			wantLen:   2,
			wantFirst: interpreter.CommandLine("whoami"),
			wantLast:  profile.Default().WhoAmI(),
		},
		{
			name:      "unknown command",
			input:     "  FOO ",
			wantLen:   4,
			wantFirst: interpreter.CommandLine("whoami"),
			wantLast:  `Command not found: foo. Type "help" for list.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", SubmitRequest{Input: tt.input})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			resp := decode[SessionResponse](t, rec)
			require.Len(t, resp.Transcript, tt.wantLen)
			assert.Equal(t, tt.wantFirst, resp.Transcript[0])
			assert.Equal(t, tt.wantLast, resp.Transcript[len(resp.Transcript)-1].Text)
		})
	}

	rec := do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", SubmitRequest{Input: "clear"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[SessionResponse](t, rec).Transcript)

	scrape := do(t, metrics.Handler(), http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, scrape, `portfolio_commands_total{command="whoami",known="true"} 1`)
	assert.Contains(t, scrape, `portfolio_commands_total{command="unknown",known="false"} 1`)
}

func TestSubmit_EmptyInputIsNoop(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	created := createSession(t, h)

	rec := do(t, h, http.MethodPost, "/api/sessions/"+created.ID+"/submit", SubmitRequest{Input: "   "})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.Transcript, decode[SessionResponse](t, rec).Transcript)
}

func TestSubmit_BadRequests(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	id := createSession(t, h).ID

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"malformed json", "/api/sessions/" + id + "/submit", "{not json", http.StatusBadRequest},
		{"unknown field", "/api/sessions/" + id + "/submit", `{"command":"help"}`, http.StatusBadRequest},
		{"input too long", "/api/sessions/" + id + "/submit", SubmitRequest{Input: strings.Repeat("a", MaxInputLength+1)}, http.StatusBadRequest},
		{"unknown session", "/api/sessions/00000000-0000-0000-0000-000000000000/submit", SubmitRequest{Input: "help"}, http.StatusNotFound},
		{"invalid session id", "/api/sessions/nope/submit", SubmitRequest{Input: "help"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)

			body := decode[ErrorBody](t, rec)
			assert.Equal(t, tt.want, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	opts := testOptions()
	opts.MaxBodyBytes = 32
	srv, _ := newTestServer(t, opts, nil)
	h := srv.Handler()
	id := createSession(t, h).ID

	rec := do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", SubmitRequest{Input: strings.Repeat("x", 100)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestGetSession(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	id := createSession(t, h).ID

	do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", SubmitRequest{Input: "contact"})

	rec := do(t, h, http.MethodGet, "/api/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[SessionResponse](t, rec)
	assert.Equal(t, id, resp.ID)
	require.Len(t, resp.Transcript, 4)
	assert.Equal(t, "Email: "+profile.Default().ContactEmail(), resp.Transcript[3].Text)
}

func TestSessionStatus(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	id := createSession(t, h).ID

	do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", SubmitRequest{Input: "whoami"})
	do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", SubmitRequest{Input: "   "})

	rec := do(t, h, http.MethodGet, "/api/sessions/"+id+"/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[map[string]interface{}](t, rec)
	assert.Equal(t, id, resp["id"])
	assert.Equal(t, float64(1), resp["commands"])
	assert.Equal(t, float64(4), resp["lines"])
	assert.NotEmpty(t, resp["age"])
	assert.NotEmpty(t, resp["idle"])

	rec = do(t, h, http.MethodGet, "/api/sessions/"+uuid.NewString()+"/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComplete(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	id := createSession(t, h).ID

	tests := []struct {
		partial string
		want    CompleteResponse
	}{
		{"wh", CompleteResponse{Match: "whoami", Found: true}},
		{"WH", CompleteResponse{Match: "whoami", Found: true}},
		{"zz", CompleteResponse{Match: "", Found: false}},
		{"una", CompleteResponse{Match: "", Found: false}},
	}

	for _, tt := range tests {
		t.Run(tt.partial, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/sessions/"+id+"/complete?partial="+tt.partial, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decode[CompleteResponse](t, rec))
		})
	}
}

func TestDeleteSession(t *testing.T) {
	srv, metrics := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	id := createSession(t, h).ID

	rec := do(t, h, http.MethodDelete, "/api/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, srv.Sessions().Len())

	rec = do(t, h, http.MethodDelete, "/api/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	scrape := do(t, metrics.Handler(), http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, scrape, "portfolio_sessions_active 0")
}

func TestSessionsAreIndependent(t *testing.T) {
	opts := testOptions()
	opts.Greeting = false
	srv, _ := newTestServer(t, opts, nil)
	h := srv.Handler()
	a := createSession(t, h).ID
	b := createSession(t, h).ID

	do(t, h, http.MethodPost, "/api/sessions/"+a+"/submit", SubmitRequest{Input: "help"})

	resp := decode[SessionResponse](t, do(t, h, http.MethodGet, "/api/sessions/"+b, nil))
	assert.Empty(t, resp.Transcript)
}

func TestNewSessionsUseCurrentProfile(t *testing.T) {
	opts := testOptions()
	opts.Greeting = false
	store := profile.NewStore(profile.Default())
	srv := New(opts, store, nil, nil, nil)
	h := srv.Handler()

	p := profile.Default()
	p.Email = "new@example.com"
	store.Set(p)

	id := createSession(t, h).ID
	resp := decode[SessionResponse](t, do(t, h, http.MethodPost, "/api/sessions/"+id+"/submit", SubmitRequest{Input: "contact"}))
	require.Len(t, resp.Transcript, 2)
	assert.Equal(t, "Email: new@example.com", resp.Transcript[1].Text)
}

// =============================================================================
// CONTENT TESTS
// =============================================================================

func TestCommands(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)

	rec := do(t, srv.Handler(), http.MethodGet, "/api/commands", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cmds := decode[[]CommandInfo](t, rec)
	tokens := make([]string, 0, len(cmds))
	for _, c := range cmds {
		tokens = append(tokens, c.Token)
		assert.NotEmpty(t, c.Description)
	}
	assert.Equal(t, []string{"help", "whoami", "about", "skills", "contact", "clear"}, tokens)
}

func TestProfile(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)

	rec := do(t, srv.Handler(), http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	p := decode[profile.Profile](t, rec)
	assert.Equal(t, profile.Default().Name, p.Name)
	assert.Equal(t, len(profile.Default().Skills), len(p.Skills))
}

func TestSkills(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	def := profile.Default()
	category := def.Skills[0].Category

	tests := []struct {
		name     string
		query    string
		category string
		want     int
	}{
		{"default is all", "", profile.AllCategories, len(def.Skills)},
		{"explicit all", "?category=All", profile.AllCategories, len(def.Skills)},
		{"one category", "?category=" + url.QueryEscape(category), category, len(def.Filter(category))},
		{"unknown category", "?category=Nope", "Nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/skills"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[SkillsResponse](t, rec)
			assert.Equal(t, tt.category, resp.Category)
			assert.NotNil(t, resp.Skills)
			assert.Len(t, resp.Skills, tt.want)
		})
	}
}

func TestCategories(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)

	rec := do(t, srv.Handler(), http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cats := decode[[]string](t, rec)
	require.NotEmpty(t, cats)
	assert.Equal(t, profile.AllCategories, cats[0])
	assert.Equal(t, profile.Default().Categories(), cats)
}

// =============================================================================
// CONTACT TESTS
// =============================================================================

func validForm() contact.Form {
	return contact.Form{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Let's talk.",
	}
}

func upstream(t *testing.T, success bool) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": success, "message": "ok"})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func contactClient(endpoint, key string) *contact.Client {
	cfg := contact.DefaultClientConfig()
	cfg.Endpoint = endpoint
	cfg.AccessKey = key
	cfg.Timeout = 5 * time.Second
	cfg.Rate = 600
	cfg.Burst = 10
	return contact.NewClient(cfg)
}

func TestContact_Success(t *testing.T) {
	ts := upstream(t, true)
	srv, metrics := newTestServer(t, testOptions(), contactClient(ts.URL, "key"))

	rec := do(t, srv.Handler(), http.MethodPost, "/api/contact", validForm())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[ContactResponse](t, rec)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, contact.SuccessMessage, resp.Message)

	scrape := do(t, metrics.Handler(), http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, scrape, `portfolio_contact_submissions_total{result="success"} 1`)
}

func TestContact_Validation(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), contactClient("http://127.0.0.1:1", "key"))

	form := validForm()
	form.Email = "not-an-email"
	form.Message = "  "

	rec := do(t, srv.Handler(), http.MethodPost, "/api/contact", form)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[ErrorBody](t, rec)
	fields := make([]string, 0, len(body.Error.Fields))
	for _, f := range body.Error.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{contact.FieldEmail, contact.FieldMessage}, fields)
}

func TestContact_Unconfigured(t *testing.T) {
	tests := []struct {
		name   string
		client *contact.Client
	}{
		{"no client", nil},
		{"no access key", contactClient("http://127.0.0.1:1", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, testOptions(), tt.client)
			rec := do(t, srv.Handler(), http.MethodPost, "/api/contact", validForm())
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		})
	}
}

func TestContact_Rejected(t *testing.T) {
	ts := upstream(t, false)
	srv, _ := newTestServer(t, testOptions(), contactClient(ts.URL, "key"))

	rec := do(t, srv.Handler(), http.MethodPost, "/api/contact", validForm())
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, contact.ErrorMessage, decode[ErrorBody](t, rec).Error.Message)
}

func TestContact_RateLimited(t *testing.T) {
	ts := upstream(t, true)
	client := contactClient(ts.URL, "key")
	srv, _ := newTestServer(t, testOptions(), client)
	h := srv.Handler()

	var last *httptest.ResponseRecorder
	for i := 0; i < 20; i++ {
		last = do(t, h, http.MethodPost, "/api/contact", validForm())
		if last.Code == http.StatusTooManyRequests {
			break
		}
	}
	require.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
}

// =============================================================================
// MIDDLEWARE TESTS
// =============================================================================

func TestRecoveredPanicIsCounted(t *testing.T) {
	srv, metrics := newTestServer(t, testOptions(), nil)

	r := chi.NewRouter()
	r.Use(srv.middleware()...)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := do(t, r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	scrape := do(t, metrics.Handler(), http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, scrape, `portfolio_http_requests_total{code="500",route="/boom"} 1`)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)

	rec := do(t, srv.Handler(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	health := decode[HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, "not_configured", health.ContactStatus)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()
	do(t, h, http.MethodGet, "/health", nil)

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `portfolio_http_requests_total{code="200",route="/health"} 1`)

	opts := testOptions()
	opts.Metrics = false
	disabled, _ := newTestServer(t, opts, nil)
	assert.Equal(t, http.StatusNotFound, do(t, disabled.Handler(), http.MethodGet, "/metrics", nil).Code)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()

	rec := do(t, h, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode[ErrorBody](t, rec).Error.Message)

	rec = do(t, h, http.MethodPut, "/api/commands", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)

	rec := do(t, srv.Handler(), http.MethodGet, "/health", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestRateLimitMiddleware(t *testing.T) {
	opts := testOptions()
	opts.RequestsPerSecond = 0.001
	opts.RequestBurst = 2
	srv, _ := newTestServer(t, opts, nil)
	h := srv.Handler()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/health", nil).Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Equal(t, 2, rl.Len())

	rl.Cleanup(time.Now().Add(time.Hour))
	assert.Equal(t, 0, rl.Len())
}

func TestCORS(t *testing.T) {
	srv, _ := newTestServer(t, testOptions(), nil)
	h := srv.Handler()

	tests := []struct {
		origin string
		want   string
	}{
		{"http://localhost:3000", "http://localhost:3000"},
		{"https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/commands", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{"direct", "203.0.113.5:1234", "", "203.0.113.5"},
		{"untrusted forwarder ignored", "203.0.113.5:1234", "198.51.100.7", "203.0.113.5"},
		{"trusted forwarder", "10.0.0.2:1234", "198.51.100.7, 10.0.0.2", "198.51.100.7"},
		{"trusted forwarder bad header", "10.0.0.2:1234", "garbage", "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, GetClientIP(req))
		})
	}
}
