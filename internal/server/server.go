// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/contact"
	"github.com/ayoobkibrahim/portfolio-tui/internal/interpreter"
	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/session"
	"github.com/ayoobkibrahim/portfolio-tui/internal/telemetry"
)

// ============================================================================
// CONSTANTS
// ============================================================================

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = "127.0.0.1:8080"

	// MaxInputLength bounds a single submitted line.
	MaxInputLength = 1024

	// DefaultMaxBodyBytes caps request bodies.
	DefaultMaxBodyBytes = 64 << 10
)

// ============================================================================
// OPTIONS
// ============================================================================

// Options configures a Server.
type Options struct {
	// Addr is the listen address (default: DefaultAddr)
	Addr string

	// Version is reported by /health
	Version string

	// Greeting seeds new sessions with the banner lines
	Greeting bool

	// MaxTranscriptLines caps each session transcript (0 = unbounded)
	MaxTranscriptLines int

	// Session configures idle expiry and the session cap
	Session session.Config

	// RequestsPerSecond and RequestBurst bound each client (default: 10/20)
	RequestsPerSecond float64
	RequestBurst      int

	// MaxBodyBytes caps request bodies (default: 64 KiB)
	MaxBodyBytes int64

	// Metrics exposes /metrics
	Metrics bool

	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration

	// CORS configures cross-origin access (default: localhost origins)
	CORS *CORSConfig
}

func (o *Options) fillDefaults() {
	if o.Addr == "" {
		o.Addr = DefaultAddr
	}
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.RequestsPerSecond <= 0 {
		o.RequestsPerSecond = 10
	}
	if o.RequestBurst <= 0 {
		o.RequestBurst = 20
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 10 * time.Second
	}
	if o.CORS == nil {
		o.CORS = DefaultCORSConfig()
	}
}

// ============================================================================
// SERVER
// ============================================================================

// Server is the HTTP API server.
type Server struct {
	opts     Options
	router   chi.Router
	sessions *session.Manager
	limiter  *RateLimiter
	profile  *profile.Store
	contact  *contact.Client
	metrics  *telemetry.Metrics
	logger   *zap.Logger
	started  time.Time
}

// New creates a Server serving the profile held by store. contactClient and
// metrics may be nil.
func New(opts Options, store *profile.Store, contactClient *contact.Client, metrics *telemetry.Metrics, logger *zap.Logger) *Server {
	opts.fillDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		opts:    opts,
		limiter: NewRateLimiter(opts.RequestsPerSecond, opts.RequestBurst),
		profile: store,
		contact: contactClient,
		metrics: metrics,
		logger:  logger,
		started: time.Now(),
	}

	s.sessions = session.NewManager(opts.Session, s.newInterpreter)
	s.sessions.SetChangeCallback(metrics.SessionsActive)
	s.sessions.SetExpireCallback(func(id string) {
		logger.Debug("session expired", zap.String("session_id", id))
	})

	s.router = s.routes()
	return s
}

// newInterpreter builds the interpreter for a new session from the current
// profile.
func (s *Server) newInterpreter() *interpreter.Interpreter {
	p := s.profile.Get()

	opts := []interpreter.Option{interpreter.WithMaxLines(s.opts.MaxTranscriptLines)}
	if s.opts.Greeting {
		opts = append(opts, interpreter.WithGreeting(interpreter.GreetingLines(p.Handle)...))
	}
	return interpreter.New(interpreter.DefaultTable(p), opts...)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions returns the session manager.
func (s *Server) Sessions() *session.Manager {
	return s.sessions
}

// ============================================================================
// ROUTES
// ============================================================================

// middleware is the chain applied to every route, outermost first. Logging
// wraps recovery so recovered panics are still logged and counted as 500s.
func (s *Server) middleware() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		LoggingMiddleware(s.logger, s.metrics),
		RecoveryMiddleware(s.logger),
		SecurityHeadersMiddleware(),
		CORSMiddleware(s.opts.CORS),
		RateLimitMiddleware(s.limiter),
		BodyLimitMiddleware(s.opts.MaxBodyBytes),
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(s.middleware()...)

	r.Get("/health", s.handleHealth)
	if s.opts.Metrics && s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Post("/submit", s.handleSubmit)
				r.Get("/complete", s.handleComplete)
				r.Get("/status", s.handleStatus)
			})
		})

		r.Get("/commands", s.handleCommands)
		r.Get("/profile", s.handleProfile)
		r.Get("/skills", s.handleSkills)
		r.Get("/categories", s.handleCategories)
		r.Post("/contact", s.handleContact)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// ============================================================================
// SERVER LIFECYCLE
// ============================================================================

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.sessions.Run(bgCtx)
	go s.limiter.Run(bgCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started",
			zap.String("addr", ln.Addr().String()),
			zap.String("version", s.opts.Version),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down", zap.Int("sessions", s.sessions.Len()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Message string                      `json:"message"`
	Code    int                         `json:"code"`
	Fields  []*contact.ValidationError `json:"fields,omitempty"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorBody{Error: ErrorDetail{Message: message, Code: status}})
}

// decodeJSON decodes a request body, writing the error response on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request format")
		return false
	}
	return true
}
