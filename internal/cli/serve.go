// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/profile"
	"github.com/ayoobkibrahim/portfolio-tui/internal/server"
	"github.com/ayoobkibrahim/portfolio-tui/internal/session"
	"github.com/ayoobkibrahim/portfolio-tui/internal/telemetry"
)

// errWatchNeedsProfile is returned by serve --watch without a profile file.
var errWatchNeedsProfile = errors.New("--watch needs a profile file (--profile or profile.path)")

func newServeCmd(e *env) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the terminal over HTTP",
		Long: `Starts the JSON API. Each visitor gets an independent terminal session:

  POST   /api/sessions                 create a session
  POST   /api/sessions/{id}/submit     submit a line
  GET    /api/sessions/{id}/complete   autocomplete a partial command
  GET    /api/profile, /api/skills     read-only portfolio content
  POST   /api/contact                  deliver the contact form
  GET    /health, /metrics

With --watch, edits to the profile file are picked up by new sessions
without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				e.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return e.serve(ctx, watch)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.addr)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the profile file when it changes")
	return cmd
}

// serverOptions maps configuration onto server options.
func (e *env) serverOptions() server.Options {
	cfg := e.cfg
	return server.Options{
		Addr:               cfg.Server.Addr,
		Version:            Version,
		Greeting:           cfg.Terminal.Greeting,
		MaxTranscriptLines: cfg.Terminal.MaxTranscriptLines,
		Session: session.Config{
			IdleTimeout: cfg.SessionIdle(),
			MaxSessions: cfg.Server.MaxSessions,
		},
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
		RequestBurst:      cfg.Server.RequestBurst,
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
		Metrics:           cfg.Server.Metrics,
		ShutdownTimeout:   cfg.ShutdownTimeout(),
	}
}

// serve runs the API until ctx is cancelled.
func (e *env) serve(ctx context.Context, watch bool) error {
	if watch && e.cfg.Profile.Path == "" {
		return errWatchNeedsProfile
	}
	e.logger.Debug("effective config", zap.Stringer("config", e.cfg))

	p, err := e.profile()
	if err != nil {
		return err
	}
	store := profile.NewStore(p)
	srv := server.New(e.serverOptions(), store, e.contactClient(), telemetry.New(), e.logger)

	if watch {
		w, err := e.watchProfile(store)
		if err != nil {
			return err
		}
		watchCtx, cancel := context.WithCancel(ctx)
		go func() {
			if err := w.Run(watchCtx); err != nil {
				e.logger.Error("profile watcher stopped", zap.Error(err))
			}
		}()
		defer func() {
			cancel()
			<-w.Done()
		}()
	}

	return srv.ListenAndServe(ctx)
}

// watchProfile swaps reloaded profiles into store. Invalid edits are logged
// and the previous profile stays in place.
func (e *env) watchProfile(store *profile.Store) (*profile.Watcher, error) {
	path := e.cfg.Profile.Path
	return profile.NewWatcher(path,
		func(p *profile.Profile) {
			store.Set(p)
			e.logger.Info("profile reloaded", zap.String("path", path), zap.String("handle", p.Handle))
		},
		profile.WithErrorHandler(func(err error) {
			e.logger.Warn("profile reload failed", zap.String("path", path), zap.Error(err))
		}),
	)
}
