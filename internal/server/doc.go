// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server exposes the portfolio terminal and content over HTTP.
//
// Each visitor gets an independent terminal session keyed by a uuid. Sessions
// idle past the configured timeout are swept.
//
// # Endpoints
//
//   - POST   /api/sessions               - Start a terminal session
//   - GET    /api/sessions/{id}          - Session transcript
//   - POST   /api/sessions/{id}/submit   - Submit one line of input
//   - GET    /api/sessions/{id}/complete - Autocomplete a partial command
//   - GET    /api/sessions/{id}/status   - Session age, idle time and counts
//   - DELETE /api/sessions/{id}          - End a session
//   - GET    /api/commands               - Visible command table
//   - GET    /api/profile                - Profile content
//   - GET    /api/skills                 - Skills, optionally by ?category=
//   - GET    /api/categories             - Skill filter categories
//   - POST   /api/contact                - Deliver a contact form
//   - GET    /health                     - Health check
//   - GET    /metrics                    - Prometheus metrics
//
// # Middleware
//
//   - Panic recovery and structured request logging (zap)
//   - Per-IP token bucket rate limiting
//   - CORS and security headers
//   - Request body size cap
//
// # Usage
//
//	srv := server.New(server.Options{Addr: ":8080", Greeting: true},
//		profile.NewStore(p), contactClient, telemetry.New(), logger)
//	if err := srv.ListenAndServe(ctx); err != nil {
//		log.Fatal(err)
//	}
package server
