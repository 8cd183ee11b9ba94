// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry exposes portfolio usage as Prometheus metrics.
package telemetry

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// =============================================================================
// METRICS
// =============================================================================

// unknownCommand is the label recorded for input that matches no command, so
// visitor input never becomes a label value.
const unknownCommand = "unknown"

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	commands      *prometheus.CounterVec
	sessions      prometheus.Gauge
	contacts      *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// New creates and registers the collectors, plus the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_commands_total",
				Help: "Terminal commands submitted, by command and whether it was known",
			},
			[]string{"command", "known"},
		),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_sessions_active",
			Help: "Terminal sessions currently hosted",
		}),
		contacts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_contact_submissions_total",
				Help: "Contact form submissions, by result",
			},
			[]string{"result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "HTTP requests, by route pattern and status code",
			},
			[]string{"route", "code"},
		),
		httpDurations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "HTTP request latency, by route pattern",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	m.registry.MustRegister(
		m.commands,
		m.sessions,
		m.contacts,
		m.httpRequests,
		m.httpDurations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// =============================================================================
// RECORDING
// =============================================================================

// Command records one submitted command. Unknown input is folded into a
// single label value.
func (m *Metrics) Command(token string, known bool) {
	if m == nil {
		return
	}
	if !known {
		token = unknownCommand
	}
	m.commands.WithLabelValues(token, strconv.FormatBool(known)).Inc()
}

// SessionsActive sets the hosted session count.
func (m *Metrics) SessionsActive(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}

// Contact records one contact submission outcome.
func (m *Metrics) Contact(result string) {
	if m == nil {
		return
	}
	m.contacts.WithLabelValues(result).Inc()
}

// Request records one HTTP request.
func (m *Metrics) Request(route string, code int, seconds float64) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.httpDurations.WithLabelValues(route).Observe(seconds)
}
