// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrMissingAccessKey means no form access key is configured.
	ErrMissingAccessKey = errors.New("contact: no access key configured")

	// ErrRateLimited means the local submission budget is exhausted.
	ErrRateLimited = errors.New("contact: too many submissions, try again later")

	// ErrRejected means the endpoint answered without success.
	ErrRejected = errors.New("contact: submission rejected")
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultEndpoint is the hosted form endpoint.
const DefaultEndpoint = "https://api.web3forms.com/submit"

// maxResponseBytes bounds how much of the endpoint's reply is read.
const maxResponseBytes = 64 << 10

// ClientConfig holds configuration for the contact client.
type ClientConfig struct {
	// Endpoint receives the JSON submission (default: DefaultEndpoint)
	Endpoint string

	// AccessKey identifies the form owner to the endpoint
	AccessKey string

	// Timeout per submission (default: 15s)
	Timeout time.Duration

	// Rate is submissions per minute (default: 5)
	Rate float64

	// Burst is the limiter bucket size (default: 2)
	Burst int
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Endpoint: DefaultEndpoint,
		Timeout:  15 * time.Second,
		Rate:     5,
		Burst:    2,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client submits contact forms. It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

type submission struct {
	AccessKey string `json:"access_key"`
	Form
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewClient creates a client, filling zero config values with defaults.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}
	cfg := *config

	def := DefaultClientConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Rate <= 0 {
		cfg.Rate = def.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}

	return &Client{
		config:     &cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.Rate/60), cfg.Burst),
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Endpoint returns the configured endpoint.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// Configured reports whether an access key is set.
func (c *Client) Configured() bool {
	return c.config.AccessKey != ""
}

// Submit validates form and posts it to the endpoint. The submission counts
// as delivered only when the endpoint replies with "success": true.
func (c *Client) Submit(ctx context.Context, form Form) error {
	form = form.Trimmed()
	if err := form.Validate(); err != nil {
		return err
	}
	if !c.Configured() {
		return ErrMissingAccessKey
	}
	if !c.limiter.Allow() {
		return ErrRateLimited
	}

	body, err := json.Marshal(submission{AccessKey: c.config.AccessKey, Form: form})
	if err != nil {
		return fmt.Errorf("contact: failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("contact: request failed: %w", err)
	}
	defer resp.Body.Close()

	var result submitResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return fmt.Errorf("%w: %s: unreadable response: %v", ErrRejected, resp.Status, err)
	}
	if !result.Success {
		if result.Message != "" {
			return fmt.Errorf("%w: %s", ErrRejected, result.Message)
		}
		return fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}
	return nil
}
