// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for portfolio.
//
// Configuration file location (in order of precedence):
//   - Environment variables (PORTFOLIO_*)
//   - ~/.portfolio/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ayoobkibrahim/portfolio-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete portfolio configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Profile content source
	Profile ProfileConfig `toml:"profile" json:"profile"`

	// Terminal widget and REPL
	Terminal TerminalConfig `toml:"terminal" json:"terminal"`

	// Contact form delivery
	Contact ContactConfig `toml:"contact" json:"contact"`

	// HTTP API
	Server ServerConfig `toml:"server" json:"server"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Logging
	Log LogConfig `toml:"log" json:"log"`
}

// ProfileConfig selects the profile content.
type ProfileConfig struct {
	// Path to a profile TOML file overlaid on the built-in profile (empty = built-in only)
	Path string `toml:"path" json:"path"`
}

// TerminalConfig configures the command interpreter surfaces.
type TerminalConfig struct {
	// Greeting seeds each new transcript with the banner lines
	Greeting bool `toml:"greeting" json:"greeting"`
	// MaxTranscriptLines caps the transcript (0 = unbounded)
	MaxTranscriptLines int `toml:"max_transcript_lines" json:"max_transcript_lines"`
	// Prompt shown before each command line
	Prompt string `toml:"prompt" json:"prompt"`
	// HistoryFile is the REPL history path (empty = ~/.portfolio/history)
	HistoryFile string `toml:"history_file" json:"history_file"`
	// HistoryLimit is the number of REPL history entries kept
	HistoryLimit int `toml:"history_limit" json:"history_limit"`
}

// ContactConfig configures the hosted form endpoint.
type ContactConfig struct {
	// Endpoint receives JSON submissions
	Endpoint string `toml:"endpoint" json:"endpoint"`
	// AccessKey identifies the form owner to the endpoint
	AccessKey string `toml:"access_key" json:"access_key"`
	// TimeoutSecs per submission
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// RatePerMinute is the sustained submission rate
	RatePerMinute float64 `toml:"rate_per_minute" json:"rate_per_minute"`
	// Burst is the number of submissions allowed at once
	Burst int `toml:"burst" json:"burst"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address
	Addr string `toml:"addr" json:"addr"`
	// Metrics exposes /metrics
	Metrics bool `toml:"metrics" json:"metrics"`
	// SessionIdleMinutes drops sessions idle for longer
	SessionIdleMinutes int `toml:"session_idle_minutes" json:"session_idle_minutes"`
	// MaxSessions bounds concurrent sessions (0 = unbounded)
	MaxSessions int `toml:"max_sessions" json:"max_sessions"`
	// RequestsPerSecond is the per-client request rate
	RequestsPerSecond float64 `toml:"requests_per_second" json:"requests_per_second"`
	// RequestBurst is the per-client burst
	RequestBurst int `toml:"request_burst" json:"request_burst"`
	// MaxBodyBytes caps request bodies
	MaxBodyBytes int64 `toml:"max_body_bytes" json:"max_body_bytes"`
	// ShutdownTimeoutSecs bounds graceful shutdown
	ShutdownTimeoutSecs int `toml:"shutdown_timeout_secs" json:"shutdown_timeout_secs"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
	// RoleIntervalMs is how long each hero role stays visible
	RoleIntervalMs int `toml:"role_interval_ms" json:"role_interval_ms"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level" json:"level"`
	// Format is "json" or "console"
	Format string `toml:"format" json:"format"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Terminal: TerminalConfig{
			Greeting:           true,
			MaxTranscriptLines: 0, // unbounded
			Prompt:             "~/portfolio $",
			HistoryLimit:       500,
		},

		Contact: ContactConfig{
			Endpoint:      "https://api.web3forms.com/submit",
			TimeoutSecs:   15,
			RatePerMinute: 5,
			Burst:         2,
		},

		Server: ServerConfig{
			Addr:                "127.0.0.1:8080",
			Metrics:             true,
			SessionIdleMinutes:  30,
			MaxSessions:         1000,
			RequestsPerSecond:   10,
			RequestBurst:        20,
			MaxBodyBytes:        64 << 10,
			ShutdownTimeoutSecs: 10,
		},

		UI: UIConfig{
			Theme:          "auto",
			AltScreen:      true,
			RoleIntervalMs: 3000,
		},

		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the portfolio configuration directory path.
// PORTFOLIO_HOME overrides the default ~/.portfolio.
func ConfigDir() (string, error) {
	if dir := os.Getenv("PORTFOLIO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".portfolio"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the REPL history file path.
func (c *Config) HistoryPath() (string, error) {
	if c.Terminal.HistoryFile != "" {
		return c.Terminal.HistoryFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// ensureSecurePermissions tightens config file permissions to 0600.
// The file may hold the contact access key.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when it does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		return LoadFromPath(path)
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Fields absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		// Not fatal: permissions may not be fixable on every filesystem
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Terminal
	if cfg.Terminal.Prompt == "" {
		cfg.Terminal.Prompt = defaults.Terminal.Prompt
	}
	if cfg.Terminal.HistoryLimit == 0 {
		cfg.Terminal.HistoryLimit = defaults.Terminal.HistoryLimit
	}

	// Contact
	if cfg.Contact.Endpoint == "" {
		cfg.Contact.Endpoint = defaults.Contact.Endpoint
	}
	if cfg.Contact.TimeoutSecs == 0 {
		cfg.Contact.TimeoutSecs = defaults.Contact.TimeoutSecs
	}
	if cfg.Contact.RatePerMinute == 0 {
		cfg.Contact.RatePerMinute = defaults.Contact.RatePerMinute
	}
	if cfg.Contact.Burst == 0 {
		cfg.Contact.Burst = defaults.Contact.Burst
	}

	// Server
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if cfg.Server.SessionIdleMinutes == 0 {
		cfg.Server.SessionIdleMinutes = defaults.Server.SessionIdleMinutes
	}
	if cfg.Server.RequestsPerSecond == 0 {
		cfg.Server.RequestsPerSecond = defaults.Server.RequestsPerSecond
	}
	if cfg.Server.RequestBurst == 0 {
		cfg.Server.RequestBurst = defaults.Server.RequestBurst
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = defaults.Server.MaxBodyBytes
	}
	if cfg.Server.ShutdownTimeoutSecs == 0 {
		cfg.Server.ShutdownTimeoutSecs = defaults.Server.ShutdownTimeoutSecs
	}

	// UI
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.RoleIntervalMs == 0 {
		cfg.UI.RoleIntervalMs = defaults.UI.RoleIntervalMs
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	data, err := cfg.TOML()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// TOML renders the configuration with a header comment.
func (c *Config) TOML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# portfolio configuration file\n")
	buf.WriteString("# Generated by portfolio - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Terminal
	if c.Terminal.MaxTranscriptLines < 0 {
		errs = append(errs, ValidationError{
			Field:   "terminal.max_transcript_lines",
			Message: fmt.Sprintf("must be >= 0, got %d", c.Terminal.MaxTranscriptLines),
		})
	}
	if c.Terminal.HistoryLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "terminal.history_limit",
			Message: fmt.Sprintf("must be >= 0, got %d", c.Terminal.HistoryLimit),
		})
	}

	// Contact
	if c.Contact.Endpoint != "" {
		u, err := url.Parse(c.Contact.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "contact.endpoint",
				Message: fmt.Sprintf("must be an http(s) URL, got %q", c.Contact.Endpoint),
			})
		}
	}
	if c.Contact.TimeoutSecs < 1 || c.Contact.TimeoutSecs > 300 {
		errs = append(errs, ValidationError{
			Field:   "contact.timeout_secs",
			Message: fmt.Sprintf("must be between 1 and 300, got %d", c.Contact.TimeoutSecs),
		})
	}
	if c.Contact.RatePerMinute <= 0 {
		errs = append(errs, ValidationError{
			Field:   "contact.rate_per_minute",
			Message: fmt.Sprintf("must be positive, got %g", c.Contact.RatePerMinute),
		})
	}
	if c.Contact.Burst < 1 {
		errs = append(errs, ValidationError{
			Field:   "contact.burst",
			Message: fmt.Sprintf("must be >= 1, got %d", c.Contact.Burst),
		})
	}

	// Server
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		errs = append(errs, ValidationError{
			Field:   "server.addr",
			Message: fmt.Sprintf("must be host:port, got %q", c.Server.Addr),
		})
	}
	if c.Server.SessionIdleMinutes < 1 {
		errs = append(errs, ValidationError{
			Field:   "server.session_idle_minutes",
			Message: fmt.Sprintf("must be >= 1, got %d", c.Server.SessionIdleMinutes),
		})
	}
	if c.Server.MaxSessions < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.max_sessions",
			Message: fmt.Sprintf("must be >= 0, got %d", c.Server.MaxSessions),
		})
	}
	if c.Server.RequestsPerSecond <= 0 || c.Server.RequestBurst < 1 {
		errs = append(errs, ValidationError{
			Field:   "server.requests_per_second",
			Message: "rate and burst must be positive",
		})
	}
	if c.Server.MaxBodyBytes < 1024 {
		errs = append(errs, ValidationError{
			Field:   "server.max_body_bytes",
			Message: fmt.Sprintf("must be >= 1024, got %d", c.Server.MaxBodyBytes),
		})
	}

	// UI
	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[c.UI.Theme] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be one of: dark, light, auto (got %q)", c.UI.Theme),
		})
	}
	if c.UI.RoleIntervalMs < 100 {
		errs = append(errs, ValidationError{
			Field:   "ui.role_interval_ms",
			Message: fmt.Sprintf("must be >= 100, got %d", c.UI.RoleIntervalMs),
		})
	}

	// Log
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of: debug, info, warn, error (got %q)", c.Log.Level),
		})
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be json or console (got %q)", c.Log.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// ContactTimeout returns the submission timeout.
func (c *Config) ContactTimeout() time.Duration {
	return time.Duration(c.Contact.TimeoutSecs) * time.Second
}

// SessionIdle returns the session idle timeout.
func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.Server.SessionIdleMinutes) * time.Minute
}

// ShutdownTimeout returns the graceful shutdown bound.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSecs) * time.Second
}

// RoleInterval returns the hero role rotation period.
func (c *Config) RoleInterval() time.Duration {
	return time.Duration(c.UI.RoleIntervalMs) * time.Millisecond
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - PORTFOLIO_PROFILE: overrides profile.path
//   - PORTFOLIO_CONTACT_ACCESS_KEY: overrides contact.access_key
//   - PORTFOLIO_CONTACT_ENDPOINT: overrides contact.endpoint
//   - PORTFOLIO_ADDR: overrides server.addr
//   - PORTFOLIO_LOG_LEVEL: overrides log.level
//   - PORTFOLIO_LOG_FORMAT: overrides log.format
//   - PORTFOLIO_MAX_TRANSCRIPT: overrides terminal.max_transcript_lines
//   - PORTFOLIO_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("PORTFOLIO_PROFILE"); path != "" {
		c.Profile.Path = path
	}
	if key := os.Getenv("PORTFOLIO_CONTACT_ACCESS_KEY"); key != "" {
		c.Contact.AccessKey = key
	}
	if endpoint := os.Getenv("PORTFOLIO_CONTACT_ENDPOINT"); endpoint != "" {
		c.Contact.Endpoint = endpoint
	}
	if addr := os.Getenv("PORTFOLIO_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("PORTFOLIO_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if format := os.Getenv("PORTFOLIO_LOG_FORMAT"); format != "" {
		c.Log.Format = strings.ToLower(format)
	}
	if max := os.Getenv("PORTFOLIO_MAX_TRANSCRIPT"); max != "" {
		if n, err := strconv.Atoi(max); err == nil {
			c.Terminal.MaxTranscriptLines = n
		}
	}
	if theme := os.Getenv("PORTFOLIO_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "server.addr").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "server.addr").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal, err := parseBool(strVal)
			if err != nil {
				return err
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %q", s)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"profile.path",
		"terminal.greeting",
		"terminal.max_transcript_lines",
		"terminal.prompt",
		"terminal.history_file",
		"terminal.history_limit",
		"contact.endpoint",
		"contact.access_key",
		"contact.timeout_secs",
		"contact.rate_per_minute",
		"contact.burst",
		"server.addr",
		"server.metrics",
		"server.session_idle_minutes",
		"server.max_sessions",
		"server.requests_per_second",
		"server.request_burst",
		"server.max_body_bytes",
		"server.shutdown_timeout_secs",
		"ui.theme",
		"ui.alt_screen",
		"ui.role_interval_ms",
		"log.level",
		"log.format",
	}
}

// Clone creates a copy of the configuration. Config holds no reference
// types, so a value copy is deep.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Redacted returns a copy with secrets masked.
func (c *Config) Redacted() *Config {
	safe := c.Clone()
	if safe.Contact.AccessKey != "" {
		safe.Contact.AccessKey = "[REDACTED]"
	}
	return safe
}

// String returns a JSON representation with secrets redacted.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c.Redacted(), "", "  ")
	return string(data)
}
