// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the config directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PORTFOLIO_HOME", dir)
	for _, key := range []string{
		"PORTFOLIO_PROFILE", "PORTFOLIO_CONTACT_ACCESS_KEY", "PORTFOLIO_CONTACT_ENDPOINT",
		"PORTFOLIO_ADDR", "PORTFOLIO_LOG_LEVEL", "PORTFOLIO_LOG_FORMAT",
		"PORTFOLIO_MAX_TRANSCRIPT", "PORTFOLIO_THEME",
	} {
		t.Setenv(key, "")
	}
	return dir
}

// TestConfig_Default tests that Default() returns a valid config.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
	if !cfg.Terminal.Greeting {
		t.Error("Greeting should be on by default")
	}
	if cfg.Terminal.MaxTranscriptLines != 0 {
		t.Errorf("Transcript should be unbounded by default, got %d", cfg.Terminal.MaxTranscriptLines)
	}
	if cfg.Terminal.Prompt != "~/portfolio $" {
		t.Errorf("Unexpected default prompt %q", cfg.Terminal.Prompt)
	}
	if cfg.Contact.Endpoint != "https://api.web3forms.com/submit" {
		t.Errorf("Unexpected default endpoint %q", cfg.Contact.Endpoint)
	}
	if cfg.ContactTimeout() != 15*time.Second {
		t.Errorf("Unexpected contact timeout %v", cfg.ContactTimeout())
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid default config", func(*Config) {}, ""},
		{"negative transcript cap", func(c *Config) { c.Terminal.MaxTranscriptLines = -1 }, "terminal.max_transcript_lines"},
		{"bad endpoint scheme", func(c *Config) { c.Contact.Endpoint = "ftp://example.com" }, "contact.endpoint"},
		{"zero contact timeout", func(c *Config) { c.Contact.TimeoutSecs = 0 }, "contact.timeout_secs"},
		{"zero contact rate", func(c *Config) { c.Contact.RatePerMinute = 0 }, "contact.rate_per_minute"},
		{"zero contact burst", func(c *Config) { c.Contact.Burst = 0 }, "contact.burst"},
		{"bad addr", func(c *Config) { c.Server.Addr = "localhost" }, "server.addr"},
		{"zero idle timeout", func(c *Config) { c.Server.SessionIdleMinutes = 0 }, "server.session_idle_minutes"},
		{"tiny body cap", func(c *Config) { c.Server.MaxBodyBytes = 10 }, "server.max_body_bytes"},
		{"invalid theme", func(c *Config) { c.UI.Theme = "invalid" }, "ui.theme"},
		{"role interval too short", func(c *Config) { c.UI.RoleIntervalMs = 10 }, "ui.role_interval_ms"},
		{"invalid log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"empty addr port", func(c *Config) { c.Server.Addr = ":8080" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}

			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error = %v, want ValidateErrors", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tt.field {
				t.Errorf("Validate() = %v, want single error on %s", verrs, tt.field)
			}
		})
	}
}

// TestConfig_LoadMissingFileUsesDefaults tests loading without a config file.
func TestConfig_LoadMissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != Default().Server.Addr {
		t.Errorf("Expected default addr, got %q", cfg.Server.Addr)
	}
}

// TestConfig_LoadFromFile tests partial files keep defaults for absent keys.
func TestConfig_LoadFromFile(t *testing.T) {
	dir := isolate(t)

	content := `
[terminal]
greeting = false
max_transcript_lines = 200

[server]
addr = "0.0.0.0:9000"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Terminal.Greeting {
		t.Error("Greeting should be disabled by file")
	}
	if cfg.Terminal.MaxTranscriptLines != 200 {
		t.Errorf("MaxTranscriptLines = %d, want 200", cfg.Terminal.MaxTranscriptLines)
	}
	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Terminal.Prompt != "~/portfolio $" {
		t.Errorf("Prompt should keep its default, got %q", cfg.Terminal.Prompt)
	}

	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config permissions = %o, want 600", info.Mode().Perm())
	}
}

// TestConfig_LoadRejectsUnknownKeys tests that typos are reported.
func TestConfig_LoadRejectsUnknownKeys(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nadress = \"x\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "server.adress") {
		t.Errorf("LoadFromPath() error = %v, want unknown key error", err)
	}
}

// TestConfig_EnvOverrides tests PORTFOLIO_* variables.
func TestConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORTFOLIO_PROFILE", "/tmp/me.toml")
	t.Setenv("PORTFOLIO_CONTACT_ACCESS_KEY", "secret")
	t.Setenv("PORTFOLIO_ADDR", ":9999")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "DEBUG")
	t.Setenv("PORTFOLIO_MAX_TRANSCRIPT", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Profile.Path != "/tmp/me.toml" {
		t.Errorf("Profile.Path = %q", cfg.Profile.Path)
	}
	if cfg.Contact.AccessKey != "secret" {
		t.Errorf("Contact.AccessKey = %q", cfg.Contact.AccessKey)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Terminal.MaxTranscriptLines != 50 {
		t.Errorf("MaxTranscriptLines = %d", cfg.Terminal.MaxTranscriptLines)
	}
}

// TestConfig_SaveRoundTrip tests SaveTOML followed by LoadFromPath.
func TestConfig_SaveRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Server.Addr = "127.0.0.1:7000"
	cfg.Contact.AccessKey = "abc"
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

// TestConfig_GetSet tests Get and Set methods with dot notation.
func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("server.addr")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != "127.0.0.1:8080" {
		t.Errorf("Get('server.addr') = %v", val)
	}

	if err := cfg.Set("terminal.max_transcript_lines", "25"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Terminal.MaxTranscriptLines != 25 {
		t.Errorf("MaxTranscriptLines after Set = %d", cfg.Terminal.MaxTranscriptLines)
	}

	if err := cfg.Set("terminal.greeting", "off"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Terminal.Greeting {
		t.Error("Greeting should be off after Set")
	}

	if err := cfg.Set("terminal.greeting", "maybe"); err == nil {
		t.Error("Set() with invalid bool should fail")
	}
	if _, err := cfg.Get("invalid.key"); err == nil {
		t.Error("Get() with invalid key should return error")
	}
	if _, err := cfg.Get("server"); err == nil {
		t.Error("Get() on a section should return error")
	}
}

// TestConfig_GetAllKeysResolve tests that every listed key resolves.
func TestConfig_GetAllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

// TestConfig_StringRedactsSecrets tests that String hides the access key.
func TestConfig_StringRedactsSecrets(t *testing.T) {
	cfg := Default()
	cfg.Contact.AccessKey = "super-secret"

	s := cfg.String()
	if strings.Contains(s, "super-secret") {
		t.Error("String() leaked the access key")
	}
	if cfg.Contact.AccessKey != "super-secret" {
		t.Error("String() modified the original config")
	}
}

// TestConfig_HistoryPath tests the history file default.
func TestConfig_HistoryPath(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	path, err := cfg.HistoryPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "history") {
		t.Errorf("HistoryPath() = %q", path)
	}

	cfg.Terminal.HistoryFile = "/tmp/h"
	if path, _ := cfg.HistoryPath(); path != "/tmp/h" {
		t.Errorf("HistoryPath() = %q", path)
	}
}
