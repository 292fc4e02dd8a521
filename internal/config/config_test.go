package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Open {
		t.Error("default open should be true")
	}
	if cfg.ActiveNotification != "1" {
		t.Errorf("default active_notification = %q, want 1", cfg.ActiveNotification)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"valid proxy url", func(c *Config) { c.ProxyURL = "http://localhost:3001" }, false},
		{"bad proxy url", func(c *Config) { c.ProxyURL = "localhost:3001" }, true},
		{"valid slot 4", func(c *Config) { c.ActiveNotification = "4" }, false},
		{"bad slot", func(c *Config) { c.ActiveNotification = "5" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("SLASSHY_TMDB_API_KEY", "")
	t.Setenv("TMDB_API_KEY", "")

	dir := filepath.Join(tmpDir, "slasshy")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}

	content := `
tmdb_api_key = "abc123"
proxy_url = "http://localhost:3001"
open = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TMDBAPIKey != "abc123" {
		t.Errorf("TMDBAPIKey = %q, want abc123", cfg.TMDBAPIKey)
	}
	if cfg.ProxyURL != "http://localhost:3001" {
		t.Errorf("ProxyURL = %q", cfg.ProxyURL)
	}
	if cfg.Open {
		t.Error("open should be false")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("SLASSHY_TMDB_API_KEY", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TMDBAPIKey != "from-env" {
		t.Errorf("TMDBAPIKey = %q, want from-env", cfg.TMDBAPIKey)
	}
}

func TestNotificationFromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SLASSHY_NOTIFICATION_3", "Scheduled maintenance tonight")
	t.Setenv("SLASSHY_ACTIVE_NOTIFICATION", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.Notification(); got != "Scheduled maintenance tonight" {
		t.Errorf("Notification() = %q", got)
	}
}

func TestNotification(t *testing.T) {
	tests := []struct {
		name   string
		slots  []string
		active string
		want   string
	}{
		{"slot 1 default", []string{"first", "second"}, "", "first"},
		{"slot 2 selected", []string{"first", "second"}, "2", "second"},
		{"slot 4 selected", []string{"", "", "", "fourth"}, "4", "fourth"},
		{"blank slot yields empty", []string{"first", "   "}, "2", ""},
		{"slot beyond configured yields empty", []string{"first"}, "3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Notifications = tt.slots
			cfg.ActiveNotification = tt.active
			if got := cfg.Notification(); got != tt.want {
				t.Errorf("Notification() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	cfg := Default()
	diags := cfg.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics for an empty config, got %d: %v", len(diags), diags)
	}

	cfg.TMDBAPIKey = "k"
	cfg.GeminiAPIKey = "k"
	cfg.AuthDomain = "example.auth0.com"
	cfg.AuthClientID = "client"
	if diags := cfg.Diagnostics(); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}

	// A configured proxy stands in for a local TMDB key.
	cfg2 := Default()
	cfg2.ProxyURL = "http://localhost:3001"
	for _, d := range cfg2.Diagnostics() {
		if d == "TMDB API key not configured; movie and TV search is disabled" {
			t.Error("proxy URL should satisfy the search credential requirement")
		}
	}
}
