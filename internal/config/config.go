// Package config handles TOML-based configuration loading and validation.
// Credentials and notification strings may also arrive through environment
// variables, which take precedence over the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	TMDBAPIKey   string `toml:"tmdb_api_key"`
	GeminiAPIKey string `toml:"gemini_api_key"`
	AuthDomain   string `toml:"auth_domain"`
	AuthClientID string `toml:"auth_client_id"`
	ProxyURL     string `toml:"proxy_url"` // Backend gateway base URL; empty means direct TMDB access
	Open         bool   `toml:"open"`      // Open playback links in the default browser
	Debug        bool   `toml:"debug"`

	Notifications      []string `toml:"notifications"` // Up to four rotating banner strings
	ActiveNotification string   `toml:"active_notification"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Open:               true,
		ActiveNotification: "1",
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "slasshy"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "slasshy"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir returns the XDG-compliant data directory used for the credential cache.
func DataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "slasshy"), nil
}

// Load reads the config file, merges with defaults, and applies environment
// overrides. A missing config file is not an error; defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(readErr):
			return nil, fmt.Errorf("reading config: %w", readErr)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the loaded config.
func (c *Config) applyEnv() {
	if v := os.Getenv("SLASSHY_TMDB_API_KEY"); v != "" {
		c.TMDBAPIKey = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" && c.TMDBAPIKey == "" {
		c.TMDBAPIKey = v
	}
	if v := os.Getenv("SLASSHY_GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("SLASSHY_AUTH_DOMAIN"); v != "" {
		c.AuthDomain = v
	}
	if v := os.Getenv("SLASSHY_AUTH_CLIENT_ID"); v != "" {
		c.AuthClientID = v
	}
	if v := os.Getenv("SLASSHY_PROXY_URL"); v != "" {
		c.ProxyURL = v
	}
	for i := 0; i < 4; i++ {
		if v := os.Getenv(fmt.Sprintf("SLASSHY_NOTIFICATION_%d", i+1)); v != "" {
			for len(c.Notifications) <= i {
				c.Notifications = append(c.Notifications, "")
			}
			c.Notifications[i] = v
		}
	}
	if v := os.Getenv("SLASSHY_ACTIVE_NOTIFICATION"); v != "" {
		c.ActiveNotification = v
	}
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.ProxyURL != "" && !strings.HasPrefix(c.ProxyURL, "http://") && !strings.HasPrefix(c.ProxyURL, "https://") {
		return fmt.Errorf("proxy_url must be an http(s) URL, got %q", c.ProxyURL)
	}
	switch c.ActiveNotification {
	case "", "1", "2", "3", "4":
	default:
		return fmt.Errorf("active_notification must be 1-4, got %q", c.ActiveNotification)
	}
	return nil
}

// Notification returns the active rotating notification string, or "" when the
// selected slot is empty or blank.
func (c *Config) Notification() string {
	idx := 0
	switch c.ActiveNotification {
	case "2":
		idx = 1
	case "3":
		idx = 2
	case "4":
		idx = 3
	}
	if idx >= len(c.Notifications) {
		return ""
	}
	return strings.TrimSpace(c.Notifications[idx])
}

// Diagnostics reports missing credentials as human-readable startup warnings.
// Absent configuration degrades the dependent feature; it never crashes the CLI.
func (c *Config) Diagnostics() []string {
	var out []string
	if c.AuthDomain == "" || c.AuthClientID == "" {
		out = append(out, "auth domain/client not configured; sign-in is unavailable")
	}
	if c.TMDBAPIKey == "" && c.ProxyURL == "" {
		out = append(out, "TMDB API key not configured; movie and TV search is disabled")
	}
	if c.GeminiAPIKey == "" {
		out = append(out, "Gemini API key not configured; AI recommendations are disabled")
	}
	return out
}
