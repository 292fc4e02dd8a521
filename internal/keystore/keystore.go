// Package keystore persists user-entered credentials (the TMDB API key and the
// auth session token) between runs. This is the only state the application
// keeps across sessions. Uses atomic writes (temp+rename) to prevent corruption.
package keystore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slasshy/internal/config"
)

// Credentials are the cached secrets.
type Credentials struct {
	TMDBAPIKey string
	AuthToken  string
}

const fileName = "credentials"

// Path returns the credential cache file path.
func Path() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads cached credentials. A missing file yields zero-value credentials.
func Load() (Credentials, error) {
	var creds Credentials

	path, err := Path()
	if err != nil {
		return creds, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, nil
		}
		return creds, fmt.Errorf("opening credential cache: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue // Skip malformed lines
		}
		switch key {
		case "tmdb_api_key":
			creds.TMDBAPIKey = value
		case "auth_token":
			creds.AuthToken = value
		}
	}

	if err := scanner.Err(); err != nil {
		return creds, fmt.Errorf("reading credential cache: %w", err)
	}

	return creds, nil
}

// Save writes credentials atomically (write to temp file, then rename).
func Save(creds Credentials) error {
	path, err := Path()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "credentials-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writer := bufio.NewWriter(tmpFile)
	lines := []string{
		"tmdb_api_key=" + creds.TMDBAPIKey,
		"auth_token=" + creds.AuthToken,
	}
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("writing credential cache: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flushing credential cache: %w", err)
	}

	if err := tmpFile.Chmod(0600); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("restricting credential cache permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing credential cache: %w", err)
	}

	return nil
}

// Clear removes the credential cache.
func Clear() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing credential cache: %w", err)
	}
	return nil
}
