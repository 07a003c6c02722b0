// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DBPath     string
	SessionTTL time.Duration
}

// Load reads configuration from environment variables and returns a validated
// Config. All variables are optional and fall back to defaults:
// WATCHLIST_LISTEN_ADDR (127.0.0.1:8080), WATCHLIST_DB_PATH (watchlist.db),
// WATCHLIST_SESSION_TTL (24h).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("WATCHLIST_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "watchlist.db"
	if v, ok := os.LookupEnv("WATCHLIST_DB_PATH"); ok {
		dbPath = v
	}

	sessionTTL := 24 * time.Hour
	if v, ok := os.LookupEnv("WATCHLIST_SESSION_TTL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("WATCHLIST_SESSION_TTL has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("WATCHLIST_SESSION_TTL must be positive, got %q", v)
		}
		sessionTTL = parsed
	}

	return &Config{
		ListenAddr: listenAddr,
		DBPath:     dbPath,
		SessionTTL: sessionTTL,
	}, nil
}
