package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvBackendURL     = "SALESDESK_BACKEND_URL"
	EnvDatabasePath   = "SALESDESK_DB"
	EnvRequestTimeout = "SALESDESK_REQUEST_TIMEOUT"
	EnvSessionCheck   = "SALESDESK_SESSION_CHECK"
	EnvLogBackend     = "SALESDESK_LOG_BACKEND"
	EnvLogLevel       = "SALESDESK_LOG_LEVEL"
)

// parseEnv loads envFile (or ./.env when envFile is empty and the file
// exists) into the process environment without overriding variables that
// are already set, then copies known variables into cfg.
func parseEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	if v := os.Getenv(EnvBackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvLogBackend); v != "" {
		cfg.LogBackend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	var err error
	if cfg.RequestTimeout, err = envDuration(EnvRequestTimeout, cfg.RequestTimeout); err != nil {
		return err
	}
	if cfg.SessionCheckInterval, err = envDuration(EnvSessionCheck, cfg.SessionCheckInterval); err != nil {
		return err
	}
	return nil
}

// envDuration accepts "10s" style durations or a bare number of seconds.
func envDuration(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
