package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/flagx"
)

// Config holds runtime settings for the SalesDesk Manager client.
//
// Fields:
//   - BackendURL: base URL of the REST API, e.g. "https://host/api/v1".
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request timeout; zero keeps the transport default.
//   - SessionCheckInterval: how often the persisted credential is checked for expiry.
//   - SuccessDelay: pause after a success message before a modal closes.
//   - LogBackend / LogLevel: "slog" or "zap"; "debug", "info", "warn", "error".
type Config struct {
	BackendURL           string
	DatabasePath         string
	RequestTimeout       time.Duration
	SessionCheckInterval time.Duration
	SuccessDelay         time.Duration
	LogBackend           string
	LogLevel             string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:5000/api/v1"
	c.DatabasePath = "salesdesk.db"
	c.RequestTimeout = 0
	c.SessionCheckInterval = 30 * time.Second
	c.SuccessDelay = 1500 * time.Millisecond
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies defaults, then the environment (after an optional .env
// file), then an optional JSON file, then flags. Later sources win.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	sources := flagx.ConfigSources(args)

	if err := parseEnv(cfg, sources.EnvFile); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, sources.JSONFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
