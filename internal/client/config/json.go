package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/salesdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Fields left out
// of the file keep the values of earlier sources.
type JsonConfig struct {
	BackendURL           *string         `json:"backend_url"`
	DatabasePath         *string         `json:"database_path"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	SessionCheckInterval *timex.Duration `json:"session_check_interval"`
	SuccessDelay         *timex.Duration `json:"success_delay"`
	LogBackend           *string         `json:"log_backend"`
	LogLevel             *string         `json:"log_level"`
}

// parseJSON overlays cfg with the values found in path. An empty path is a
// no-op.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.BackendURL != nil {
		cfg.BackendURL = *jc.BackendURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = jc.SessionCheckInterval.Duration
	}
	if jc.SuccessDelay != nil {
		cfg.SuccessDelay = jc.SuccessDelay.Duration
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
