package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://crm.example.com/api/v1", "-d", "x.db", "-t", "10", "-i", "60", "-l", "zap"},
			expected: &Config{
				BackendURL:           "https://crm.example.com/api/v1",
				DatabasePath:         "x.db",
				RequestTimeout:       10 * time.Second,
				SessionCheckInterval: time.Minute,
				LogBackend:           "zap",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"import", "leads.xlsx", "--verbose"},
			expected: &Config{},
		},
		{
			name:     "incorrect timeout",
			args:     []string{"-t", "abc"},
			wantErr:  true,
			expected: &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
