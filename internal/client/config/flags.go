package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend base URL
//	-d string   path of the local session database
//	-t int      request timeout (seconds, 0 = transport default)
//	-i int      session expiry check interval (seconds)
//	-l string   log backend (slog|zap)
//
// Only these flags are looked at; everything else in args is left to the
// command framework.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-i", "-l"})

	fs := flag.NewFlagSet("salesdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local session database path")
	fs.StringVar(&cfg.LogBackend, "l", cfg.LogBackend, "log backend (slog|zap)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.SessionCheckInterval.Seconds()), "session check interval (in seconds)")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.SessionCheckInterval = time.Duration(*interval) * time.Second
	return nil
}
