// Package config loads runtime configuration for the SalesDesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional dotenv file
//     (-e/-env, or ./.env when present). Already-set variables win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   local session database path
//	-t int      request timeout (seconds)
//	-i int      session expiry check interval (seconds)
//	-l string   log backend (slog|zap)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "backend_url": "https://crm.example.com/api/v1",
//	  "database_path": "salesdesk.db",
//	  "request_timeout": "10s",
//	  "session_check_interval": "30s",
//	  "success_delay": "1.5s",
//	  "log_backend": "zap",
//	  "log_level": "debug"
//	}
package config
