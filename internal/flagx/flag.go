// Package flagx picks out the few command-line flags that the config layer
// owns, leaving everything else to the command framework.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      -config=conf.json
//
// A token that starts with '-' is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// Sources holds the locations of optional configuration files.
type Sources struct {
	JSONFile string
	EnvFile  string
}

// ConfigSources extracts -c/-config (JSON file) and -e/-env (dotenv file)
// from args. Missing flags yield empty strings; other flags are ignored.
func ConfigSources(args []string) Sources {
	var s Sources

	filtered := FilterArgs(args, []string{"-c", "-config", "-e", "-env"})

	fs := flag.NewFlagSet("sources", flag.ContinueOnError)
	fs.StringVar(&s.JSONFile, "config", "", "path to JSON config file")
	fs.StringVar(&s.JSONFile, "c", "", "path to JSON config file (short)")
	fs.StringVar(&s.EnvFile, "env", "", "path to .env file")
	fs.StringVar(&s.EnvFile, "e", "", "path to .env file (short)")
	_ = fs.Parse(filtered)

	return s
}
