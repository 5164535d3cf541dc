package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/odontofast/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// os.Args is filtered with flagx.FilterArgs first so the JSON loader's -c
// flag does not trip this FlagSet. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-q", "-l", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "session database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.QuickLoginEnabled, "q", cfg.QuickLoginEnabled, "enable quick login")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Ephemeral, "e", cfg.Ephemeral, "keep the session in memory only")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
