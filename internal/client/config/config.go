package config

import "time"

// Config holds runtime settings for the OdontoFast client.
//
// Fields:
//   - APIBaseURL: base of the remote API; the login endpoint is <base>/login.
//   - DBPath: sqlite file holding the persisted session.
//   - RequestTimeout: bound on a single login request.
//   - QuickLoginEnabled: exposes the development quick login command.
//   - LogLevel, LogFormat: passed to logging.New.
//   - BootstrapTimeout: bound on startup prerequisites, 0 waits indefinitely.
//   - Ephemeral: keep the session in memory only; DBPath is not opened.
type Config struct {
	APIBaseURL        string
	DBPath            string
	RequestTimeout    time.Duration
	QuickLoginEnabled bool
	LogLevel          string
	LogFormat         string
	BootstrapTimeout  time.Duration
	Ephemeral         bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5058/api"
	c.DBPath = "odontofast.db"
	c.RequestTimeout = 10 * time.Second
	c.QuickLoginEnabled = true
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.BootstrapTimeout = 0
	c.Ephemeral = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
