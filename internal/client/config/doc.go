// Package config loads runtime configuration for the OdontoFast client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API base URL (login is POSTed to <base>/login)
//	-d string   path of the sqlite session database
//	-t int      login request timeout (seconds)
//	-q bool     enable quick login (use -q=false to disable)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds. Absent keys keep their current value:
//
//	{
//	  "api_base_url": "http://localhost:5058/api",
//	  "db_path": "odontofast.db",
//	  "request_timeout": "10s",
//	  "quick_login_enabled": true,
//	  "log_level": "info",
//	  "log_format": "console",
//	  "bootstrap_timeout": "0s"
//	}
//
// The package does not read environment variables.
package config
