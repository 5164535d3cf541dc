package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://10.0.2.2:5058/api", "-d", "/tmp/s.db", "-t", "3", "-q=false", "-l", "debug", "-e"},
			expected: &Config{
				APIBaseURL:        "http://10.0.2.2:5058/api",
				DBPath:            "/tmp/s.db",
				RequestTimeout:    3 * time.Second,
				QuickLoginEnabled: false,
				LogLevel:          "debug",
				LogFormat:         "console",
				Ephemeral:         true,
			},
		},
		{
			name:     "no flags keeps defaults",
			args:     []string{"cmd"},
			expected: defaults(),
		},
		{
			name: "foreign flags are ignored",
			args: []string{"cmd", "-c", "cfg.json", "-x", "-t", "20"},
			expected: func() *Config {
				c := defaults()
				c.RequestTimeout = 20 * time.Second
				return c
			}(),
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := defaults()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
