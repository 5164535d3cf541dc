package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/odontofast/internal/flagx"
	"github.com/dmitrijs2005/odontofast/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	APIBaseURL        *string         `json:"api_base_url"`
	DBPath            *string         `json:"db_path"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	QuickLoginEnabled *bool           `json:"quick_login_enabled"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
	BootstrapTimeout  *timex.Duration `json:"bootstrap_timeout"`
	Ephemeral         *bool           `json:"ephemeral"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without the flag it does nothing. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.QuickLoginEnabled != nil {
		cfg.QuickLoginEnabled = *jc.QuickLoginEnabled
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.BootstrapTimeout != nil {
		cfg.BootstrapTimeout = jc.BootstrapTimeout.Duration
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
}
