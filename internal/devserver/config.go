package devserver

import (
	"errors"
	"time"
)

type Config struct {
	Addr           string
	JWTSecret      string
	TokenTTL       time.Duration
	UsersFile      string
	AllowedOrigins []string
	// LoginRate is the steady number of login attempts per second per IP.
	LoginRate  float64
	LoginBurst int
	MaxBody    int64
	Dev        bool
}

func DefaultConfig() Config {
	return Config{
		Addr:           ":5058",
		JWTSecret:      "odontofast-dev-secret",
		TokenTTL:       24 * time.Hour,
		AllowedOrigins: []string{"*"},
		LoginRate:      0.5,
		LoginBurst:     5,
		MaxBody:        1 << 20,
		Dev:            true,
	}
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	if c.LoginRate <= 0 || c.LoginBurst <= 0 {
		return errors.New("login rate and burst must be positive")
	}
	return nil
}
