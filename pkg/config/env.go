package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// FromEnv builds a Config from environment variables, loading a .env file
// first if one is present. Unset variables keep their defaults.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("WEBHOOK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("WEBHOOK_AUTH_TOKEN"); v != "" {
		cfg.AuthToken = v
	}
	if v := os.Getenv("WEBHOOK_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("WEBHOOK_POOL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Size = n
		}
	}
	if v := os.Getenv("WEBHOOK_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	return cfg
}
