package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first if it exists; real environment variables
// take precedence over it (godotenv never overrides existing values).
//
// Recognized variables:
//
//	SHOP_BASE_URL, AUTH_BASE_URL, API_KEY, SESSION_BACKEND,
//	DATABASE_DSN, DATA_DIR, REQUEST_TIMEOUT (Go duration, e.g. "10s")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setIfPresent := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent("SHOP_BASE_URL", &cfg.ShopBaseURL)
	setIfPresent("AUTH_BASE_URL", &cfg.AuthBaseURL)
	setIfPresent("API_KEY", &cfg.APIKey)
	setIfPresent("SESSION_BACKEND", &cfg.SessionBackend)
	setIfPresent("DATABASE_DSN", &cfg.DatabaseDSN)
	setIfPresent("DATA_DIR", &cfg.DataDir)

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
