// Package config assembles the client configuration from defaults, an
// optional .env file, an optional JSON file and command-line flags, in that
// order; later sources win.
package config

import "time"

// Config holds runtime settings for the storefront client.
//
// Fields:
//   - ShopBaseURL: base URL of the realtime-database REST surface.
//   - AuthBaseURL: base URL of the identity endpoint.
//   - APIKey: key appended to identity requests.
//   - SessionBackend: "sqlite" or "file"; which session store to bind.
//   - DatabaseDSN: sqlite DSN for the structured backend.
//   - DataDir: directory for the file backend.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ShopBaseURL    string
	AuthBaseURL    string
	APIKey         string
	SessionBackend string
	DatabaseDSN    string
	DataDir        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ShopBaseURL = "https://tiendita-default-rtdb.firebaseio.com"
	c.AuthBaseURL = "https://identitytoolkit.googleapis.com/v1"
	c.SessionBackend = "sqlite"
	c.DatabaseDSN = "sessions.db"
	c.DataDir = "."
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (.env included), JSON (if present) and command-line
// flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
