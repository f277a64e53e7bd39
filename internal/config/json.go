package config

import (
	"encoding/json"
	"os"

	"github.com/dmarquez/tiendita/internal/flagx"
	"github.com/dmarquez/tiendita/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	ShopBaseURL    string         `json:"shop_base_url"`
	AuthBaseURL    string         `json:"auth_base_url"`
	APIKey         string         `json:"api_key"`
	SessionBackend string         `json:"session_backend"`
	DatabaseDSN    string         `json:"database_dsn"`
	DataDir        string         `json:"data_dir"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent file path means nothing to do; read or
// unmarshal errors panic, since a named-but-broken config file is a startup
// defect the user has to fix. Only fields present in the file override.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ShopBaseURL != "" {
		cfg.ShopBaseURL = jc.ShopBaseURL
	}
	if jc.AuthBaseURL != "" {
		cfg.AuthBaseURL = jc.AuthBaseURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.SessionBackend != "" {
		cfg.SessionBackend = jc.SessionBackend
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
