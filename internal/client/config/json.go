package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmikhr/stylecart/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// expressed in seconds so config files stay plain numbers.
type JSONConfig struct {
	BaseURL               string `json:"base_url"`
	DatabasePath          string `json:"database_path"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJSON overlays Config with values loaded from a JSON file named via
// the -c/-config flags. Missing file flag means no JSON is loaded; read or
// unmarshal errors panic (the caller may recover). Only fields present in
// the file override the current values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
}
