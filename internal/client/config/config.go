package config

import "time"

// Config holds runtime settings for the stylecart CLI.
//
// Fields:
//   - BaseURL: default API base URL, used until a normalized URL is stored
//     in the settings database.
//   - DatabasePath: sqlite file holding persisted settings.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	BaseURL        string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8004"
	c.DatabasePath = "stylecart.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
