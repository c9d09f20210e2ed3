// Package config holds runtime settings for the StudyHub CLI, assembled from
// defaults, an optional JSON file and command-line flags; later sources win.
package config

import "time"

// Config holds runtime settings for the StudyHub CLI.
//
// Fields:
//   - BaseURL: base URL of the collaborator API, e.g. "http://localhost:8080/api".
//   - RequestTimeout: upper bound for one collaborator round trip.
//   - SessionDBPath: path of the local sqlite file holding the session.
//   - PageSize: materials shown per catalog page.
//   - ResendCooldown: ticks of the OTP resend throttle.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionDBPath  string
	PageSize       int
	ResendCooldown int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "studyhub.db"
	c.PageSize = 9
	c.ResendCooldown = 30
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
