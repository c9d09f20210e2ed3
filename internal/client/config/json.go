package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/flagx"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDBPath  string         `json:"session_db_path"`
	PageSize       int            `json:"page_size"`
	ResendCooldown int            `json:"resend_cooldown"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is given the function is a no-op. Zero-valued
// JSON fields leave the current config value in place. Panics on read or
// unmarshal errors.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.ResendCooldown != 0 {
		cfg.ResendCooldown = jc.ResendCooldown
	}
}
