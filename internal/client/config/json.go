package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hotelhub/internal/flagx"
	"github.com/dmitrijs2005/hotelhub/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent keys leave the
// current values untouched.
type JsonConfig struct {
	APIBaseURL   string          `json:"api_base_url"`
	DatabasePath string          `json:"database_path"`
	LogoutDelay  *timex.Duration `json:"logout_delay"`
	LogLevel     string          `json:"log_level"`
}

func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
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
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogoutDelay != nil {
		cfg.LogoutDelay = jc.LogoutDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
