package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type envConfig struct {
	APIBaseURL   string        `env:"HOTELHUB_API_URL"`
	DatabasePath string        `env:"HOTELHUB_DB"`
	LogoutDelay  time.Duration `env:"HOTELHUB_LOGOUT_DELAY"`
	LogLevel     string        `env:"HOTELHUB_LOG_LEVEL"`
}

// parseEnv overlays cfg with the HOTELHUB_* variables that are set.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.LogoutDelay > 0 {
		cfg.LogoutDelay = ec.LogoutDelay
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
