package config

import "time"

// Config holds runtime settings for the HotelHub CLI.
type Config struct {
	// APIBaseURL is the prefix of every remote API endpoint.
	APIBaseURL string
	// DatabasePath is the SQLite file holding the session tokens.
	DatabasePath string
	// LogoutDelay keeps the loading indicator visible during logout.
	LogoutDelay time.Duration
	LogLevel    string
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/rest/v1"
	c.DatabasePath = "hotelhub.db"
	c.LogoutDelay = 500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then JSON, environment and flags in turn.
// Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
