package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"hotelhub"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		APIBaseURL:   "http://localhost:8000/rest/v1",
		DatabasePath: "hotelhub.db",
		LogoutDelay:  500 * time.Millisecond,
		LogLevel:     "info",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_DefaultsWithoutOverrides(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8000/rest/v1", cfg.APIBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.LogoutDelay)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url":  "http://json:1/rest/v1",
		"database_path": "json.db",
		"logout_delay":  "2s",
		"log_level":     "warn",
	})
	t.Setenv("HOTELHUB_DB", "env.db")
	t.Setenv("HOTELHUB_LOG_LEVEL", "error")
	withArgs(t, "-c", path, "-l", "debug")

	cfg := LoadConfig()

	want := &Config{
		APIBaseURL:   "http://json:1/rest/v1",
		DatabasePath: "env.db",
		LogoutDelay:  2 * time.Second,
		LogLevel:     "debug",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_OnlySetVariablesOverride(t *testing.T) {
	t.Setenv("HOTELHUB_API_URL", "http://env:2/rest/v1")
	t.Setenv("HOTELHUB_LOGOUT_DELAY", "750ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env:2/rest/v1", cfg.APIBaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.LogoutDelay)
	assert.Equal(t, "hotelhub.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv("HOTELHUB_LOGOUT_DELAY", "later")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}
