// Package config loads runtime configuration for the HotelHub CLI.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (HOTELHUB_API_URL, HOTELHUB_DB,
//     HOTELHUB_LOGOUT_DELAY, HOTELHUB_LOG_LEVEL).
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   base URL of the hotel REST API
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations are timex.Duration, so "500ms" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://localhost:8000/rest/v1",
//	  "database_path": "hotelhub.db",
//	  "logout_delay": "500ms",
//	  "log_level": "info"
//	}
package config
