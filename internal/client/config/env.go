package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables still win over it.
//
// Recognized variables:
//
//	JOANA_API_URL   - base URL of the API
//	JOANA_TIMEOUT   - request timeout as a Go duration, e.g. "10s"
//	JOANA_DATA_DIR  - directory for the session database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JOANA_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("JOANA_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("JOANA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
}
