package config

import (
	"time"

	"github.com/joanaapp/joana-cli/internal/filex"
)

// Config holds runtime settings for the Joana CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: overall per-request timeout of the HTTP pipeline.
//   - DataDir: directory holding the local session database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DataDir        string
}

// LoadDefaults populates c with sensible defaults. The data dir falls back
// to the current directory when the per-user config dir cannot be resolved.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:4000/api"
	c.RequestTimeout = 10 * time.Second

	if dir, err := filex.DefaultDataDir("joana"); err == nil {
		c.DataDir = dir
	} else {
		c.DataDir = "."
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
