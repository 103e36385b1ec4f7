package config

import (
	"os"
	"path/filepath"
)

const (
	productionBaseURL = "https://doorspital-backend.onrender.com"
	localBaseURL      = "http://localhost:3000"

	// BaseURLEnv overrides the backend base URL when set.
	BaseURLEnv = "ADMIN_API_BASE_URL"
	// EnvModeEnv selects the local backend when set to "development".
	EnvModeEnv = "ADMIN_ENV"
)

// Config holds runtime settings for the Doorspital admin CLI.
//
// Fields:
//   - BaseURL: root URL of the backend REST API.
//   - TokenBackend: where the admin token is persisted ("keyring" or "file").
//   - TokenFile: path of the token file when TokenBackend is "file".
//   - CachePath: path of the local sqlite snapshot cache.
type Config struct {
	BaseURL      string
	TokenBackend string
	TokenFile    string
	CachePath    string
}

// LoadDefaults populates c with sensible defaults.
//
// The base URL is resolved once, in priority order: the ADMIN_API_BASE_URL
// environment variable, else the local backend when ADMIN_ENV=development,
// else the fixed production URL.
func (c *Config) LoadDefaults() {
	c.BaseURL = resolveBaseURL()
	c.TokenBackend = "keyring"

	dir := stateDir()
	c.TokenFile = filepath.Join(dir, "token")
	c.CachePath = filepath.Join(dir, "cache.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func resolveBaseURL() string {
	if v := os.Getenv(BaseURLEnv); v != "" {
		return v
	}
	if os.Getenv(EnvModeEnv) == "development" {
		return localBaseURL
	}
	return productionBaseURL
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".doorspital-admin")
}
