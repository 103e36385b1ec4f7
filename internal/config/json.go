package config

import (
	"encoding/json"
	"os"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// non-empty values are copied into the runtime Config.
type JsonConfig struct {
	BaseURL      string `json:"base_url"`
	TokenBackend string `json:"token_backend"`
	TokenFile    string `json:"token_file"`
	CachePath    string `json:"cache_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.StringValue.
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies non-empty fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.StringValue(os.Args[1:], "-c", "-config")
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
	if jc.TokenBackend != "" {
		cfg.TokenBackend = jc.TokenBackend
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.CachePath != "" {
		cfg.CachePath = jc.CachePath
	}
}
