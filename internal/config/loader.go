package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Env variables consulted for the AI credential, in priority order.
const (
	keyEnvOverride = "BUNNYCHAP_AI_KEY"
	keyEnvDefault  = "OPENAI_API_KEY"
)

// Load loads configuration from ~/.config/bunnychap/config.yaml and overlays
// the AI credential from the environment. A missing or unreadable file yields
// the defaults.
func Load() Config {
	path := ""
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, ".config", "bunnychap", "config.yaml")
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from an explicit path, overlaying the AI
// credential from the environment.
func LoadFrom(path string) Config {
	cfg := DefaultConfig()

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	if key := os.Getenv(keyEnvOverride); key != "" {
		cfg.AI.Key = key
	} else {
		cfg.AI.Key = os.Getenv(keyEnvDefault)
	}

	return cfg
}
