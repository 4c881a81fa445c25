package config

import "time"

// AIConfig holds the text-generation service settings. The API key is never
// read from the config file; it comes from the environment only.
type AIConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`

	Key string `yaml:"-"`
}

// Config holds the application configuration.
type Config struct {
	Theme            string        `yaml:"theme"`
	DefaultTimeout   time.Duration `yaml:"default_timeout"`
	CredentialHeader string        `yaml:"credential_header"`
	DefaultURL       string        `yaml:"default_url"`
	AI               AIConfig      `yaml:"ai"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:            "catppuccin-mocha",
		DefaultTimeout:   30 * time.Second,
		CredentialHeader: "AccessKey",
		AI: AIConfig{
			BaseURL: "https://api.openai.com",
			Model:   "gpt-4o-mini",
		},
	}
}

// AIAvailable reports whether a text-generation credential is configured.
// When false, chapter generation is disabled and the send path refuses
// non-JSON bodies.
func (c Config) AIAvailable() bool {
	return c.AI.Key != ""
}
