package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("BUNNYCHAP_AI_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	if cfg.Theme != "catppuccin-mocha" {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
	if cfg.CredentialHeader != "AccessKey" {
		t.Errorf("expected AccessKey header, got %s", cfg.CredentialHeader)
	}
	if cfg.DefaultTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.DefaultTimeout)
	}
	if cfg.AIAvailable() {
		t.Error("AI must be unavailable without a key in the environment")
	}
}

func TestLoadFrom_File(t *testing.T) {
	t.Setenv("BUNNYCHAP_AI_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
theme: gruvbox
default_timeout: 10s
credential_header: X-Api-Key
default_url: https://video.bunnycdn.com/library/42/videos/abc
ai:
  base_url: https://llm.internal
  model: test-model
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadFrom(path)

	if cfg.Theme != "gruvbox" {
		t.Errorf("expected gruvbox, got %s", cfg.Theme)
	}
	if cfg.DefaultTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.DefaultTimeout)
	}
	if cfg.CredentialHeader != "X-Api-Key" {
		t.Errorf("expected X-Api-Key, got %s", cfg.CredentialHeader)
	}
	if cfg.AI.BaseURL != "https://llm.internal" || cfg.AI.Model != "test-model" {
		t.Errorf("unexpected AI config: %+v", cfg.AI)
	}
}

func TestLoadFrom_KeyFromEnvironment(t *testing.T) {
	t.Setenv("BUNNYCHAP_AI_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-default")

	cfg := LoadFrom("")
	if cfg.AI.Key != "sk-default" {
		t.Errorf("expected OPENAI_API_KEY, got %q", cfg.AI.Key)
	}
	if !cfg.AIAvailable() {
		t.Error("AI should be available with a key set")
	}

	t.Setenv("BUNNYCHAP_AI_KEY", "sk-override")
	cfg = LoadFrom("")
	if cfg.AI.Key != "sk-override" {
		t.Errorf("BUNNYCHAP_AI_KEY should win, got %q", cfg.AI.Key)
	}
}

func TestLoadFrom_KeyNeverFromFile(t *testing.T) {
	t.Setenv("BUNNYCHAP_AI_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ai:\n  key: sk-leaked\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadFrom(path)
	if cfg.AI.Key != "" {
		t.Errorf("AI key must not load from the config file, got %q", cfg.AI.Key)
	}
}
