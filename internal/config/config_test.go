package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/onehop-ai/onehop/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ONEHOP_PROVIDER", "ONEHOP_MODEL", "ONEHOP_BASE_URL",
		"ONEHOP_API_KEY_ENV", "ONEHOP_PERSIST_PATH", "ONEHOP_STEP_TIMEOUT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("provider: got %q want %q", cfg.Provider, "anthropic")
	}
	if cfg.PersistPath != "conversation.json" {
		t.Errorf("persist path: got %q", cfg.PersistPath)
	}
	if cfg.StepTimeout.Std() != 60*time.Second {
		t.Errorf("step timeout: got %v want %v", cfg.StepTimeout.Std(), 60*time.Second)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "onehop.yaml")
	data := []byte(
		"provider: openai\n" +
			"model: llama3\n" +
			"base_url: http://localhost:11434/v1\n" +
			"step_timeout: 90s\n" +
			"persist_path: /tmp/conv.json\n")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "openai" || cfg.Model != "llama3" {
		t.Errorf("unexpected provider/model: %q/%q", cfg.Provider, cfg.Model)
	}
	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("base url: got %q", cfg.BaseURL)
	}
	if cfg.StepTimeout.Std() != 90*time.Second {
		t.Errorf("step timeout: got %v", cfg.StepTimeout.Std())
	}
	if cfg.PersistPath != "/tmp/conv.json" {
		t.Errorf("persist path: got %q", cfg.PersistPath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "onehop.yaml")
	if err := os.WriteFile(p, []byte("provider: openai\nmodel: llama3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ONEHOP_MODEL", "mistral")
	t.Setenv("ONEHOP_STEP_TIMEOUT", "5s")

	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "mistral" {
		t.Errorf("env override lost: got %q want %q", cfg.Model, "mistral")
	}
	if cfg.Provider != "openai" {
		t.Errorf("file value lost: got %q want %q", cfg.Provider, "openai")
	}
	if cfg.StepTimeout.Std() != 5*time.Second {
		t.Errorf("step timeout: got %v", cfg.StepTimeout.Std())
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "onehop.yaml")
	if err := os.WriteFile(p, []byte("step_timeout: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(p); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "onehop.yaml")
	if err := os.WriteFile(p, []byte(": not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(p); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
