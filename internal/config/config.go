// Package config loads the agent binary's configuration from an optional
// YAML file, with ONEHOP_* environment variables taking precedence.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30s" parse directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", s)
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Provider    string   `yaml:"provider"` // "anthropic" or "openai"
	Model       string   `yaml:"model"`
	BaseURL     string   `yaml:"base_url"`    // openai-compatible endpoints only
	APIKeyEnv   string   `yaml:"api_key_env"` // env var holding the key for the openai provider
	PersistPath string   `yaml:"persist_path"`
	StepTimeout Duration `yaml:"step_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Provider:    "anthropic",
		APIKeyEnv:   "OPENAI_API_KEY",
		PersistPath: "conversation.json",
		StepTimeout: Duration(60 * time.Second),
	}
}

// Load reads path when it exists and applies env overrides on top. A
// missing file is not an error; defaults plus env apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults apply
		default:
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ONEHOP_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("ONEHOP_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ONEHOP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ONEHOP_API_KEY_ENV"); v != "" {
		cfg.APIKeyEnv = v
	}
	if v := os.Getenv("ONEHOP_PERSIST_PATH"); v != "" {
		cfg.PersistPath = v
	}
	if v := os.Getenv("ONEHOP_STEP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.StepTimeout = Duration(d)
		}
	}
}
