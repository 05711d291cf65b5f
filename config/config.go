package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the OANDA credentials and environment selection. The
// pipeline treats these as opaque fetch parameters; they are validated
// before any network call is attempted.
type Config struct {
	AccountID   string `yaml:"account_id"`
	AccessToken string `yaml:"access_token"`
	Environment string `yaml:"environment"` // "live" or "practice"
}

// Environment variables that override file values.
const (
	EnvAccountID = "OANDA_ACCOUNT_ID"
	EnvToken     = "OANDA_TOKEN"
	EnvEnv       = "OANDA_ENV"
)

// Load reads credentials from the YAML file at path, then applies
// environment overrides (a .env file is honoured when present). An
// empty path skips the file and uses the environment alone.
func Load(path string) (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v := os.Getenv(EnvAccountID); v != "" {
		cfg.AccountID = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv(EnvEnv); v != "" {
		cfg.Environment = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file without applying
// environment overrides or validation.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks that all required credentials are present and the
// environment is recognised.
func (c *Config) Validate() error {
	if c.AccountID == "" {
		return fmt.Errorf("account_id is required")
	}
	if c.AccessToken == "" {
		return fmt.Errorf("access_token is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "live", "practice", "demo":
		return nil
	default:
		return fmt.Errorf("unknown environment %q (want live|practice)", c.Environment)
	}
}

// Practice reports whether the practice/demo endpoint should be used.
func (c *Config) Practice() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "practice", "demo":
		return true
	}
	return false
}

// Default returns a configuration skeleton for `config init`.
func Default() *Config {
	return &Config{
		Environment: "practice",
	}
}
