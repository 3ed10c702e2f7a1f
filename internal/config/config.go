// Package config loads conslog configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/harrison/conslog/internal/console"
)

// Config represents conslog configuration options.
type Config struct {
	// Language is the language code diagnostics are rendered in.
	Language string `yaml:"language"`

	// LogLimit caps how many entries one render emits (-1 = no limit).
	// A limit of 0 is valid and renders only the truncation note.
	LogLimit int `yaml:"log_limit"`

	// NoColor disables ANSI coloring of terminal output.
	NoColor bool `yaml:"no_color"`

	// LogFiles are paths that receive a colorless mirror of every render.
	LogFiles []string `yaml:"log_files"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Language: "en",
		LogLimit: -1,
	}
}

// LoadConfig loads configuration from the specified file path, then
// applies environment overrides. If the file doesn't exist, defaults are
// used without error; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies CONSLOG_* environment overrides. A .env file in the
// working directory is honored when present.
func applyEnv(cfg *Config) {
	// .env is optional; variables set in the environment win either way.
	_ = godotenv.Load()

	if v := os.Getenv("CONSLOG_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("CONSLOG_NO_COLOR"); v != "" {
		cfg.NoColor = v != "0" && !strings.EqualFold(v, "false")
	}
}

// validate applies the configuration rules.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("config: language must not be empty")
	}
	if c.LogLimit < -1 {
		return fmt.Errorf("config: log_limit must be -1 (no limit) or a non-negative count, got %d", c.LogLimit)
	}
	return nil
}

// Limit converts LogLimit into the console limit policy.
func (c *Config) Limit() console.Limit {
	if c.LogLimit < 0 {
		return console.NoLimit()
	}
	return console.LimitedTo(c.LogLimit)
}
