// Package config loads pokerhud settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath    string        `yaml:"db_path"`
	Workers   int           `yaml:"workers"`    // 0 uses every CPU
	BatchSize int           `yaml:"batch_size"` // hands per insert transaction
	LogLevel  string        `yaml:"log_level"`
	Hero      string        `yaml:"hero"`
	Analyze   AnalyzeConfig `yaml:"analyze"`
}

type AnalyzeConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	APIKey    string `yaml:"-"` // ANTHROPIC_API_KEY only
}

// Dir returns the directory holding the default database and config file.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".pokerhud")
}

// DefaultPath is the config file read when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DBPath:    filepath.Join(Dir(), "hud.db"),
		BatchSize: 200,
		LogLevel:  "info",
		Analyze: AnalyzeConfig{
			Model:     "claude-sonnet-4-5",
			MaxTokens: 2048,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if v := os.Getenv("POKERHUD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("POKERHUD_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("POKERHUD_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("POKERHUD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.Analyze.APIKey = os.Getenv("ANTHROPIC_API_KEY")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.Analyze.MaxTokens <= 0 {
		return fmt.Errorf("analyze.max_tokens must be positive, got %d", c.Analyze.MaxTokens)
	}
	return nil
}
