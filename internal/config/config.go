// Package config loads exporter settings from an optional YAML file with
// environment-variable overrides. Credentials are carried in the Config
// value and handed to the client at construction; nothing is global.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config is the top-level starling-export configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Export ExportConfig `yaml:"export"`
}

// APIConfig controls the upstream API client.
type APIConfig struct {
	BaseURL     string `yaml:"base_url" env:"STARLING_API_URL"`
	AccessToken string `yaml:"access_token" env:"STARLING_ACCESS_TOKEN"`
	Version     string `yaml:"version" env:"STARLING_API_VERSION"`
	// TimeoutSeconds bounds each HTTP request. The upstream API has been
	// seen to hang; zero falls back to the client default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// RequestsPerSecond throttles requests; zero disables throttling.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// MaxRetries bounds backoff retries on 429/5xx responses.
	MaxRetries int `yaml:"max_retries"`
}

// Timeout returns the per-request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ExportConfig controls output file placement.
type ExportConfig struct {
	Directory string `yaml:"directory"`
}

// Default returns a Config with working defaults for the production API.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Version:        "feed",
			TimeoutSeconds: 30,
			MaxRetries:     3,
		},
	}
}

// Load reads path if it exists, then applies environment overrides. A
// missing file is not an error: flags and env can carry everything.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
