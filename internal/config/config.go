package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mreyes87/feedscout/internal/feed"
)

type Config struct {
	Fetch     FetchConfig     `yaml:"fetch"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

type FetchConfig struct {
	Concurrency         int     `yaml:"concurrency"`
	TimeoutSeconds      int     `yaml:"timeout_seconds"`
	EntryTimeoutSeconds int     `yaml:"entry_timeout_seconds"`
	MaxRedirects        int     `yaml:"max_redirects"`
	RequestsPerSecond   float64 `yaml:"requests_per_second"`
	UserAgent           string  `yaml:"user_agent"`
}

type DiscoveryConfig struct {
	Patterns      []string            `yaml:"patterns"`
	CMSSignatures []feed.CMSSignature `yaml:"cms_signatures"`
}

func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			Concurrency:         5,
			TimeoutSeconds:      10,
			EntryTimeoutSeconds: 90,
			MaxRedirects:        5,
			RequestsPerSecond:   2,
			UserAgent:           "feedscout/0.1",
		},
		Discovery: DiscoveryConfig{
			Patterns:      feed.DefaultPatterns,
			CMSSignatures: feed.DefaultCMSSignatures,
		},
	}
}

func Dir() string {
	if dir := os.Getenv("FEEDSCOUT_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".feedscout")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
