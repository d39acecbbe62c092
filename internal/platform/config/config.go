package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL = "http://localhost:8989/api"
	defaultTimeout = 10 * time.Second
)

type Config struct {
	HomeDir         string        `yaml:"-"`
	DBPath          string        `yaml:"-"`
	APIBaseURL      string        `yaml:"api_base_url"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	OfflineFallback bool          `yaml:"offline_fallback"`
}

// Load resolves configuration from defaults, an optional
// <home>/config.yaml, and environment overrides, in that order.
// An empty home falls back to ~/.ghostwrite.
func Load(home string) (Config, error) {
	_ = godotenv.Load()

	if home == "" {
		home = os.Getenv("GHOSTWRITE_HOME")
	}
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		home = filepath.Join(dir, ".ghostwrite")
	}

	cfg := Config{
		HomeDir:        home,
		DBPath:         filepath.Join(home, "ghostwrite.db"),
		APIBaseURL:     defaultBaseURL,
		RequestTimeout: defaultTimeout,
	}

	payload, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(payload, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	if v := os.Getenv("GHOSTWRITE_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	return cfg, nil
}
