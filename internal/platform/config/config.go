package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything the client needs to reach the finance API.
// Precedence: defaults < config file < environment.
type Config struct {
	APIBaseURL     string        `yaml:"api_base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogPath        string        `yaml:"log_path"`
	LogLevel       string        `yaml:"log_level"`
}

const (
	envBaseURL  = "FINTRACK_API_URL"
	envLogPath  = "FINTRACK_LOG_PATH"
	envLogLevel = "FINTRACK_LOG_LEVEL"

	defaultTimeout = 15 * time.Second
)

// Load builds the configuration from an optional YAML file plus the
// environment. A .env file in the working directory is honored when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		RequestTimeout: defaultTimeout,
		LogLevel:       "info",
	}

	if path == "" {
		path = defaultPath()
	}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envLogPath); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("api base url is required (set %s or api_base_url in %s)", envBaseURL, path)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	return cfg, nil
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fintrack.yaml"
	}
	return filepath.Join(home, ".config", "fintrack", "config.yaml")
}
