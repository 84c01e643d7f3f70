package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BackendURL     string `yaml:"backend_url"`
	RequestTimeout int    `yaml:"request_timeout_seconds"`

	StateDir string `yaml:"state_dir"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// MetricsAddr enables the Prometheus endpoint when non-empty,
	// e.g. "127.0.0.1:9190".
	MetricsAddr string `yaml:"metrics_addr"`
}

// Load reads an optional YAML file and overlays environment variables on
// top. An empty path checks the default locations; a missing file is not an
// error, only an unreadable or malformed one is.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		for _, loc := range defaultLocations() {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	mergeEnv(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

func defaultLocations() []string {
	locations := []string{"lexi.yaml", "lexi.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		locations = append(locations, filepath.Join(dir, "lexi", "config.yaml"))
	}
	return locations
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("LEXI_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("LEXI_REQUEST_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = n
		}
	}
	if v := os.Getenv("LEXI_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("LEXI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LEXI_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("LEXI_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.BackendURL == "" {
		cfg.BackendURL = "http://localhost:4000/api"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60
	}
	if cfg.StateDir == "" {
		cfg.StateDir = defaultStateDir()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".lexi"
	}
	return filepath.Join(dir, "lexi")
}
