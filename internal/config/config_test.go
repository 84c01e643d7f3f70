package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("LEXI_BACKEND_URL", "")
	t.Setenv("LEXI_REQUEST_TIMEOUT", "")
	t.Setenv("LEXI_LOG_LEVEL", "")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}

	cfg, err := loadWithoutFile(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "http://localhost:4000/api" {
		t.Fatalf("expected default backend url, got %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 60 {
		t.Fatalf("expected default timeout 60, got %d", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.StateDir == "" {
		t.Fatalf("expected a non-empty state dir")
	}
}

func TestLoadParsesEnvOverrides(t *testing.T) {
	t.Setenv("LEXI_BACKEND_URL", "https://lexi.example.com/api")
	t.Setenv("LEXI_REQUEST_TIMEOUT", "15")
	t.Setenv("LEXI_STATE_DIR", "/tmp/lexi-state")
	t.Setenv("LEXI_LOG_LEVEL", "debug")
	t.Setenv("LEXI_METRICS_ADDR", "127.0.0.1:9190")

	cfg, err := loadWithoutFile(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "https://lexi.example.com/api" {
		t.Fatalf("expected backend url override, got %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 15 {
		t.Fatalf("expected timeout 15, got %d", cfg.RequestTimeout)
	}
	if cfg.StateDir != "/tmp/lexi-state" {
		t.Fatalf("expected state dir override, got %q", cfg.StateDir)
	}
	if cfg.MetricsAddr != "127.0.0.1:9190" {
		t.Fatalf("expected metrics addr override, got %q", cfg.MetricsAddr)
	}
}

func TestLoadIgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("LEXI_REQUEST_TIMEOUT", "soon")

	cfg, err := loadWithoutFile(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RequestTimeout != 60 {
		t.Fatalf("expected fallback timeout 60, got %d", cfg.RequestTimeout)
	}
}

func TestLoadMergesFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexi.yaml")
	body := "backend_url: http://file.example.com/api\nlog_level: warn\nrequest_timeout_seconds: 30\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LEXI_LOG_LEVEL", "error")
	t.Setenv("LEXI_BACKEND_URL", "")
	t.Setenv("LEXI_REQUEST_TIMEOUT", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "http://file.example.com/api" {
		t.Fatalf("expected file backend url, got %q", cfg.BackendURL)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected env to win over file, got %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 30 {
		t.Fatalf("expected file timeout 30, got %d", cfg.RequestTimeout)
	}
}

// loadWithoutFile runs Load from a directory with no config file so only
// env and defaults apply.
func loadWithoutFile(t *testing.T) (Config, error) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return Load("")
}
