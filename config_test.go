package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.PollInterval != 2 || cfg.RefreshInterval != 1 {
		t.Errorf("intervals = %d/%d, want defaults", cfg.PollInterval, cfg.RefreshInterval)
	}
	if !cfg.enabled("controller") {
		t.Error("controller should be enabled by default")
	}
}

func TestLoadConfig_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	want := filepath.Join(dir, "controller-status", "config.json")
	if got := defaultConfigPath(); got != want {
		t.Fatalf("defaultConfigPath() = %q, want %q", got, want)
	}
	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, []byte(`{"poll_interval": 7}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.pollEvery() != 7*time.Second {
		t.Errorf("pollEvery() = %v, want 7s", cfg.pollEvery())
	}
}

func TestLoadConfig_Partial(t *testing.T) {
	path := writeConfig(t, `{
		"refresh_interval": 0,
		"poll_interval": 5,
		"modules": ["controller", "cpu"],
		"colors": {"primary": "#FF00FF"},
		"log_level": "debug"
	}`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.refreshEvery() != time.Second {
		t.Errorf("refreshEvery() = %v, want default 1s", cfg.refreshEvery())
	}
	if cfg.pollEvery() != 5*time.Second {
		t.Errorf("pollEvery() = %v, want 5s", cfg.pollEvery())
	}
	if cfg.enabled("clock") || !cfg.enabled("cpu") {
		t.Errorf("modules = %v", cfg.Modules)
	}
	if cfg.Colors.Primary != "#FF00FF" || cfg.Colors.Text != "#E9DFEE" {
		t.Errorf("colors = %+v", cfg.Colors)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `{"poll_interval": "fast"`)

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig() should fail on bad JSON")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug": "debug",
		"warn":  "warn",
		"error": "error",
		"info":  "info",
		"":      "info",
		"loud":  "info",
	}
	for in, want := range tests {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
