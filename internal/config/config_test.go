package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DOCKYARD_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.State.LayoutFile != "layout.json" {
		t.Errorf("layout_file = %q, want layout.json", cfg.State.LayoutFile)
	}
	if cfg.State.DebounceSeconds != 10 {
		t.Errorf("debounce_seconds = %d, want 10", cfg.State.DebounceSeconds)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.UI.Locale != "en" {
		t.Errorf("locale = %q, want en", cfg.UI.Locale)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DOCKYARD_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("DOCKYARD_UI_THEME", "light")
	t.Setenv("DOCKYARD_STATE_DEBOUNCE_SECONDS", "3")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.State.DebounceSeconds != 3 {
		t.Errorf("debounce_seconds = %d, want 3", cfg.State.DebounceSeconds)
	}
}

func TestLayoutPathResolution(t *testing.T) {
	cfg := Config{State: StateConfig{Dir: "/tmp/state", LayoutFile: "layout.json"}}
	if got := cfg.LayoutPath(); got != filepath.Join("/tmp/state", "layout.json") {
		t.Fatalf("relative layout path = %q", got)
	}
	cfg.State.LayoutFile = "/elsewhere/layout.json"
	if got := cfg.LayoutPath(); got != "/elsewhere/layout.json" {
		t.Fatalf("absolute layout path = %q", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("DOCKYARD_CONFIG", path)

	cfg := Config{
		State: StateConfig{Dir: "/tmp/dockyard", LayoutFile: "layout.json", DebounceSeconds: 5},
		UI:    UIConfig{Theme: "light", Locale: "zh-CN"},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.UI.Theme != "light" || loaded.UI.Locale != "zh-CN" {
		t.Fatalf("ui round trip mismatch: %+v", loaded.UI)
	}
	if loaded.State.DebounceSeconds != 5 {
		t.Fatalf("debounce round trip = %d", loaded.State.DebounceSeconds)
	}
}
