package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Display.Currency != nil || cfg.Advice.FoodShare != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[display]
currency = "$"
color = false

[advice]
electricity-limit = 750.5
food-share = 0.25

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Display.Currency == nil || *cfg.Display.Currency != "$" {
		t.Fatalf("unexpected currency: %v", cfg.Display.Currency)
	}
	if cfg.Display.Color == nil || *cfg.Display.Color {
		t.Fatalf("expected color=false, got %v", cfg.Display.Color)
	}
	if cfg.Advice.ElectricityLimit == nil || *cfg.Advice.ElectricityLimit != 750.5 {
		t.Fatalf("unexpected electricity limit: %v", cfg.Advice.ElectricityLimit)
	}
	if cfg.Advice.FoodShare == nil || *cfg.Advice.FoodShare != 0.25 {
		t.Fatalf("unexpected food share: %v", cfg.Advice.FoodShare)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display]\ncurrancy = \"$\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "rentcalc", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
