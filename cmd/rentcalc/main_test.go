package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/rentcalc/internal/config"
)

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRootRunsSession(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")
	out, err := runRoot(t, "6000\n800\n200\n3000\n500\n0\n0\n3\nno\n", "--config", cfgPath)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{
		"Total Expenses................ ₹  10500.00",
		"Per Person Cost: ₹3500.00",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI sequences when writing to a buffer")
	}
}

func TestConfigFileAppliesAndFlagsOverride(t *testing.T) {
	cfgPath := writeConfig(t, "[display]\ncurrency = \"$\"\n\n[advice]\nelectricity-limit = 500.0\n")
	answers := "0\n800\n0\n0\n0\n0\n0\n1\nn\n"

	out, err := runRoot(t, answers, "--config", cfgPath)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Per Person Cost: $800.00") {
		t.Fatalf("expected currency from config:\n%s", out)
	}
	if !strings.Contains(out, "electricity bill is high") {
		t.Fatalf("expected electricity tip with lowered limit:\n%s", out)
	}

	out, err = runRoot(t, answers, "--config", cfgPath, "--currency", "EUR ", "--electricity-limit", "1000")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Per Person Cost: EUR 800.00") {
		t.Fatalf("expected flag currency to win:\n%s", out)
	}
	if strings.Contains(out, "electricity bill is high") {
		t.Fatalf("flag limit should override config:\n%s", out)
	}
}

func TestRootRejectsInvalidThresholds(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := runRoot(t, "", "--config", cfgPath, "--food-share", "-1"); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	cfgPath := writeConfig(t, "[log]\nlevel = \"chatty\"\n")
	if _, err := runRoot(t, "", "--config", cfgPath); err == nil {
		t.Fatalf("expected log level error")
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := writeConfig(t, defaultConfigTemplate())
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template should decode: %v", err)
	}
	if cfg.Display.Currency != nil || cfg.Advice.ElectricityLimit != nil {
		t.Fatalf("template values should all be commented out: %+v", cfg)
	}
}

func TestEnsureConfigFileKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	if err := os.WriteFile(path, []byte("# mine\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "# mine\n" {
		t.Fatalf("existing config was overwritten: %q", data)
	}
}

func TestConfigCmdUsesConfigFlag(t *testing.T) {
	t.Setenv("EDITOR", "true")
	path := filepath.Join(t.TempDir(), "custom", "rentcalc.toml")
	if _, err := runRoot(t, "", "config", "--config", path); err != nil {
		t.Fatalf("execute config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not created at flag path: %v", err)
	}
	if string(data) != defaultConfigTemplate() {
		t.Fatalf("unexpected template contents: %q", data)
	}
}
