package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AGROCONNECT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:8000" {
		t.Fatalf("unexpected default base url: %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 15 {
		t.Fatalf("unexpected default timeout: %d", cfg.API.TimeoutSeconds)
	}
	if cfg.UI.CurrencySymbol != "₹" {
		t.Fatalf("unexpected default currency: %s", cfg.UI.CurrencySymbol)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[api]\nbase_url = \"https://agro.example.com\"\ntimeout_seconds = 30\n\n[ui]\ncurrency_symbol = \"$\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AGROCONNECT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "https://agro.example.com" {
		t.Fatalf("file value not applied: %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Fatalf("file timeout not applied: %d", cfg.API.TimeoutSeconds)
	}
	if cfg.UI.CurrencySymbol != "$" {
		t.Fatalf("file currency not applied: %s", cfg.UI.CurrencySymbol)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("AGROCONNECT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("AGROCONNECT_API_BASE_URL", "http://10.0.0.5:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "http://10.0.0.5:8000" {
		t.Fatalf("env override not applied: %s", cfg.API.BaseURL)
	}
}
