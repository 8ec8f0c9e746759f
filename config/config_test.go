package config

import (
	"os"
	"testing"
)

func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unset(t, "BUDGET", "CATALOG_URL", "EXPORT_DIR", "LOG_FILE", "MAIL_RECIPIENT", "EVENT_LABEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Budget.StringFixed(2); got != "1194.00" {
		t.Errorf("budget = %s, want 1194.00", got)
	}
	if cfg.ExportDir != "." {
		t.Errorf("export dir = %q, want .", cfg.ExportDir)
	}
	if cfg.CatalogURL != "" {
		t.Errorf("catalog url = %q, want empty", cfg.CatalogURL)
	}
	if cfg.Mail.Recipient == "" || cfg.Mail.EventLabel == "" {
		t.Error("mail defaults must be set")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BUDGET", "500.50")
	t.Setenv("CATALOG_URL", "http://menu.example.com/items")
	t.Setenv("EXPORT_DIR", "/tmp/orders")
	t.Setenv("EVENT_LABEL", "Team Dinner")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Budget.StringFixed(2); got != "500.50" {
		t.Errorf("budget = %s, want 500.50", got)
	}
	if cfg.CatalogURL != "http://menu.example.com/items" {
		t.Errorf("catalog url = %q", cfg.CatalogURL)
	}
	if cfg.ExportDir != "/tmp/orders" {
		t.Errorf("export dir = %q", cfg.ExportDir)
	}
	if cfg.Mail.EventLabel != "Team Dinner" {
		t.Errorf("event label = %q", cfg.Mail.EventLabel)
	}
}

func TestLoadRejectsNegativeBudget(t *testing.T) {
	t.Setenv("BUDGET", "-5")
	if _, err := Load(); err == nil {
		t.Fatal("negative budget must be rejected")
	}
}
