package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Budget is the fixed maximum total spend for one participant's order,
	// constant for the session.
	Budget decimal.Decimal `envconfig:"BUDGET" default:"1194"`

	// CatalogURL switches the catalog provider to a remote HTTP source.
	// Empty means the built-in menu.
	CatalogURL string `envconfig:"CATALOG_URL"`

	// ExportDir is where confirmed-order CSV files are written.
	ExportDir string `envconfig:"EXPORT_DIR" default:"."`

	// LogFile receives JSON event records. Empty disables logging so the
	// terminal stays free for the UI.
	LogFile string `envconfig:"LOG_FILE"`

	Mail MailConfig
}

type MailConfig struct {
	Recipient  string `envconfig:"MAIL_RECIPIENT" default:"tobylin@kcis.com.tw"`
	EventLabel string `envconfig:"EVENT_LABEL" default:"KCIS DAA Gathering Dinner"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.Budget.IsNegative() {
		return nil, fmt.Errorf("BUDGET must be >= 0, got %s", cfg.Budget)
	}
	return &cfg, nil
}
