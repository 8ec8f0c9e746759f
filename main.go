package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/tobybase/Meal-order-app/config"
	"github.com/tobybase/Meal-order-app/models"
	"github.com/tobybase/Meal-order-app/services"
	"github.com/tobybase/Meal-order-app/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	catalog := services.NewCatalog(cfg.CatalogURL)

	// Check for menu subcommand: print the catalog and exit, no UI.
	if len(os.Args) > 1 && os.Args[1] == "menu" {
		if err := printMenu(catalog); err != nil {
			fmt.Fprintln(os.Stderr, "menu:", err)
			os.Exit(1)
		}
		return
	}

	program := tea.NewProgram(
		ui.NewModel(cfg, catalog, newLogger(cfg.LogFile)),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ui:", err)
		os.Exit(1)
	}
}

// newLogger writes JSON records to path. Without a path, logging is
// discarded so the terminal stays free for the UI.
func newLogger(path string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file:", err)
		logger.SetOutput(io.Discard)
		return logger
	}
	logger.SetOutput(f)
	return logger
}

func printMenu(catalog services.CatalogProvider) error {
	items, err := catalog.Load(context.Background())
	if err != nil {
		return err
	}
	for _, category := range models.CategoryOrder {
		fmt.Printf("%s\n", category)
		for _, item := range items {
			if item.Category != category {
				continue
			}
			fmt.Printf("  %-36s %8s  %s\n", item.Name, "$"+item.Price.StringFixed(2), item.Description)
		}
		fmt.Println()
	}
	return nil
}
