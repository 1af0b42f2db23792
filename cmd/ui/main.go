package main

import (
	"context"
	"log"
	"os"

	"reliefreach/internal/config"
	"reliefreach/internal/container"
	"reliefreach/ui"
)

// Dashboard-only entrypoint over an in-memory store seeded with demo data.
// Useful for previewing templates and campaign layouts without Postgres.
func main() {
	cfg := &config.Config{
		Database: config.DatabaseConfig{URL: "memory"},
		Server: config.ServerConfig{
			Port:          "8080",
			DashboardPort: envOr("DASHBOARD_PORT", "8090"),
			GinMode:       "release",
		},
		Content: config.ContentConfig{Seed: 42, MaxVariations: 4},
		Engine:  config.EngineConfig{DefaultTestDurationHours: 24, AutoRespondEnabled: true},
		Export:  config.ExportConfig{ExcelFile: "experiment_results.xlsx"},
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	if err := c.InitInMemory(); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if _, _, err := c.TestKit.SeedDemoData(context.Background()); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	app, err := ui.NewApp(c)
	if err != nil {
		log.Fatalf("Failed to build dashboard: %v", err)
	}

	addr := ":" + cfg.Server.DashboardPort
	log.Printf("Dashboard listening on %s", addr)
	if err := app.Serve(addr); err != nil {
		log.Fatalf("Dashboard failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
