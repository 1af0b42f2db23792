package main

import (
	"context"
	"log"
	"time"

	"reliefreach/internal/config"
	"reliefreach/internal/container"
	"reliefreach/internal/migration"
	"reliefreach/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; environment variables win
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	defer c.Close()

	db, err := connectDatabase(cfg)
	if err != nil {
		log.Printf("Database unavailable (%v), falling back to in-memory store", err)
		if err := c.InitInMemory(); err != nil {
			log.Fatalf("Failed to initialize in-memory container: %v", err)
		}
	} else {
		runner := migration.NewRunner()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := runner.Run(ctx, db); err != nil {
			cancel()
			log.Fatalf("Migrations failed: %v", err)
		}
		cancel()
		log.Printf("Migrations complete (schema version %s)", runner.Version())

		if err := c.InitWithDatabase(db); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	}

	// Dashboard runs alongside the JSON API
	go func() {
		app, err := ui.NewApp(c)
		if err != nil {
			log.Printf("Dashboard unavailable: %v", err)
			return
		}
		addr := ":" + cfg.Server.DashboardPort
		log.Printf("Dashboard listening on %s", addr)
		if err := app.Serve(addr); err != nil {
			log.Printf("Dashboard stopped: %v", err)
		}
	}()

	server := ui.NewServer(c)
	addr := ":" + cfg.Server.Port
	log.Printf("API listening on %s", addr)
	if err := server.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func connectDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}
