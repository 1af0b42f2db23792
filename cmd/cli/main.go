package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"reliefreach/app"
	"reliefreach/domain/experiment"
	"reliefreach/internal/config"
	"reliefreach/internal/container"
)

// Demo scenario runner. Seeds an in-memory store, creates a campaign with
// generated content variations, runs a simulated experiment to conclusion,
// processes the demo candidate pool, and prints the outcomes as JSON.
func main() {
	seed := flag.Int64("seed", 42, "deterministic seed for content generation and traffic simulation")
	rounds := flag.Int("rounds", 120, "simulated traffic rounds per variant")
	criterion := flag.String("criterion", "engagement", "winner criterion: engagement, reach, or clicks")
	flag.Parse()

	if err := run(*seed, *rounds, experiment.Criterion(*criterion)); err != nil {
		log.Fatalf("Demo run failed: %v", err)
	}
}

func run(seed int64, rounds int, criterion experiment.Criterion) error {
	ctx := context.Background()

	cfg := &config.Config{
		Database: config.DatabaseConfig{URL: "memory"},
		Server:   config.ServerConfig{Port: "8080", DashboardPort: "8090", GinMode: "release"},
		Content:  config.ContentConfig{Seed: seed, MaxVariations: 4},
		Engine:   config.EngineConfig{DefaultTestDurationHours: 24, AutoRespondEnabled: true},
		Export:   config.ExportConfig{ExcelFile: "experiment_results.xlsx"},
	}

	c, err := container.New(cfg)
	if err != nil {
		return err
	}
	if err := c.InitInMemory(); err != nil {
		return err
	}

	demo, profiles, err := c.TestKit.SeedDemoData(ctx)
	if err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}

	created, err := c.CampaignService.CreateCampaign(ctx, app.CreateCampaignRequest{
		Name:           demo.Name + " (experiment)",
		Prompt:         demo.Content.Prompt,
		MediaType:      demo.Content.MediaType,
		Platforms:      []string{"facebook", "instagram", "twitter"},
		VariationCount: 2,
		TargetAudience: demo.TargetAudience,
		Job:            demo.Job,
	})
	if err != nil {
		return fmt.Errorf("creating campaign: %w", err)
	}
	fmt.Fprintf(os.Stderr, "campaign %s created with %d variations\n", created.ID, len(created.Content.Variations))

	id, err := c.ExperimentService.StartExperiment(ctx, app.StartExperimentRequest{
		CampaignID: created.ID,
		Criterion:  criterion,
	})
	if err != nil {
		return fmt.Errorf("starting experiment: %w", err)
	}

	// Simulated traffic. Variant order determines its baseline rate, so the
	// first variant accumulates a clear lead over enough rounds.
	traffic := rand.New(rand.NewSource(seed))
	for round := 0; round < rounds; round++ {
		for i, v := range created.Content.Variations {
			c.ExperimentService.RecordMetric(id, v.ID, experiment.MetricImpressions, 1)
			rate := 0.5 - 0.2*float64(i)
			if traffic.Float64() < rate {
				c.ExperimentService.RecordMetric(id, v.ID, experiment.MetricEngagement, 1)
				c.ExperimentService.RecordMetric(id, v.ID, experiment.MetricClicks, 1)
			}
			if traffic.Float64() < rate/3 {
				c.ExperimentService.RecordMetric(id, v.ID, experiment.MetricShares, 1)
			}
		}
	}
	c.ExperimentService.Evaluate(id)

	results := c.ExperimentService.Results(id)
	if results == nil {
		return fmt.Errorf("experiment %s disappeared", id)
	}
	if results.Winner != nil {
		if err := c.ExperimentService.ApplyWinner(ctx, id); err != nil {
			return fmt.Errorf("applying winner: %w", err)
		}
	}

	processed := make([]any, 0, len(profiles))
	for _, p := range profiles {
		result, err := c.ResponseService.ProcessProfile(ctx, created.ID, *p)
		if err != nil {
			return fmt.Errorf("processing profile %s: %w", p.Name, err)
		}
		processed = append(processed, result)
	}

	out := map[string]any{
		"campaign_id": created.ID,
		"experiment":  results,
		"candidates":  processed,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
