package app

import (
	"context"
	"testing"

	"reliefreach/adapters/memory"
	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/experiment"
	"reliefreach/internal"
	"reliefreach/internal/abtest"
)

func newExperimentFixture(t *testing.T) (*ExperimentService, *memory.Store, *campaign.Campaign) {
	t.Helper()
	store := memory.NewStore()
	logger := internal.NewLogger(internal.LogLevelError)

	c := &campaign.Campaign{
		ID:        core.CampaignID(core.NewID()),
		Name:      "Flood Relief Staffing",
		Status:    campaign.StatusActive,
		CreatedAt: core.Now(),
		Content: campaign.ContentPlan{
			Variations: []campaign.ContentVariation{
				{ID: core.VariantID(core.NewID()), Name: "Variation A"},
				{ID: core.VariantID(core.NewID()), Name: "Variation B"},
			},
		},
	}
	if err := store.Campaigns().Save(context.Background(), c); err != nil {
		t.Fatalf("save campaign: %v", err)
	}

	return NewExperimentService(abtest.NewEvaluator(), store.Campaigns(), store.Experiments(), logger), store, c
}

func TestStartExperimentFromCampaign(t *testing.T) {
	svc, _, c := newExperimentFixture(t)
	ctx := context.Background()

	id, err := svc.StartExperiment(ctx, StartExperimentRequest{CampaignID: c.ID})
	if err != nil {
		t.Fatalf("StartExperiment: %v", err)
	}

	results := svc.Results(id)
	if results == nil {
		t.Fatal("results missing for started experiment")
	}
	if results.Status != experiment.StatusRunning {
		t.Errorf("status = %s, want running", results.Status)
	}
	if len(results.VariantResults) != 2 {
		t.Errorf("got %d variant results, want 2", len(results.VariantResults))
	}
	if results.Config.DurationHours != 24 {
		t.Errorf("duration = %d, want default 24", results.Config.DurationHours)
	}
	if results.Config.Criterion != experiment.CriterionEngagement {
		t.Errorf("criterion = %s, want default engagement", results.Config.Criterion)
	}
}

func TestStartExperimentUnknownCampaign(t *testing.T) {
	svc, _, _ := newExperimentFixture(t)

	if _, err := svc.StartExperiment(context.Background(), StartExperimentRequest{
		CampaignID: core.CampaignID(core.NewID()),
	}); err == nil {
		t.Fatal("expected error for unknown campaign")
	}
}

func TestApplyWinner(t *testing.T) {
	svc, store, c := newExperimentFixture(t)
	ctx := context.Background()

	id, err := svc.StartExperiment(ctx, StartExperimentRequest{CampaignID: c.ID, Criterion: experiment.CriterionClicks})
	if err != nil {
		t.Fatalf("StartExperiment: %v", err)
	}

	winner := c.Content.Variations[0].ID
	loser := c.Content.Variations[1].ID
	svc.RecordMetric(id, winner, experiment.MetricImpressions, 100)
	svc.RecordMetric(id, winner, experiment.MetricClicks, 40)
	svc.RecordMetric(id, loser, experiment.MetricImpressions, 100)
	svc.RecordMetric(id, loser, experiment.MetricClicks, 5)

	results := svc.Results(id)
	if results.Status != experiment.StatusCompleted {
		t.Fatalf("status = %s, want completed after min sample", results.Status)
	}
	if results.Winner == nil || results.Winner.ID != winner {
		t.Fatal("expected first variant to win")
	}

	if err := svc.ApplyWinner(ctx, id); err != nil {
		t.Fatalf("ApplyWinner: %v", err)
	}

	updated, err := store.Campaigns().GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(updated.Content.Generated) != len(results.Winner.Content) {
		t.Errorf("campaign lead creative not replaced with winner content")
	}
}

func TestExperimentSnapshotPersisted(t *testing.T) {
	svc, store, c := newExperimentFixture(t)
	ctx := context.Background()

	id, err := svc.StartExperiment(ctx, StartExperimentRequest{CampaignID: c.ID, Criterion: experiment.CriterionClicks})
	if err != nil {
		t.Fatalf("StartExperiment: %v", err)
	}

	stored, err := store.Experiments().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("got %d stored snapshots, want 1 after start", len(stored))
	}
	if stored[0].Status != experiment.StatusRunning {
		t.Errorf("stored status = %s, want running", stored[0].Status)
	}

	winner := c.Content.Variations[0].ID
	loser := c.Content.Variations[1].ID
	svc.RecordMetric(id, winner, experiment.MetricImpressions, 100)
	svc.RecordMetric(id, winner, experiment.MetricClicks, 40)
	svc.RecordMetric(id, loser, experiment.MetricImpressions, 100)
	svc.RecordMetric(id, loser, experiment.MetricClicks, 5)

	stored, err = store.Experiments().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("got %d stored snapshots, want 1 after conclusion", len(stored))
	}
	snap := stored[0]
	if snap.ExperimentID != id {
		t.Errorf("stored id = %s, want %s", snap.ExperimentID, id)
	}
	if snap.Status != experiment.StatusCompleted {
		t.Errorf("stored status = %s, want completed", snap.Status)
	}
	if snap.Winner == nil || snap.Winner.ID != winner {
		t.Error("stored snapshot missing the winning variant")
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("got %d history entries, want 1", len(history))
	}
}

func TestApplyWinnerWithoutConclusion(t *testing.T) {
	svc, _, c := newExperimentFixture(t)
	ctx := context.Background()

	id, err := svc.StartExperiment(ctx, StartExperimentRequest{CampaignID: c.ID})
	if err != nil {
		t.Fatalf("StartExperiment: %v", err)
	}

	if err := svc.ApplyWinner(ctx, id); err == nil {
		t.Fatal("expected error while experiment is still running")
	}
}
