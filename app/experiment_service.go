package app

import (
	"context"
	"fmt"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/experiment"
	"reliefreach/internal"
	"reliefreach/internal/abtest"
	"reliefreach/ports"
)

// ExperimentService runs content experiments over a campaign's variations.
// The evaluator is the authority on live state; snapshots are written behind
// it so experiments survive a restart as history.
type ExperimentService struct {
	evaluator *abtest.Evaluator
	campaigns ports.CampaignRepository
	history   ports.ExperimentRepository
	logger    *internal.Logger
}

// NewExperimentService creates an experiment service
func NewExperimentService(evaluator *abtest.Evaluator, campaigns ports.CampaignRepository, history ports.ExperimentRepository, logger *internal.Logger) *ExperimentService {
	return &ExperimentService{
		evaluator: evaluator,
		campaigns: campaigns,
		history:   history,
		logger:    logger,
	}
}

// StartExperimentRequest defines inputs for starting a content experiment
type StartExperimentRequest struct {
	CampaignID    core.CampaignID
	DurationHours int
	Criterion     experiment.Criterion
}

// StartExperiment begins comparing the campaign's content variations
func (s *ExperimentService) StartExperiment(ctx context.Context, req StartExperimentRequest) (core.ExperimentID, error) {
	c, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", core.NewNotFoundError("campaign", req.CampaignID.String())
	}

	if req.DurationHours < 1 {
		req.DurationHours = 24
	}
	if req.Criterion == "" {
		req.Criterion = experiment.CriterionEngagement
	}

	variantIDs := make([]core.VariantID, len(c.Content.Variations))
	for i, v := range c.Content.Variations {
		variantIDs[i] = v.ID
	}

	cfg := experiment.Config{
		Enabled:       true,
		DurationHours: req.DurationHours,
		Criterion:     req.Criterion,
		VariantIDs:    variantIDs,
	}

	id, err := s.evaluator.Start(req.CampaignID, c.Content.Variations, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to start experiment: %w", err)
	}

	if results := s.evaluator.Results(id); results != nil {
		if err := s.history.Save(ctx, results); err != nil {
			s.logger.Error("failed to store experiment snapshot %s: %v", id, err)
		}
	}

	s.logger.Info("started experiment %s for campaign %s (%d variants, %dh)", id, req.CampaignID, len(variantIDs), req.DurationHours)
	return id, nil
}

// RecordMetric accumulates a metric delta for one variant. Unknown ids and
// metric names are ignored.
func (s *ExperimentService) RecordMetric(id core.ExperimentID, variantID core.VariantID, metric experiment.Metric, delta int64) {
	s.evaluator.RecordMetric(id, variantID, metric, delta)
	s.persistConcluded(id)
}

// Evaluate re-checks an experiment's conclusion conditions
func (s *ExperimentService) Evaluate(id core.ExperimentID) {
	s.evaluator.Evaluate(id)
	s.persistConcluded(id)
}

// StopExperiment force-concludes an experiment with the current leader
func (s *ExperimentService) StopExperiment(id core.ExperimentID) bool {
	stopped := s.evaluator.Stop(id)
	if stopped {
		s.logger.Info("stopped experiment %s", id)
		s.persistConcluded(id)
	}
	return stopped
}

// History lists stored experiment snapshots in start order
func (s *ExperimentService) History(ctx context.Context) ([]*experiment.Results, error) {
	return s.history.List(ctx)
}

// persistConcluded updates an experiment's stored snapshot once it reaches a
// terminal status. Storage failures are logged, never surfaced; the evaluator
// stays authoritative.
func (s *ExperimentService) persistConcluded(id core.ExperimentID) {
	results := s.evaluator.Results(id)
	if results == nil || results.Status == experiment.StatusRunning {
		return
	}
	if err := s.history.Save(context.Background(), results); err != nil {
		s.logger.Error("failed to store experiment snapshot %s: %v", id, err)
	}
}

// Results returns a snapshot of one experiment, nil when unknown
func (s *ExperimentService) Results(id core.ExperimentID) *experiment.Results {
	return s.evaluator.Results(id)
}

// ActiveTests lists all experiments in start order
func (s *ExperimentService) ActiveTests() []*experiment.Results {
	return s.evaluator.ActiveTests()
}

// ApplyWinner copies a concluded experiment's winning variation into the
// campaign's content plan as the lead creative.
func (s *ExperimentService) ApplyWinner(ctx context.Context, id core.ExperimentID) error {
	results := s.evaluator.Results(id)
	if results == nil {
		return core.NewNotFoundError("experiment", id.String())
	}
	if results.Winner == nil {
		return fmt.Errorf("experiment %s has no winner", id)
	}

	c, err := s.campaigns.GetByID(ctx, results.CampaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return core.NewNotFoundError("campaign", results.CampaignID.String())
	}

	c.Content.Generated = append([]campaign.GeneratedContent(nil), results.Winner.Content...)
	if err := s.campaigns.Save(ctx, c); err != nil {
		return fmt.Errorf("failed to save campaign with winner: %w", err)
	}

	s.logger.Info("applied winner %s to campaign %s", results.Winner.ID, c.ID)
	return nil
}
