package abtest

import (
	"log"
	"sync"
	"time"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/experiment"
)

const (
	// minimumSampleSize is the impression count every variant must reach
	// before an experiment can conclude early.
	minimumSampleSize = 100

	// minimumImpressions is the floor below which a variant is never
	// considered statistically meaningful.
	minimumImpressions = 30

	// significanceRatio is the score ratio a variant must hold over every
	// competitor to be declared significant. The boundary is inclusive.
	significanceRatio = 1.1
)

// Evaluator tracks running content experiments, accumulates per-variant
// metrics and decides when and which variant wins. All state is held in
// memory behind a single mutex: the conclusion check needs a consistent
// snapshot across every variant of an experiment.
type Evaluator struct {
	mu    sync.Mutex
	tests map[core.ExperimentID]*experiment.Execution
	order []core.ExperimentID

	// now is swappable for tests exercising the time-limit conclusion
	now func() time.Time
}

// NewEvaluator creates an empty experiment evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{
		tests: make(map[core.ExperimentID]*experiment.Execution),
		now:   time.Now,
	}
}

// Start registers a new experiment over the given variants. The only
// validation is a non-empty variant list; every variant gets a zeroed
// performance record and the end time is start + DurationHours.
func (e *Evaluator) Start(campaignID core.CampaignID, variants []campaign.ContentVariation, cfg experiment.Config) (core.ExperimentID, error) {
	if len(variants) == 0 {
		return "", core.ErrNoVariants
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	exec := &experiment.Execution{
		ID:         core.ExperimentID(core.NewID()),
		CampaignID: campaignID,
		Variants:   variants,
		Config:     cfg,
		StartTime:  core.NewTimestamp(now),
		EndTime:    core.NewTimestamp(now.Add(time.Duration(cfg.DurationHours) * time.Hour)),
		Status:     experiment.StatusRunning,
		Results:    make(map[core.VariantID]*experiment.Performance, len(variants)),
	}
	for _, v := range variants {
		exec.Results[v.ID] = &experiment.Performance{}
	}

	e.tests[exec.ID] = exec
	e.order = append(e.order, exec.ID)
	return exec.ID, nil
}

// RecordMetric adds delta to the named counter of a variant and re-runs the
// conclusion check. Unknown experiments, concluded experiments, unknown
// variants and unknown metric names are silent no-ops: late or disconnected
// reporters must never crash the pipeline.
func (e *Evaluator) RecordMetric(id core.ExperimentID, variantID core.VariantID, metric experiment.Metric, delta int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	exec, ok := e.tests[id]
	if !ok || !exec.IsRunning() {
		return
	}
	perf, ok := exec.Results[variantID]
	if !ok {
		return
	}

	switch metric {
	case experiment.MetricImpressions:
		perf.Impressions += delta
	case experiment.MetricEngagement:
		perf.Engagement += delta
	case experiment.MetricClicks:
		perf.Clicks += delta
	case experiment.MetricShares:
		perf.Shares += delta
	default:
		return
	}

	if perf.Impressions > 0 {
		perf.ConversionRate = float64(perf.Clicks) / float64(perf.Impressions)
	}

	e.concludeLocked(exec)
}

// Evaluate runs the conclusion check for an experiment on demand, outside of
// any metric write. Unknown ids are a no-op.
func (e *Evaluator) Evaluate(id core.ExperimentID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if exec, ok := e.tests[id]; ok {
		e.concludeLocked(exec)
	}
}

// concludeLocked completes the experiment when either every variant has
// reached the minimum sample size or the wall clock has passed the end time.
// Callers must hold e.mu.
func (e *Evaluator) concludeLocked(exec *experiment.Execution) {
	if !exec.IsRunning() {
		return
	}

	now := e.now()
	if !e.hasMinimumSampleSize(exec) && now.Before(exec.EndTime.Time()) {
		return
	}

	exec.Winner = e.determineWinner(exec)
	exec.Status = experiment.StatusCompleted
	exec.EndTime = core.NewTimestamp(now)

	name := "No clear winner"
	if exec.Winner != nil {
		name = exec.Winner.Name
	}
	log.Printf("[abtest] experiment %s completed, winner: %s", exec.ID, name)
}

func (e *Evaluator) hasMinimumSampleSize(exec *experiment.Execution) bool {
	for _, v := range exec.Variants {
		if exec.Results[v.ID].Impressions < minimumSampleSize {
			return false
		}
	}
	return true
}

// determineWinner scores each variant by the configured criterion and picks
// the highest significant one. Iteration follows Start order, and only a
// strict improvement replaces the running best, so ties resolve to the
// first-seen variant. Returns nil when no variant is eligible.
func (e *Evaluator) determineWinner(exec *experiment.Execution) *campaign.ContentVariation {
	var best *campaign.ContentVariation
	bestScore := int64(-1)

	for i := range exec.Variants {
		v := &exec.Variants[i]
		perf, ok := exec.Results[v.ID]
		if !ok {
			continue
		}

		score := perf.Score(exec.Config.Criterion)
		if score > bestScore && e.isSignificant(exec, v.ID) {
			bestScore = score
			best = v
		}
	}

	return best
}

// isSignificant applies the simplified ratio heuristic: the variant needs at
// least minimumImpressions and must hold significanceRatio over every
// competitor with a positive score. A zero-score competitor passes
// automatically; a variant with no competitors never qualifies.
func (e *Evaluator) isSignificant(exec *experiment.Execution, variantID core.VariantID) bool {
	perf, ok := exec.Results[variantID]
	if !ok || perf.Impressions < minimumImpressions {
		return false
	}
	if len(exec.Variants) < 2 {
		return false
	}

	score := float64(perf.Score(exec.Config.Criterion))
	for _, v := range exec.Variants {
		if v.ID == variantID {
			continue
		}
		other := float64(exec.Results[v.ID].Score(exec.Config.Criterion))
		if other > 0 && score/other < significanceRatio {
			return false
		}
	}
	return true
}

// Stop forces an experiment to the stopped state, freezing a winner with the
// same determination procedure regardless of sample size or elapsed time.
// Reports false for unknown ids.
func (e *Evaluator) Stop(id core.ExperimentID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	exec, ok := e.tests[id]
	if !ok {
		return false
	}

	exec.Status = experiment.StatusStopped
	exec.EndTime = core.NewTimestamp(e.now())
	exec.Winner = e.determineWinner(exec)
	return true
}

// Results returns a snapshot of one experiment, or nil for unknown ids.
// Concluded experiments remain queryable.
func (e *Evaluator) Results(id core.ExperimentID) *experiment.Results {
	e.mu.Lock()
	defer e.mu.Unlock()

	exec, ok := e.tests[id]
	if !ok {
		return nil
	}
	return e.snapshotLocked(exec)
}

// ActiveTests returns snapshots of every registered experiment in start
// order. The listing is historical: completed and stopped experiments are
// included.
func (e *Evaluator) ActiveTests() []*experiment.Results {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := make([]*experiment.Results, 0, len(e.order))
	for _, id := range e.order {
		results = append(results, e.snapshotLocked(e.tests[id]))
	}
	return results
}

func (e *Evaluator) snapshotLocked(exec *experiment.Execution) *experiment.Results {
	variantResults := make([]experiment.VariantResult, 0, len(exec.Variants))
	for _, v := range exec.Variants {
		perf := exec.Results[v.ID]
		variantResults = append(variantResults, experiment.VariantResult{
			Variant:     v,
			Performance: *perf,
			IsWinner:    exec.Winner != nil && exec.Winner.ID == v.ID,
		})
	}

	return &experiment.Results{
		ExperimentID:   exec.ID,
		CampaignID:     exec.CampaignID,
		Status:         exec.Status,
		StartTime:      exec.StartTime,
		EndTime:        exec.EndTime,
		Config:         exec.Config,
		VariantResults: variantResults,
		Winner:         exec.Winner,
		Insights:       e.generateInsights(exec),
	}
}
