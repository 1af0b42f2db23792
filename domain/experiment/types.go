package experiment

import (
	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
)

// Status tracks an experiment through its lifecycle. Once status leaves
// Running the experiment is frozen and never transitions back.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusStopped   Status = "stopped"
)

// Criterion selects the single metric used to rank variants
type Criterion string

const (
	CriterionEngagement Criterion = "engagement"
	CriterionReach      Criterion = "reach"
	CriterionClicks     Criterion = "clicks"
)

// Metric names the accumulable per-variant counters
type Metric string

const (
	MetricImpressions Metric = "impressions"
	MetricEngagement  Metric = "engagement"
	MetricClicks      Metric = "clicks"
	MetricShares      Metric = "shares"
)

// Config holds the parameters of one content experiment
type Config struct {
	Enabled       bool             `json:"enabled"`
	DurationHours int              `json:"test_duration"`
	Criterion     Criterion        `json:"winner_criteria"`
	VariantIDs    []core.VariantID `json:"variations"`
}

// Performance holds the accumulated counters for one variant. All counters
// are monotonically non-decreasing; ConversionRate is derived after every
// update as clicks/impressions and stays 0 while impressions is 0.
type Performance struct {
	Impressions    int64   `json:"impressions"`
	Engagement     int64   `json:"engagement"`
	Clicks         int64   `json:"clicks"`
	Shares         int64   `json:"shares"`
	ConversionRate float64 `json:"conversion_rate"`
}

// Score returns the counter selected by the criterion
func (p Performance) Score(criterion Criterion) int64 {
	switch criterion {
	case CriterionEngagement:
		return p.Engagement
	case CriterionReach:
		return p.Impressions
	case CriterionClicks:
		return p.Clicks
	default:
		return 0
	}
}

// Execution is one running or concluded comparison of content variants
type Execution struct {
	ID         core.ExperimentID           `json:"id"`
	CampaignID core.CampaignID             `json:"campaign_id"`
	Variants   []campaign.ContentVariation `json:"variations"`
	Config     Config                      `json:"config"`
	StartTime  core.Timestamp              `json:"start_time"`
	EndTime    core.Timestamp              `json:"end_time"`
	Status     Status                      `json:"status"`
	Winner     *campaign.ContentVariation  `json:"winner,omitempty"`

	// results keyed by variant ID; created at start, one per variant, never
	// removed. Iteration must follow Variants order.
	Results map[core.VariantID]*Performance `json:"results"`
}

// IsRunning reports whether the experiment still accepts metrics
func (e *Execution) IsRunning() bool {
	return e.Status == StatusRunning
}

// VariantResult pairs a variant with its performance in a results snapshot
type VariantResult struct {
	Variant     campaign.ContentVariation `json:"variation"`
	Performance Performance               `json:"performance"`
	IsWinner    bool                      `json:"is_winner"`
}

// Results is an immutable snapshot of an experiment's state
type Results struct {
	ExperimentID   core.ExperimentID          `json:"test_id"`
	CampaignID     core.CampaignID            `json:"campaign_id"`
	Status         Status                     `json:"status"`
	StartTime      core.Timestamp             `json:"start_time"`
	EndTime        core.Timestamp             `json:"end_time"`
	Config         Config                     `json:"config"`
	VariantResults []VariantResult            `json:"variation_results"`
	Winner         *campaign.ContentVariation `json:"winner,omitempty"`
	Insights       []string                   `json:"insights"`
}
