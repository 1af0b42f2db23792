package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/montanaflynn/stats"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
)

// AnalyticsGeneratorConfig configures the synthetic analytics generator
type AnalyticsGeneratorConfig struct {
	Seed           int64     `json:"seed"`
	TimeSeriesDays int       `json:"time_series_days"`
	Now            time.Time `json:"now"`
}

// DefaultAnalyticsConfig returns sensible defaults for analytics generation
func DefaultAnalyticsConfig() AnalyticsGeneratorConfig {
	return AnalyticsGeneratorConfig{
		Seed:           42,
		TimeSeriesDays: 7,
		Now:            time.Now(),
	}
}

// AnalyticsGenerator produces synthetic campaign analytics for demos and
// fixtures. Output is reproducible for a fixed seed.
type AnalyticsGenerator struct {
	config AnalyticsGeneratorConfig
	rng    *rand.Rand
}

// NewAnalyticsGenerator creates a new analytics generator
func NewAnalyticsGenerator(config AnalyticsGeneratorConfig) *AnalyticsGenerator {
	return &AnalyticsGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds one full analytics snapshot: campaign totals, a per-platform
// breakdown and a daily time series ending today.
func (g *AnalyticsGenerator) Generate() campaign.Analytics {
	return campaign.Analytics{
		TotalReach:        g.intBetween(1000, 11000),
		TotalEngagement:   g.intBetween(100, 1100),
		TotalClicks:       g.intBetween(50, 550),
		ConversionRate:    g.rng.Float64()*0.1 + 0.02,
		CostPerEngagement: g.rng.Float64()*2 + 0.5,
		PlatformBreakdown: []campaign.PlatformAnalytics{
			{
				Platform:   "Facebook",
				Reach:      g.intBetween(500, 3500),
				Engagement: g.intBetween(50, 350),
				Clicks:     g.intBetween(20, 170),
				Shares:     g.intBetween(5, 55),
				Comments:   g.intBetween(10, 110),
				Saves:      g.intBetween(2, 27),
			},
			{
				Platform:   "Instagram",
				Reach:      g.intBetween(400, 2900),
				Engagement: g.intBetween(40, 290),
				Clicks:     g.intBetween(15, 135),
				Shares:     g.intBetween(3, 33),
				Comments:   g.intBetween(8, 88),
				Saves:      g.intBetween(5, 45),
			},
			{
				Platform:   "Twitter",
				Reach:      g.intBetween(300, 2300),
				Engagement: g.intBetween(30, 230),
				Clicks:     g.intBetween(10, 110),
				Shares:     g.intBetween(8, 68),
				Comments:   g.intBetween(7, 77),
				Saves:      g.intBetween(1, 16),
			},
		},
		TimeSeries: g.generateTimeSeries(),
	}
}

func (g *AnalyticsGenerator) generateTimeSeries() []campaign.TimeSeriesPoint {
	days := g.config.TimeSeriesDays
	points := make([]campaign.TimeSeriesPoint, 0, days)
	for i := 0; i < days; i++ {
		day := g.config.Now.AddDate(0, 0, -(days - 1 - i))
		points = append(points, campaign.TimeSeriesPoint{
			Timestamp:  core.NewTimestamp(day),
			Reach:      g.intBetween(200, 1200),
			Engagement: g.intBetween(20, 120),
			Clicks:     g.intBetween(5, 55),
		})
	}
	return points
}

func (g *AnalyticsGenerator) intBetween(min, max int64) int64 {
	return min + g.rng.Int63n(max-min)
}

// TimeSeriesSummary condenses a daily metric series into summary statistics
type TimeSeriesSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// SummarizeReach computes summary statistics over the daily reach series
func SummarizeReach(series []campaign.TimeSeriesPoint) (TimeSeriesSummary, error) {
	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = float64(p.Reach)
	}
	return summarize(values)
}

// SummarizeEngagement computes summary statistics over the daily engagement series
func SummarizeEngagement(series []campaign.TimeSeriesPoint) (TimeSeriesSummary, error) {
	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = float64(p.Engagement)
	}
	return summarize(values)
}

func summarize(values []float64) (TimeSeriesSummary, error) {
	if len(values) == 0 {
		return TimeSeriesSummary{}, fmt.Errorf("cannot summarize empty series")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return TimeSeriesSummary{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return TimeSeriesSummary{}, err
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return TimeSeriesSummary{}, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return TimeSeriesSummary{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return TimeSeriesSummary{}, err
	}

	return TimeSeriesSummary{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}, nil
}
