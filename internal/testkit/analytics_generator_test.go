package testkit

import (
	"context"
	"testing"
	"time"
)

func TestGenerateAnalyticsReproducible(t *testing.T) {
	config := DefaultAnalyticsConfig()
	config.Now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	first := NewAnalyticsGenerator(config).Generate()
	second := NewAnalyticsGenerator(config).Generate()

	if first.TotalReach != second.TotalReach || first.ConversionRate != second.ConversionRate {
		t.Error("same seed should produce identical analytics")
	}
	if first.TotalReach < 1000 || first.TotalReach >= 11000 {
		t.Errorf("total reach %d out of range", first.TotalReach)
	}
	if first.ConversionRate < 0.02 || first.ConversionRate > 0.12 {
		t.Errorf("conversion rate %f out of range", first.ConversionRate)
	}
	if len(first.PlatformBreakdown) != 3 {
		t.Fatalf("got %d platform rows, want 3", len(first.PlatformBreakdown))
	}
	if len(first.TimeSeries) != 7 {
		t.Fatalf("got %d time series points, want 7", len(first.TimeSeries))
	}

	// Series ends on the configured day
	last := first.TimeSeries[6].Timestamp.Time()
	if !last.Equal(config.Now) {
		t.Errorf("last point = %v, want %v", last, config.Now)
	}
}

func TestSummarizeReach(t *testing.T) {
	config := DefaultAnalyticsConfig()
	analytics := NewAnalyticsGenerator(config).Generate()

	summary, err := SummarizeReach(analytics.TimeSeries)
	if err != nil {
		t.Fatalf("SummarizeReach: %v", err)
	}
	if summary.Min < 200 || summary.Max >= 1200 {
		t.Errorf("reach bounds [%f, %f] out of range", summary.Min, summary.Max)
	}
	if summary.Mean < summary.Min || summary.Mean > summary.Max {
		t.Errorf("mean %f outside [min, max]", summary.Mean)
	}
	if summary.Median < summary.Min || summary.Median > summary.Max {
		t.Errorf("median %f outside [min, max]", summary.Median)
	}
}

func TestSummarizeEmptySeries(t *testing.T) {
	if _, err := SummarizeReach(nil); err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestSeedDemoData(t *testing.T) {
	kit := NewTestKit(1)
	ctx := context.Background()

	demo, profiles, err := kit.SeedDemoData(ctx)
	if err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("got %d demo profiles, want 3", len(profiles))
	}

	stored, err := kit.Store().Campaigns().GetByID(ctx, demo.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored == nil || stored.Name != demo.Name {
		t.Errorf("demo campaign not persisted")
	}

	all, err := kit.Store().Profiles().List(ctx)
	if err != nil {
		t.Fatalf("List profiles: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d stored profiles, want 3", len(all))
	}
}
