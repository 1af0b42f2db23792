package heuristic

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"reliefreach/adapters/rng"
	"reliefreach/domain/campaign"
)

func newTestGenerator() *Generator {
	g := NewGenerator(rng.NewSource(42), 42)
	g.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateContentDisasterCaption(t *testing.T) {
	g := newTestGenerator()

	content, err := g.GenerateContent(context.Background(), "Hurricane cleanup crews needed in Tampa", campaign.MediaImage)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if !strings.HasPrefix(content.Caption, "🚨 URGENT") {
		t.Errorf("disaster prompt should escalate caption, got %q", content.Caption)
	}
	if !strings.Contains(content.URL, "picsum.photos") {
		t.Errorf("image content should use picsum URL, got %q", content.URL)
	}
	if content.Platform != "general" {
		t.Errorf("single asset platform = %q, want general", content.Platform)
	}
	if content.GeneratedAt.Time().IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestGenerateContentReproducible(t *testing.T) {
	prompt := "Flood recovery volunteers needed in Asheville"

	first, err := newTestGenerator().GenerateContent(context.Background(), prompt, campaign.MediaImage)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	second, err := newTestGenerator().GenerateContent(context.Background(), prompt, campaign.MediaImage)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if first.URL != second.URL {
		t.Errorf("URL differs for same seed and prompt: %q vs %q", first.URL, second.URL)
	}
	if strings.Join(first.Hashtags, " ") != strings.Join(second.Hashtags, " ") {
		t.Errorf("hashtags differ for same seed and prompt: %v vs %v", first.Hashtags, second.Hashtags)
	}
	if first.ID == second.ID {
		t.Error("asset ids should still be unique per call")
	}
}

func TestGenerateContentNeutralCaption(t *testing.T) {
	g := newTestGenerator()

	content, err := g.GenerateContent(context.Background(), "Community outreach coordinators", campaign.MediaVideo)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if strings.HasPrefix(content.Caption, "🚨") {
		t.Errorf("neutral prompt should not escalate, got %q", content.Caption)
	}
	if !strings.Contains(content.URL, "sample-videos.com") {
		t.Errorf("video content should use sample video URL, got %q", content.URL)
	}
}

func TestGenerateHashtagsDedupAndCap(t *testing.T) {
	stream := rand.New(rand.NewSource(7))
	tags := generateHashtags("hurricane flood wildfire tornado earthquake response", stream)

	if len(tags) > 10 {
		t.Fatalf("hashtag count = %d, want <= 10", len(tags))
	}
	seen := make(map[string]bool)
	for _, tag := range tags {
		if seen[tag] {
			t.Errorf("duplicate hashtag %q", tag)
		}
		seen[tag] = true
		if !strings.HasPrefix(tag, "#") {
			t.Errorf("hashtag %q missing # prefix", tag)
		}
	}
	for _, want := range []string{"#DisasterRelief", "#Jobs", "#HurricaneRelief", "#FloodRelief"} {
		if !seen[want] {
			t.Errorf("expected hashtag %q in %v", want, tags)
		}
	}
}

func TestGenerateVariationsFanOut(t *testing.T) {
	g := newTestGenerator()
	platforms := []string{"facebook", "twitter", "instagram"}

	results, err := g.GenerateVariations(context.Background(), "Flood relief volunteers", platforms, 2)
	if err != nil {
		t.Fatalf("GenerateVariations: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d variations, want 6", len(results))
	}
	for i, content := range results {
		wantPlatform := platforms[i%len(platforms)]
		if content.Platform != wantPlatform {
			t.Errorf("variation %d platform = %q, want %q", i, content.Platform, wantPlatform)
		}
		if !strings.Contains(content.Caption, "optimized for "+wantPlatform) {
			t.Errorf("variation %d caption missing platform suffix: %q", i, content.Caption)
		}
	}
}

func TestGenerateVariationsCancelled(t *testing.T) {
	g := newTestGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.GenerateVariations(ctx, "prompt", []string{"facebook"}, 50); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestAnalyzeContentDeterministic(t *testing.T) {
	g := newTestGenerator()
	content, err := g.GenerateContent(context.Background(), "Earthquake response", campaign.MediaImage)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	first, err := g.AnalyzeContent(context.Background(), content)
	if err != nil {
		t.Fatalf("AnalyzeContent: %v", err)
	}
	second, err := g.AnalyzeContent(context.Background(), content)
	if err != nil {
		t.Fatalf("AnalyzeContent: %v", err)
	}
	if first.SentimentScore != second.SentimentScore || first.EngagementPrediction != second.EngagementPrediction {
		t.Error("analysis of the same asset should be reproducible")
	}
	if len(first.SuggestedImprovements) != 3 {
		t.Errorf("got %d suggestions, want 3", len(first.SuggestedImprovements))
	}
}
