package heuristic

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/ports"
)

// maxConcurrentGenerations bounds the variation fan-out
const maxConcurrentGenerations = 4

var disasterKeywords = []string{"hurricane", "earthquake", "flood", "wildfire", "tornado"}

// Generator is a stand-in content generator producing caption, hashtag and
// media-URL placeholders without calling a real AI backend. Output is
// keyword-aware and reproducible for a fixed seed.
type Generator struct {
	rng  ports.RNGPort
	seed int64
	sem  *semaphore.Weighted

	// now is swappable for tests
	now func() time.Time
}

// NewGenerator creates a mock content generator over a seeded RNG source
func NewGenerator(rng ports.RNGPort, seed int64) *Generator {
	return &Generator{
		rng:  rng,
		seed: seed,
		sem:  semaphore.NewWeighted(maxConcurrentGenerations),
		now:  time.Now,
	}
}

// GenerateContent produces one asset for a prompt
func (g *Generator) GenerateContent(ctx context.Context, prompt string, mediaType campaign.MediaType) (*campaign.GeneratedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := core.NewID()
	// stream name derives from the inputs, not the asset id, so the same
	// prompt and seed always yield the same URL and hashtags
	stream := g.rng.SeededStream("content:"+string(mediaType)+":"+prompt, g.seed)

	url := fmt.Sprintf("https://picsum.photos/800/600?random=%d", stream.Int63())
	if mediaType == campaign.MediaVideo {
		url = "https://sample-videos.com/zip/10/mp4/SampleVideo_360x240_1mb.mp4"
	}

	return &campaign.GeneratedContent{
		ID:          id,
		Type:        mediaType,
		URL:         url,
		Caption:     generateCaption(prompt),
		Hashtags:    generateHashtags(prompt, stream),
		Platform:    "general",
		GeneratedAt: core.NewTimestamp(g.now()),
	}, nil
}

// GenerateVariations fans out count assets per platform, bounded by the
// generator's semaphore. Output order is platforms-major within each round,
// matching the request order.
func (g *Generator) GenerateVariations(ctx context.Context, prompt string, platforms []string, count int) ([]*campaign.GeneratedContent, error) {
	type slot struct {
		platform string
		prompt   string
		video    bool
	}

	// Media-type decisions are drawn up front from one stream so the
	// fan-out stays deterministic regardless of scheduling.
	decider := g.rng.SeededStream("variations:"+prompt, g.seed)
	slots := make([]slot, 0, count*len(platforms))
	for i := 0; i < count; i++ {
		for _, platform := range platforms {
			slots = append(slots, slot{
				platform: platform,
				prompt:   fmt.Sprintf("%s optimized for %s", prompt, platform),
				video:    decider.Float64() > 0.7,
			})
		}
	}

	results := make([]*campaign.GeneratedContent, len(slots))
	errs := make([]error, len(slots))
	var wg sync.WaitGroup

	for i := range slots {
		if err := g.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer g.sem.Release(1)

			mediaType := campaign.MediaImage
			if slots[i].video {
				mediaType = campaign.MediaVideo
			}
			content, err := g.GenerateContent(ctx, slots[i].prompt, mediaType)
			if err != nil {
				errs[i] = err
				return
			}
			content.Platform = slots[i].platform
			results[i] = content
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// AnalyzeContent scores an asset for review. The scores are placeholder
// heuristics, not model output.
func (g *Generator) AnalyzeContent(ctx context.Context, content *campaign.GeneratedContent) (*ports.ContentAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream := g.rng.SeededStream("analysis:"+string(content.ID), g.seed)
	return &ports.ContentAnalysis{
		SentimentScore:       stream.Float64(),
		ReadabilityScore:     stream.Float64(),
		EngagementPrediction: stream.Float64() * 1000,
		SuggestedImprovements: []string{
			"Add more emotional appeal",
			"Include call-to-action",
			"Optimize hashtag selection",
		},
	}, nil
}

// generateCaption builds a recruitment caption, escalating the tone when the
// prompt mentions a disaster keyword.
func generateCaption(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, keyword := range disasterKeywords {
		if strings.Contains(lower, keyword) {
			return fmt.Sprintf("🚨 URGENT: Post-disaster support needed! %s... "+
				"We're actively hiring for immediate disaster relief efforts. "+
				"Apply now to make a difference in your community. "+
				"#DisasterRelief #Jobs #Community #Help", truncate(prompt, 100))
		}
	}
	return fmt.Sprintf("Join our mission to help communities rebuild and recover. %s... "+
		"Apply today and be part of the solution. "+
		"#Jobs #Community #Recovery #Hiring", truncate(prompt, 120))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
