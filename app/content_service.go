package app

import (
	"context"
	"fmt"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/ports"
)

// ContentService wraps the content generator port and groups raw assets into
// experiment-ready content variations.
type ContentService struct {
	generator ports.ContentGeneratorPort
}

// NewContentService creates a content service
func NewContentService(generator ports.ContentGeneratorPort) *ContentService {
	return &ContentService{generator: generator}
}

// Generate produces a single asset for a prompt
func (s *ContentService) Generate(ctx context.Context, prompt string, mediaType campaign.MediaType) (*campaign.GeneratedContent, error) {
	return s.generator.GenerateContent(ctx, prompt, mediaType)
}

// Analyze scores one generated asset
func (s *ContentService) Analyze(ctx context.Context, content *campaign.GeneratedContent) (*ports.ContentAnalysis, error) {
	return s.generator.AnalyzeContent(ctx, content)
}

// BuildVariations generates count variations across the given platforms and
// groups each round of assets into one named variation arm.
func (s *ContentService) BuildVariations(ctx context.Context, prompt string, platforms []string, count int) ([]campaign.ContentVariation, error) {
	if len(platforms) == 0 {
		platforms = []string{"general"}
	}
	assets, err := s.generator.GenerateVariations(ctx, prompt, platforms, count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate variations: %w", err)
	}

	// Assets come back platforms-major per round, so each consecutive
	// len(platforms) slice forms one variation arm.
	perArm := len(platforms)
	variations := make([]campaign.ContentVariation, 0, count)
	for i := 0; i < count; i++ {
		arm := campaign.ContentVariation{
			ID:   core.VariantID(core.NewID()),
			Name: fmt.Sprintf("Variation %c", 'A'+i),
		}
		start := i * perArm
		end := start + perArm
		if end > len(assets) {
			end = len(assets)
		}
		for _, asset := range assets[start:end] {
			arm.Content = append(arm.Content, *asset)
		}
		variations = append(variations, arm)
	}
	return variations, nil
}
