package ports

import (
	"context"

	"reliefreach/domain/campaign"
)

// ContentAnalysis scores a generated asset for review purposes
type ContentAnalysis struct {
	SentimentScore        float64  `json:"sentiment_score"`
	ReadabilityScore      float64  `json:"readability_score"`
	EngagementPrediction  float64  `json:"engagement_prediction"`
	SuggestedImprovements []string `json:"suggested_improvements"`
}

// ContentGeneratorPort produces creative assets for campaigns. The
// experiment evaluator only consumes variant identifiers and does not depend
// on how content was produced.
type ContentGeneratorPort interface {
	// GenerateContent produces one asset for a prompt
	GenerateContent(ctx context.Context, prompt string, mediaType campaign.MediaType) (*campaign.GeneratedContent, error)

	// GenerateVariations fans out count assets per platform
	GenerateVariations(ctx context.Context, prompt string, platforms []string, count int) ([]*campaign.GeneratedContent, error)

	// AnalyzeContent scores an asset for review
	AnalyzeContent(ctx context.Context, content *campaign.GeneratedContent) (*ContentAnalysis, error)
}
