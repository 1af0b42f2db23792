package app

import (
	"context"
	"fmt"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/internal"
	"reliefreach/ports"
)

// AnalyticsSource synthesizes analytics for a campaign that has none yet.
// Platform posting is out of scope, so reads of active campaigns fill in
// synthetic numbers instead of live ones.
type AnalyticsSource func(id core.CampaignID) campaign.Analytics

// CampaignService orchestrates campaign lifecycle and content generation
type CampaignService struct {
	campaigns ports.CampaignRepository
	platforms ports.PlatformRepository
	content   *ContentService
	analytics AnalyticsSource
	logger    *internal.Logger
}

// NewCampaignService creates a campaign service. analytics may be nil, in
// which case campaigns are returned without synthesized analytics.
func NewCampaignService(campaigns ports.CampaignRepository, platforms ports.PlatformRepository, content *ContentService, analytics AnalyticsSource, logger *internal.Logger) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		platforms: platforms,
		content:   content,
		analytics: analytics,
		logger:    logger,
	}
}

// CreateCampaignRequest defines inputs for campaign creation
type CreateCampaignRequest struct {
	Name           string
	Description    string
	Prompt         string
	MediaType      campaign.MediaType
	Platforms      []string
	VariationCount int
	TargetAudience campaign.TargetAudience
	Job            *campaign.JobPosting
}

// CreateCampaign builds a new draft campaign, generating its creative assets
// and content variations up front.
func (s *CampaignService) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*campaign.Campaign, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if req.MediaType == "" {
		req.MediaType = campaign.MediaImage
	}
	if req.VariationCount < 1 {
		req.VariationCount = 2
	}

	c := &campaign.Campaign{
		ID:          core.CampaignID(core.NewID()),
		Name:        req.Name,
		Description: req.Description,
		Status:      campaign.StatusDraft,
		CreatedAt:   core.Now(),
		Content: campaign.ContentPlan{
			Prompt:    req.Prompt,
			MediaType: req.MediaType,
		},
		TargetAudience: req.TargetAudience,
		Job:            req.Job,
	}

	platforms, err := s.resolvePlatforms(ctx, req.Platforms)
	if err != nil {
		return nil, err
	}
	c.Platforms = platforms

	if req.Prompt != "" {
		variations, err := s.content.BuildVariations(ctx, req.Prompt, req.Platforms, req.VariationCount)
		if err != nil {
			return nil, fmt.Errorf("failed to generate campaign content: %w", err)
		}
		c.Content.Variations = variations
		for _, v := range variations {
			c.Content.Generated = append(c.Content.Generated, v.Content...)
		}
	}

	if err := s.campaigns.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save campaign: %w", err)
	}

	s.logger.Info("created campaign %s (%s) with %d variations", c.Name, c.ID, len(c.Content.Variations))
	return c, nil
}

// ListCampaigns returns all campaigns in creation order
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]*campaign.Campaign, error) {
	return s.campaigns.List(ctx)
}

// GetCampaign retrieves one campaign, nil when missing. Active campaigns
// without recorded analytics get a synthesized snapshot attached.
func (s *CampaignService) GetCampaign(ctx context.Context, id core.CampaignID) (*campaign.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	if s.analytics != nil && c.Status == campaign.StatusActive && len(c.Analytics.TimeSeries) == 0 {
		c.Analytics = s.analytics(c.ID)
	}
	return c, nil
}

// UpdateCampaign persists campaign changes
func (s *CampaignService) UpdateCampaign(ctx context.Context, c *campaign.Campaign) error {
	existing, err := s.campaigns.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return core.NewNotFoundError("campaign", c.ID.String())
	}
	return s.campaigns.Save(ctx, c)
}

// DeleteCampaign removes a campaign, reporting whether one existed
func (s *CampaignService) DeleteCampaign(ctx context.Context, id core.CampaignID) (bool, error) {
	deleted, err := s.campaigns.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("deleted campaign %s", id)
	}
	return deleted, nil
}

// ActivateCampaign transitions a draft campaign to active
func (s *CampaignService) ActivateCampaign(ctx context.Context, id core.CampaignID) (*campaign.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, core.NewNotFoundError("campaign", id.String())
	}
	c.Status = campaign.StatusActive
	if err := s.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListPlatforms returns the platform registry
func (s *CampaignService) ListPlatforms(ctx context.Context) ([]campaign.Platform, error) {
	return s.platforms.List(ctx)
}

// UpdatePlatform upserts a platform configuration
func (s *CampaignService) UpdatePlatform(ctx context.Context, p campaign.Platform) error {
	return s.platforms.Update(ctx, p)
}

// resolvePlatforms selects the requested platforms from the registry. An
// empty request attaches every registered platform.
func (s *CampaignService) resolvePlatforms(ctx context.Context, names []string) ([]campaign.Platform, error) {
	registered, err := s.platforms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	if len(names) == 0 {
		return registered, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var selected []campaign.Platform
	for _, p := range registered {
		if wanted[string(p.Name)] {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
