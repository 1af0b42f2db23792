package ports

import (
	"context"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
)

// CampaignRepository defines the interface for campaign data operations.
// Lookups on unknown ids return (nil, nil): absence is "nothing to do", not
// a hard failure.
type CampaignRepository interface {
	// List returns all campaigns in creation order
	List(ctx context.Context) ([]*campaign.Campaign, error)

	// GetByID retrieves a campaign by id, nil when missing
	GetByID(ctx context.Context, id core.CampaignID) (*campaign.Campaign, error)

	// Save upserts a campaign
	Save(ctx context.Context, c *campaign.Campaign) error

	// Delete removes a campaign, reporting whether a row was removed
	Delete(ctx context.Context, id core.CampaignID) (bool, error)
}

// PlatformRepository manages the platform registry. Implementations seed the
// default platform set on first read.
type PlatformRepository interface {
	// List returns all platforms, seeding defaults when empty
	List(ctx context.Context) ([]campaign.Platform, error)

	// Update upserts a platform configuration
	Update(ctx context.Context, p campaign.Platform) error
}
