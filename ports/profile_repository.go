package ports

import (
	"context"

	"reliefreach/domain/core"
	"reliefreach/domain/response"
)

// ProfileRepository defines the interface for candidate profile storage
type ProfileRepository interface {
	// List returns all stored candidate profiles
	List(ctx context.Context) ([]*response.CandidateProfile, error)

	// ListByCampaign returns the profiles that received an auto response
	// for the given campaign
	ListByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.CandidateProfile, error)

	// GetByID retrieves a profile by id, nil when missing
	GetByID(ctx context.Context, id core.ProfileID) (*response.CandidateProfile, error)

	// Save upserts a candidate profile
	Save(ctx context.Context, p *response.CandidateProfile) error
}
