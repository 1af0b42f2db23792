package ports

import (
	"context"

	"reliefreach/domain/core"
	"reliefreach/domain/response"
)

// ResponseRepository defines the interface for auto-response storage.
// Responses are append-only apart from status transitions.
type ResponseRepository interface {
	// List returns all auto responses
	List(ctx context.Context) ([]*response.AutoResponse, error)

	// ListByCampaign returns the auto responses generated for a campaign
	ListByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.AutoResponse, error)

	// Save appends a generated auto response
	Save(ctx context.Context, r *response.AutoResponse) error

	// UpdateStatus transitions a response's delivery status, reporting
	// whether a row was updated
	UpdateStatus(ctx context.Context, id core.ResponseID, status response.AutoResponseStatus) (bool, error)
}
