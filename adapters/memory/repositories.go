package memory

import (
	"context"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/experiment"
	"reliefreach/domain/response"
	"reliefreach/ports"
)

// Campaigns returns the store's campaign repository view
func (s *Store) Campaigns() ports.CampaignRepository { return s }

// Platforms returns the store's platform repository view
func (s *Store) Platforms() ports.PlatformRepository { return platformRepo{s} }

// Profiles returns the store's candidate profile repository view
func (s *Store) Profiles() ports.ProfileRepository { return profileRepo{s} }

// Responses returns the store's auto-response repository view
func (s *Store) Responses() ports.ResponseRepository { return responseRepo{s} }

// Templates returns the store's response template repository view
func (s *Store) Templates() ports.TemplateRepository { return templateRepo{s} }

// Experiments returns the store's experiment snapshot repository view
func (s *Store) Experiments() ports.ExperimentRepository { return experimentRepo{s} }

type platformRepo struct{ s *Store }

func (r platformRepo) List(ctx context.Context) ([]campaign.Platform, error) {
	return r.s.ListPlatforms(ctx)
}

func (r platformRepo) Update(ctx context.Context, p campaign.Platform) error {
	return r.s.UpdatePlatform(ctx, p)
}

type profileRepo struct{ s *Store }

func (r profileRepo) List(ctx context.Context) ([]*response.CandidateProfile, error) {
	return r.s.ListProfiles(ctx)
}

func (r profileRepo) ListByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.CandidateProfile, error) {
	return r.s.ListProfilesByCampaign(ctx, campaignID)
}

func (r profileRepo) GetByID(ctx context.Context, id core.ProfileID) (*response.CandidateProfile, error) {
	return r.s.GetProfile(ctx, id)
}

func (r profileRepo) Save(ctx context.Context, p *response.CandidateProfile) error {
	return r.s.SaveProfile(ctx, p)
}

type responseRepo struct{ s *Store }

func (r responseRepo) List(ctx context.Context) ([]*response.AutoResponse, error) {
	return r.s.ListResponses(ctx)
}

func (r responseRepo) ListByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.AutoResponse, error) {
	return r.s.ListResponsesByCampaign(ctx, campaignID)
}

func (r responseRepo) Save(ctx context.Context, ar *response.AutoResponse) error {
	return r.s.SaveResponse(ctx, ar)
}

func (r responseRepo) UpdateStatus(ctx context.Context, id core.ResponseID, status response.AutoResponseStatus) (bool, error) {
	return r.s.UpdateResponseStatus(ctx, id, status)
}

type templateRepo struct{ s *Store }

func (r templateRepo) List(ctx context.Context) ([]response.Template, error) {
	return r.s.ListTemplates(ctx)
}

func (r templateRepo) Save(ctx context.Context, t response.Template) error {
	return r.s.SaveTemplate(ctx, t)
}

func (r templateRepo) Delete(ctx context.Context, id core.TemplateID) (bool, error) {
	return r.s.DeleteTemplate(ctx, id)
}

type experimentRepo struct{ s *Store }

func (r experimentRepo) List(ctx context.Context) ([]*experiment.Results, error) {
	return r.s.ListExperiments(ctx)
}

func (r experimentRepo) Save(ctx context.Context, res *experiment.Results) error {
	return r.s.SaveExperiment(ctx, res)
}
