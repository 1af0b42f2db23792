package memory

import (
	"context"
	"sync"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/experiment"
	"reliefreach/domain/response"
)

// Store is an in-memory implementation of the repository ports, used by the
// dashboard app, the demo CLI and tests. Slices keep insertion order; a
// single mutex serializes writers.
type Store struct {
	mu          sync.RWMutex
	campaigns   []*campaign.Campaign
	platforms   []campaign.Platform
	profiles    []*response.CandidateProfile
	responses   []*response.AutoResponse
	templates   []response.Template
	experiments []*experiment.Results
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{}
}

// List returns all campaigns in creation order
func (s *Store) List(ctx context.Context) ([]*campaign.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*campaign.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out, nil
}

// GetByID retrieves a campaign by id, nil when missing
func (s *Store) GetByID(ctx context.Context, id core.CampaignID) (*campaign.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// Save upserts a campaign
func (s *Store) Save(ctx context.Context, c *campaign.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.campaigns {
		if existing.ID == c.ID {
			s.campaigns[i] = c
			return nil
		}
	}
	s.campaigns = append(s.campaigns, c)
	return nil
}

// Delete removes a campaign, reporting whether a row was removed
func (s *Store) Delete(ctx context.Context, id core.CampaignID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.campaigns {
		if c.ID == id {
			s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListPlatforms returns all platforms, seeding the default registry on the
// first read.
func (s *Store) ListPlatforms(ctx context.Context) ([]campaign.Platform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.platforms) == 0 {
		s.platforms = campaign.DefaultPlatforms()
	}
	out := make([]campaign.Platform, len(s.platforms))
	copy(out, s.platforms)
	return out, nil
}

// UpdatePlatform upserts a platform configuration
func (s *Store) UpdatePlatform(ctx context.Context, p campaign.Platform) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.platforms {
		if existing.ID == p.ID {
			s.platforms[i] = p
			return nil
		}
	}
	s.platforms = append(s.platforms, p)
	return nil
}

// ListProfiles returns all stored candidate profiles
func (s *Store) ListProfiles(ctx context.Context) ([]*response.CandidateProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*response.CandidateProfile, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}

// ListProfilesByCampaign returns the profiles behind a campaign's auto
// responses.
func (s *Store) ListProfilesByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.CandidateProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*response.CandidateProfile
	for _, r := range s.responses {
		if r.CampaignID == campaignID {
			profile := r.Profile
			out = append(out, &profile)
		}
	}
	return out, nil
}

// GetProfile retrieves a profile by id, nil when missing
func (s *Store) GetProfile(ctx context.Context, id core.ProfileID) (*response.CandidateProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// SaveProfile upserts a candidate profile
func (s *Store) SaveProfile(ctx context.Context, p *response.CandidateProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.profiles {
		if existing.ID == p.ID {
			s.profiles[i] = p
			return nil
		}
	}
	s.profiles = append(s.profiles, p)
	return nil
}

// ListResponses returns all auto responses
func (s *Store) ListResponses(ctx context.Context) ([]*response.AutoResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*response.AutoResponse, len(s.responses))
	copy(out, s.responses)
	return out, nil
}

// ListResponsesByCampaign returns the auto responses generated for a campaign
func (s *Store) ListResponsesByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.AutoResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*response.AutoResponse
	for _, r := range s.responses {
		if r.CampaignID == campaignID {
			out = append(out, r)
		}
	}
	return out, nil
}

// SaveResponse appends a generated auto response
func (s *Store) SaveResponse(ctx context.Context, r *response.AutoResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses = append(s.responses, r)
	return nil
}

// UpdateResponseStatus transitions a response's delivery status
func (s *Store) UpdateResponseStatus(ctx context.Context, id core.ResponseID, status response.AutoResponseStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.responses {
		if r.ID == id {
			r.Status = status
			return true, nil
		}
	}
	return false, nil
}

// ListTemplates returns all stored response templates
func (s *Store) ListTemplates(ctx context.Context) ([]response.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]response.Template, len(s.templates))
	copy(out, s.templates)
	return out, nil
}

// SaveTemplate upserts a response template
func (s *Store) SaveTemplate(ctx context.Context, t response.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.templates {
		if existing.ID == t.ID {
			s.templates[i] = t
			return nil
		}
	}
	s.templates = append(s.templates, t)
	return nil
}

// DeleteTemplate removes a template, reporting whether a row was removed
func (s *Store) DeleteTemplate(ctx context.Context, id core.TemplateID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListExperiments returns all stored experiment snapshots
func (s *Store) ListExperiments(ctx context.Context) ([]*experiment.Results, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*experiment.Results, len(s.experiments))
	copy(out, s.experiments)
	return out, nil
}

// SaveExperiment upserts one experiment snapshot
func (s *Store) SaveExperiment(ctx context.Context, r *experiment.Results) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.experiments {
		if existing.ExperimentID == r.ExperimentID {
			s.experiments[i] = r
			return nil
		}
	}
	s.experiments = append(s.experiments, r)
	return nil
}
