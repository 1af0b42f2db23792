package app

import (
	"context"
	"fmt"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/response"
	"reliefreach/internal"
	"reliefreach/internal/responder"
	"reliefreach/ports"
)

// ResponseService scores incoming candidate profiles and issues auto
// responses through the responder engine.
type ResponseService struct {
	responder   *responder.Responder
	campaigns   ports.CampaignRepository
	profiles    ports.ProfileRepository
	responses   ports.ResponseRepository
	templates   ports.TemplateRepository
	autoRespond bool
	logger      *internal.Logger
}

// NewResponseService creates a response service. When autoRespond is false
// profiles are scored and stored but no responses are generated.
func NewResponseService(rsp *responder.Responder, campaigns ports.CampaignRepository, profiles ports.ProfileRepository, responses ports.ResponseRepository, templates ports.TemplateRepository, autoRespond bool, logger *internal.Logger) *ResponseService {
	return &ResponseService{
		responder:   rsp,
		campaigns:   campaigns,
		profiles:    profiles,
		responses:   responses,
		templates:   templates,
		autoRespond: autoRespond,
		logger:      logger,
	}
}

// ProcessProfileResult reports what happened to one submitted profile
type ProcessProfileResult struct {
	Profile  response.CandidateProfile `json:"profile"`
	Scores   response.Scores           `json:"scores"`
	Response *response.AutoResponse    `json:"auto_response,omitempty"`
}

// ProcessProfile stores a candidate profile, scores it, and generates an auto
// response when the selected template's triggers fire.
func (s *ResponseService) ProcessProfile(ctx context.Context, campaignID core.CampaignID, profile response.CandidateProfile) (*ProcessProfileResult, error) {
	if profile.ID == "" {
		profile.ID = core.ProfileID(core.NewID())
	}
	if err := s.profiles.Save(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	result := &ProcessProfileResult{
		Profile: profile,
		Scores:  responder.ScoreProfile(profile),
	}

	if !s.autoRespond {
		return result, nil
	}

	template := s.responder.SelectTemplate(profile)
	if !s.responder.ShouldAutoRespond(profile, template) {
		s.logger.Debug("no trigger fired for profile %s, skipping auto response", profile.ID)
		return result, nil
	}

	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	ar := s.responder.GenerateResponse(profile, campaignID, jobOf(c))
	if err := s.responses.Save(ctx, &ar); err != nil {
		return nil, fmt.Errorf("failed to save auto response: %w", err)
	}

	s.logger.Info("generated %s response for profile %s", ar.Template.Name, profile.ID)
	result.Response = &ar
	return result, nil
}

// ListResponses returns auto responses, optionally filtered by campaign
func (s *ResponseService) ListResponses(ctx context.Context, campaignID core.CampaignID) ([]*response.AutoResponse, error) {
	if campaignID == "" {
		return s.responses.List(ctx)
	}
	return s.responses.ListByCampaign(ctx, campaignID)
}

// ListProfiles returns candidate profiles, optionally filtered by campaign
func (s *ResponseService) ListProfiles(ctx context.Context, campaignID core.CampaignID) ([]*response.CandidateProfile, error) {
	if campaignID == "" {
		return s.profiles.List(ctx)
	}
	return s.profiles.ListByCampaign(ctx, campaignID)
}

// MarkSent transitions a pending response to sent
func (s *ResponseService) MarkSent(ctx context.Context, id core.ResponseID) (bool, error) {
	return s.responses.UpdateStatus(ctx, id, response.StatusSent)
}

// HydrateTemplates loads the stored template set into the registry. When
// storage is empty the registry defaults are persisted instead, so a fresh
// database starts from the standing copy.
func (s *ResponseService) HydrateTemplates(ctx context.Context) error {
	stored, err := s.templates.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	if len(stored) == 0 {
		for _, t := range s.responder.Templates() {
			if err := s.templates.Save(ctx, t); err != nil {
				return fmt.Errorf("failed to seed template %s: %w", t.ID, err)
			}
		}
		return nil
	}
	s.responder.ReplaceTemplates(stored)
	return nil
}

// Templates returns all registered response templates
func (s *ResponseService) Templates() []response.Template {
	return s.responder.Templates()
}

// Template retrieves one template by id, nil when missing
func (s *ResponseService) Template(id core.TemplateID) *response.Template {
	return s.responder.TemplateByID(id)
}

// CreateTemplate registers a new template under a fresh id and writes it
// through to durable storage
func (s *ResponseService) CreateTemplate(ctx context.Context, t response.Template) (response.Template, error) {
	created := s.responder.CreateTemplate(t)
	if err := s.templates.Save(ctx, created); err != nil {
		return response.Template{}, fmt.Errorf("failed to store template: %w", err)
	}
	s.logger.Info("created response template %s (%s)", created.Name, created.ID)
	return created, nil
}

// UpdateTemplate shallow-merges changes into a template, nil when missing
func (s *ResponseService) UpdateTemplate(ctx context.Context, id core.TemplateID, update response.TemplateUpdate) (*response.Template, error) {
	merged := s.responder.UpdateTemplate(id, update)
	if merged == nil {
		return nil, nil
	}
	if err := s.templates.Save(ctx, *merged); err != nil {
		return nil, fmt.Errorf("failed to store template: %w", err)
	}
	return merged, nil
}

// DeleteTemplate removes a template, reporting whether one existed
func (s *ResponseService) DeleteTemplate(ctx context.Context, id core.TemplateID) (bool, error) {
	removed := s.responder.DeleteTemplate(id)
	if _, err := s.templates.Delete(ctx, id); err != nil {
		return removed, fmt.Errorf("failed to delete stored template: %w", err)
	}
	return removed, nil
}

func jobOf(c *campaign.Campaign) *campaign.JobPosting {
	if c == nil {
		return nil
	}
	return c.Job
}
