package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"reliefreach/adapters/memory"
	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/response"
	"reliefreach/internal"
	"reliefreach/internal/responder"
)

func newResponseFixture(t *testing.T, autoRespond bool) (*ResponseService, *memory.Store, core.CampaignID) {
	t.Helper()
	store := memory.NewStore()
	logger := internal.NewLogger(internal.LogLevelError)

	hourly := 35.0
	c := &campaign.Campaign{
		ID:        core.CampaignID(core.NewID()),
		Name:      "Hurricane Relief Staffing",
		Status:    campaign.StatusActive,
		CreatedAt: core.Now(),
		Job: &campaign.JobPosting{
			Title:             "Cleanup Crew Member",
			Requirements:      []string{"Physical fitness"},
			EstimatedDuration: "3 months",
			Compensation: &campaign.Compensation{
				Type:     campaign.CompensationHourly,
				Amount:   &hourly,
				Currency: "USD",
			},
			Contact: &campaign.ContactInfo{Name: "Ana Torres", Email: "ana@relief.org"},
		},
	}
	if err := store.Campaigns().Save(context.Background(), c); err != nil {
		t.Fatalf("save campaign: %v", err)
	}

	svc := NewResponseService(responder.NewResponder(), store.Campaigns(), store.Profiles(), store.Responses(), store.Templates(), autoRespond, logger)
	return svc, store, c.ID
}

func strongProfile() response.CandidateProfile {
	return response.CandidateProfile{
		Name:     "Marcus Webb",
		Email:    "marcus@example.com",
		Location: "Tampa, FL",
		Skills:   []string{"debris removal", "chainsaw operation", "first aid", "logistics", "heavy equipment", "roofing"},
		Availability: response.Availability{
			Immediate: true,
		},
		Verified: true,
	}
}

func TestProcessProfileGeneratesResponse(t *testing.T) {
	svc, store, campaignID := newResponseFixture(t, true)
	ctx := context.Background()

	result, err := svc.ProcessProfile(ctx, campaignID, strongProfile())
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.Profile.ID, "profile should receive an id")
	assert.Equal(t, 1.0, result.Scores.Skill)
	assert.NotNil(t, result.Response, "strong profile should trigger a response")
	assert.Equal(t, response.StatusPending, result.Response.Status)
	assert.Contains(t, result.Response.Message, "Marcus Webb")
	assert.Contains(t, result.Response.Message, "35 USD per hourly")

	stored, err := store.Responses().ListByCampaign(ctx, campaignID)
	assert.NoError(t, err)
	assert.Len(t, stored, 1, "response should be persisted")
}

func TestProcessProfileAutoRespondDisabled(t *testing.T) {
	svc, store, campaignID := newResponseFixture(t, false)
	ctx := context.Background()

	result, err := svc.ProcessProfile(ctx, campaignID, strongProfile())
	assert.NoError(t, err)
	assert.Nil(t, result.Response, "auto respond disabled should not generate")
	assert.Greater(t, result.Scores.Overall, 0.8, "scoring still happens")

	profiles, err := store.Profiles().List(ctx)
	assert.NoError(t, err)
	assert.Len(t, profiles, 1, "profile is stored regardless")
}

func TestProcessProfileWeakCandidateSkipped(t *testing.T) {
	svc, store, campaignID := newResponseFixture(t, true)
	ctx := context.Background()

	weak := response.CandidateProfile{
		Name:         "Dale Hutchins",
		Location:     "Boise, ID",
		Skills:       nil,
		Availability: response.Availability{Immediate: false},
	}
	result, err := svc.ProcessProfile(ctx, campaignID, weak)
	assert.NoError(t, err)
	assert.Nil(t, result.Response, "weak profile should not fire any trigger")

	stored, err := store.Responses().List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMarkSent(t *testing.T) {
	svc, _, campaignID := newResponseFixture(t, true)
	ctx := context.Background()

	result, err := svc.ProcessProfile(ctx, campaignID, strongProfile())
	assert.NoError(t, err)
	assert.NotNil(t, result.Response)

	updated, err := svc.MarkSent(ctx, result.Response.ID)
	assert.NoError(t, err)
	assert.True(t, updated)

	missing, err := svc.MarkSent(ctx, core.ResponseID(core.NewID()))
	assert.NoError(t, err)
	assert.False(t, missing, "unknown id reports false")
}

func TestTemplatePassthrough(t *testing.T) {
	svc, _, _ := newResponseFixture(t, true)
	ctx := context.Background()

	assert.Len(t, svc.Templates(), 3, "three built-in templates")

	created, err := svc.CreateTemplate(ctx, response.Template{
		Name:      "Weekend Shift Offer",
		Subject:   "Weekend shifts available",
		Body:      "Hi {{name}}, weekend shifts are open.",
		Variables: []string{"name"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, svc.Templates(), 4)

	newName := "Weekend Shift Offer v2"
	updated, err := svc.UpdateTemplate(ctx, created.ID, response.TemplateUpdate{Name: &newName})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, newName, updated.Name)

	removed, err := svc.DeleteTemplate(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, removed)
	removed, err = svc.DeleteTemplate(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, removed, "second delete is a no-op")
}

func TestTemplateEditsSurviveRehydration(t *testing.T) {
	svc, store, _ := newResponseFixture(t, true)
	ctx := context.Background()

	assert.NoError(t, svc.HydrateTemplates(ctx), "empty storage seeds the defaults")
	stored, err := store.Templates().List(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 3, "defaults are persisted on first start")

	created, err := svc.CreateTemplate(ctx, response.Template{
		Name:      "Night Shift Offer",
		Subject:   "Night shifts available",
		Body:      "Hi {{name}}, night shifts are open.",
		Variables: []string{"name"},
	})
	assert.NoError(t, err)

	newBody := "Hi {{name}}, night and weekend shifts are open."
	_, err = svc.UpdateTemplate(ctx, created.ID, response.TemplateUpdate{Body: &newBody})
	assert.NoError(t, err)

	// a second service over the same storage sees the edits
	logger := internal.NewLogger(internal.LogLevelError)
	restarted := NewResponseService(responder.NewResponder(), store.Campaigns(), store.Profiles(), store.Responses(), store.Templates(), true, logger)
	assert.NoError(t, restarted.HydrateTemplates(ctx))

	assert.Len(t, restarted.Templates(), 4)
	reloaded := restarted.Template(created.ID)
	assert.NotNil(t, reloaded)
	assert.Equal(t, newBody, reloaded.Body)

	removed, err := restarted.DeleteTemplate(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, removed)
	stored, err = store.Templates().List(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 3, "delete reaches storage")
}
