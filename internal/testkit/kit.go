package testkit

import (
	"context"
	"time"

	"reliefreach/adapters/memory"
	"reliefreach/adapters/rng"
	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/response"
	"reliefreach/ports"
)

// TestKit provides demo fixtures and in-memory adapters for development
// runs and tests.
type TestKit struct {
	store *memory.Store
	seed  int64
}

// NewTestKit creates a test kit backed by a fresh in-memory store
func NewTestKit(seed int64) *TestKit {
	return &TestKit{
		store: memory.NewStore(),
		seed:  seed,
	}
}

// Store returns the shared in-memory store
func (t *TestKit) Store() *memory.Store {
	return t.store
}

// RNGAdapter returns a deterministic RNG source
func (t *TestKit) RNGAdapter() ports.RNGPort {
	return rng.NewSource(t.seed)
}

// SeedDemoData loads a demo campaign and candidate pool into the store
func (t *TestKit) SeedDemoData(ctx context.Context) (*campaign.Campaign, []*response.CandidateProfile, error) {
	demo := DemoCampaign()
	if err := t.store.Campaigns().Save(ctx, demo); err != nil {
		return nil, nil, err
	}

	profiles := DemoProfiles()
	for _, p := range profiles {
		if err := t.store.Profiles().Save(ctx, p); err != nil {
			return nil, nil, err
		}
	}
	return demo, profiles, nil
}

// DemoCampaign returns a hurricane relief recruitment campaign fixture
func DemoCampaign() *campaign.Campaign {
	hourly := 35.0
	return &campaign.Campaign{
		ID:        core.CampaignID(core.NewID()),
		Name:      "Hurricane Milton Relief Staffing",
		Status:    campaign.StatusActive,
		CreatedAt: core.Now(),
		Platforms: campaign.DefaultPlatforms(),
		Content: campaign.ContentPlan{
			Prompt:    "Hurricane cleanup and rebuild crews needed in Tampa Bay",
			MediaType: campaign.MediaImage,
		},
		TargetAudience: campaign.TargetAudience{
			Location: "Tampa, FL",
			Demographics: campaign.Demographics{
				AgeRange:  [2]int{18, 65},
				Interests: []string{"volunteering", "construction", "community service"},
			},
			Disaster: campaign.DisasterType{
				Kind:          campaign.DisasterHurricane,
				Description:   "Category 3 hurricane landfall, widespread flooding",
				AffectedAreas: []string{"Tampa", "St. Petersburg", "Clearwater"},
				EstimatedDays: 90,
			},
			Urgency: campaign.UrgencyCritical,
		},
		Job: &campaign.JobPosting{
			ID:                core.NewID(),
			Title:             "Disaster Cleanup Crew Member",
			Description:       "Debris removal and structural cleanup in affected neighborhoods",
			Requirements:      []string{"Physical fitness", "Ability to work outdoors"},
			Location:          "Tampa, FL",
			Urgency:           campaign.UrgencyCritical,
			EstimatedDuration: "3 months",
			Compensation: &campaign.Compensation{
				Type:     campaign.CompensationHourly,
				Amount:   &hourly,
				Currency: "USD",
			},
			Contact: &campaign.ContactInfo{
				Name:         "Ana Torres",
				Email:        "ana@relief.org",
				Organization: "Gulf Coast Relief Network",
			},
			Skills: []string{"debris removal", "chainsaw operation", "first aid"},
		},
	}
}

// DemoProfiles returns a small candidate pool spanning the scoring bands
func DemoProfiles() []*response.CandidateProfile {
	rating := 4.6
	return []*response.CandidateProfile{
		{
			ID:       core.ProfileID(core.NewID()),
			Name:     "Marcus Webb",
			Email:    "marcus.webb@example.com",
			Location: "Tampa, FL",
			Skills:   []string{"debris removal", "chainsaw operation", "first aid", "logistics", "heavy equipment", "roofing"},
			Availability: response.Availability{
				Immediate: true,
			},
			Verified:           true,
			Rating:             &rating,
			PreviousExperience: []string{"Hurricane Ian cleanup 2022", "Red Cross volunteer"},
		},
		{
			ID:       core.ProfileID(core.NewID()),
			Name:     "Priya Natarajan",
			Email:    "priya.n@example.com",
			Location: "Orlando, FL",
			Skills:   []string{"first aid", "logistics", "translation"},
			Availability: response.Availability{
				Immediate: true,
			},
			Verified: false,
		},
		{
			ID:       core.ProfileID(core.NewID()),
			Name:     "Dale Hutchins",
			Email:    "dale.h@example.com",
			Location: "Boise, ID",
			Skills:   []string{"carpentry"},
			Availability: response.Availability{
				Immediate: false,
				StartDate: timestampPtr(time.Now().AddDate(0, 1, 0)),
			},
			Verified: false,
		},
	}
}

func timestampPtr(t time.Time) *core.Timestamp {
	ts := core.NewTimestamp(t)
	return &ts
}
