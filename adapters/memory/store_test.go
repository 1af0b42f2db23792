package memory

import (
	"context"
	"testing"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/response"
)

func TestCampaignCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	c := &campaign.Campaign{ID: "camp-1", Name: "Hurricane Relief", Status: campaign.StatusDraft}
	if err := store.Save(ctx, c); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "camp-1")
	if err != nil || got == nil || got.Name != "Hurricane Relief" {
		t.Fatalf("expected saved campaign, got %+v err %v", got, err)
	}

	if missing, _ := store.GetByID(ctx, "nope"); missing != nil {
		t.Error("unknown id should return nil, not an error")
	}

	c2 := &campaign.Campaign{ID: "camp-1", Name: "Hurricane Relief v2"}
	store.Save(ctx, c2)
	all, _ := store.List(ctx)
	if len(all) != 1 || all[0].Name != "Hurricane Relief v2" {
		t.Errorf("save should upsert in place, got %+v", all)
	}

	removed, _ := store.Delete(ctx, "camp-1")
	if !removed {
		t.Error("expected delete to report removal")
	}
	removed, _ = store.Delete(ctx, "camp-1")
	if removed {
		t.Error("delete is idempotent and should report false on repeat")
	}
}

func TestPlatforms_SeededOnFirstRead(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	platforms, err := store.ListPlatforms(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(platforms) != 5 {
		t.Fatalf("expected 5 default platforms, got %d", len(platforms))
	}
	for _, p := range platforms {
		if p.Enabled {
			t.Errorf("platform %s should start disabled", p.ID)
		}
	}

	linkedin := platforms[3]
	if linkedin.Settings.Hashtags != campaign.HashtagCustom {
		t.Errorf("linkedin should default to custom hashtags, got %s", linkedin.Settings.Hashtags)
	}

	linkedin.Enabled = true
	store.UpdatePlatform(ctx, linkedin)
	again, _ := store.ListPlatforms(ctx)
	if !again[3].Enabled {
		t.Error("platform update did not persist")
	}
}

func TestResponses_FilterByCampaign(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	p := response.CandidateProfile{ID: "prof-1", Name: "Sam"}
	store.SaveResponse(ctx, &response.AutoResponse{ID: "r-1", CampaignID: "camp-1", Profile: p})
	store.SaveResponse(ctx, &response.AutoResponse{ID: "r-2", CampaignID: "camp-2", Profile: p})

	forCamp, _ := store.ListResponsesByCampaign(ctx, "camp-1")
	if len(forCamp) != 1 || forCamp[0].ID != "r-1" {
		t.Fatalf("expected one response for camp-1, got %+v", forCamp)
	}

	profiles, _ := store.ListProfilesByCampaign(ctx, "camp-1")
	if len(profiles) != 1 || profiles[0].ID != "prof-1" {
		t.Errorf("expected the respondent profile for camp-1, got %+v", profiles)
	}

	updated, _ := store.UpdateResponseStatus(ctx, "r-1", response.StatusSent)
	if !updated {
		t.Fatal("expected status update to land")
	}
	all, _ := store.ListResponses(ctx)
	if all[0].Status != response.StatusSent {
		t.Errorf("expected sent status, got %s", all[0].Status)
	}

	updated, _ = store.UpdateResponseStatus(ctx, core.ResponseID("missing"), response.StatusSent)
	if updated {
		t.Error("unknown response id should report false")
	}
}
