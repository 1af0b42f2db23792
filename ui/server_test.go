package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reliefreach/domain/experiment"
	"reliefreach/internal/config"
	"reliefreach/internal/container"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{URL: "unused"},
		Server:   config.ServerConfig{Port: "0", GinMode: "test"},
		Content:  config.ContentConfig{Seed: 7, MaxVariations: 4},
		Engine:   config.EngineConfig{DefaultTestDurationHours: 24, AutoRespondEnabled: true},
	}
	c, err := container.New(cfg)
	if err != nil {
		t.Fatalf("container.New: %v", err)
	}
	if err := c.InitInMemory(); err != nil {
		t.Fatalf("InitInMemory: %v", err)
	}
	return NewServer(c)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCampaignLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/campaigns", map[string]any{
		"name":            "Wildfire Relief Recruiting",
		"prompt":          "Wildfire recovery crews needed",
		"platforms":       []string{"facebook", "twitter"},
		"variation_count": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Content struct {
			Variations []struct {
				ID string `json:"id"`
			} `json:"variations"`
		} `json:"content"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Status != "draft" {
		t.Errorf("new campaign status = %s, want draft", created.Status)
	}
	if len(created.Content.Variations) != 2 {
		t.Fatalf("got %d variations, want 2", len(created.Content.Variations))
	}

	w = doJSON(t, s, http.MethodPost, "/api/campaigns/"+created.ID+"/activate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("activate status = %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/campaigns/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(t, s, http.MethodDelete, "/api/campaigns/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, s, http.MethodDelete, "/api/campaigns/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}

	// updates against the deleted campaign report not-found, not a server error
	w = doJSON(t, s, http.MethodPut, "/api/campaigns/"+created.ID, map[string]any{
		"name": "Renamed Campaign",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("update after delete status = %d, want 404", w.Code)
	}
	w = doJSON(t, s, http.MethodPost, "/api/campaigns/"+created.ID+"/activate", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("activate after delete status = %d, want 404", w.Code)
	}
}

func TestCampaignAnalyticsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/campaigns", map[string]any{
		"name":   "Tornado Relief Recruiting",
		"prompt": "Tornado recovery crews needed",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create campaign: %d", w.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, s, http.MethodPost, "/api/campaigns/"+created.ID+"/activate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("activate: %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/campaigns/"+created.ID+"/analytics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("analytics: %d, body %s", w.Code, w.Body.String())
	}
	var view struct {
		Analytics struct {
			TimeSeries []map[string]any `json:"time_series_data"`
		} `json:"analytics"`
		Reach *struct {
			Mean float64 `json:"mean"`
			Max  float64 `json:"max"`
		} `json:"reach_summary"`
		Engagement *struct {
			Mean float64 `json:"mean"`
		} `json:"engagement_summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode analytics: %v", err)
	}
	if len(view.Analytics.TimeSeries) == 0 {
		t.Fatal("active campaign should carry a synthesized time series")
	}
	if view.Reach == nil || view.Reach.Mean <= 0 {
		t.Error("expected a reach summary over the time series")
	}
	if view.Engagement == nil || view.Engagement.Mean <= 0 {
		t.Error("expected an engagement summary over the time series")
	}

	w = doJSON(t, s, http.MethodGet, "/api/campaigns/"+created.ID+"/analytics", nil)
	var again struct {
		Reach *struct {
			Mean float64 `json:"mean"`
		} `json:"reach_summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &again); err != nil {
		t.Fatalf("decode analytics: %v", err)
	}
	if again.Reach == nil || again.Reach.Mean != view.Reach.Mean {
		t.Error("repeated reads of one campaign should agree")
	}
}

func TestExperimentFlow(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/campaigns", map[string]any{
		"name":            "Earthquake Relief Recruiting",
		"prompt":          "Earthquake response teams needed",
		"variation_count": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create campaign: %d", w.Code)
	}
	var created struct {
		ID      string `json:"id"`
		Content struct {
			Variations []struct {
				ID string `json:"id"`
			} `json:"variations"`
		} `json:"content"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, s, http.MethodPost, "/api/experiments", map[string]any{
		"campaign_id":     created.ID,
		"winner_criteria": "clicks",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("start experiment: %d, body %s", w.Code, w.Body.String())
	}
	var started struct {
		TestID string `json:"test_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Drive both variants past the minimum sample size
	for i, v := range created.Content.Variations {
		clicks := int64(40)
		if i == 1 {
			clicks = 5
		}
		w = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/experiments/%s/metrics", started.TestID), map[string]any{
			"variation_id": v.ID,
			"metric":       "impressions",
			"value":        100,
		})
		if w.Code != http.StatusAccepted {
			t.Fatalf("record impressions: %d", w.Code)
		}
		w = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/experiments/%s/metrics", started.TestID), map[string]any{
			"variation_id": v.ID,
			"metric":       "clicks",
			"value":        clicks,
		})
		if w.Code != http.StatusAccepted {
			t.Fatalf("record clicks: %d", w.Code)
		}
	}

	w = doJSON(t, s, http.MethodGet, "/api/experiments/"+started.TestID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("results: %d", w.Code)
	}
	var results experiment.Results
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if results.Status != experiment.StatusCompleted {
		t.Errorf("status = %s, want completed", results.Status)
	}
	if results.Winner == nil || string(results.Winner.ID) != created.Content.Variations[0].ID {
		t.Error("expected first variation to win on clicks")
	}

	w = doJSON(t, s, http.MethodGet, "/api/experiments/history", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history: %d", w.Code)
	}
	var history []experiment.Results
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d history entries, want 1", len(history))
	}
	if history[0].Status != experiment.StatusCompleted {
		t.Errorf("stored snapshot status = %s, want completed", history[0].Status)
	}

	w = doJSON(t, s, http.MethodGet, "/api/experiments/"+started.TestID+"/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("export content type = %s", ct)
	}
}

func TestProcessProfileEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/responses", map[string]any{
		"profile": map[string]any{
			"name":     "Marcus Webb",
			"email":    "marcus@example.com",
			"location": "Tampa, FL",
			"skills":   []string{"debris removal", "chainsaw operation", "first aid", "logistics", "heavy equipment", "roofing"},
			"availability": map[string]any{
				"immediate": true,
			},
			"verified": true,
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("process profile: %d, body %s", w.Code, w.Body.String())
	}

	var result struct {
		Scores struct {
			Overall float64 `json:"overall_score"`
		} `json:"scores"`
		Response *struct {
			Status string `json:"status"`
		} `json:"auto_response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Scores.Overall != 1.0 {
		t.Errorf("overall = %f, want capped 1.0", result.Scores.Overall)
	}
	if result.Response == nil || result.Response.Status != "pending" {
		t.Error("expected pending auto response")
	}

	w = doJSON(t, s, http.MethodGet, "/api/responses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list responses: %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/profiles", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list profiles: %d", w.Code)
	}
	var profiles []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &profiles); err != nil {
		t.Fatalf("decode profiles: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("got %d profiles, want 1", len(profiles))
	}
}

func TestTemplateEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/templates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list templates: %d", w.Code)
	}
	var templates []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &templates); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("got %d templates, want 3", len(templates))
	}

	w = doJSON(t, s, http.MethodPut, "/api/templates/urgent_response", map[string]any{
		"name": "Urgent Response v2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update template: %d", w.Code)
	}

	w = doJSON(t, s, http.MethodDelete, "/api/templates/urgent_response", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete template: %d", w.Code)
	}
	w = doJSON(t, s, http.MethodDelete, "/api/templates/urgent_response", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: %d, want 404", w.Code)
	}
}
