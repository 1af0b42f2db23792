package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reliefreach/internal/config"
	"reliefreach/internal/container"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{URL: "unused"},
		Server:   config.ServerConfig{Port: "0"},
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
	app, err := NewApp(c)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func TestDashboardRenders(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "ReliefReach") {
		t.Error("dashboard missing title")
	}
	if !strings.Contains(body, "Urgent Disaster Response") {
		t.Error("dashboard should list built-in templates")
	}
}

func TestTemplatePreviewRendersMarkdown(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/templates/urgent_response/preview", nil)
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<p>") {
		t.Error("preview should contain rendered markdown paragraphs")
	}
	if !strings.Contains(body, "{{name}}") {
		t.Error("placeholders should survive the preview untouched")
	}
}

func TestTemplatePreviewUnknown(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/templates/nope/preview", nil)
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
