package ui

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"reliefreach/domain/core"
	"reliefreach/internal/container"
)

// App is the operator dashboard: a read-only HTML view over campaigns,
// experiments and response templates.
type App struct {
	router    *chi.Mux
	container *container.Container
	templates *template.Template
}

// NewApp creates the dashboard application
func NewApp(c *container.Container) (*App, error) {
	templates, err := template.New("dashboard").Parse(dashboardHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	if _, err := templates.New("preview").Parse(previewHTML); err != nil {
		return nil, fmt.Errorf("failed to parse preview template: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		container: c,
		templates: templates,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

// Router exposes the chi mux, mainly for tests
func (a *App) Router() *chi.Mux {
	return a.router
}

// Serve starts the dashboard on the given address
func (a *App) Serve(addr string) error {
	return http.ListenAndServe(addr, a.router)
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/templates/{id}/preview", a.handleTemplatePreview)
}

type dashboardData struct {
	CampaignCount  int
	ActiveTests    int
	CompletedTests int
	ResponseCount  int
	Campaigns      []dashboardCampaign
	Templates      []dashboardTemplate
}

type dashboardCampaign struct {
	ID     string
	Name   string
	Status string
}

type dashboardTemplate struct {
	ID   string
	Name string
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaigns, err := a.container.CampaignService.ListCampaigns(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	responses, err := a.container.ResponseService.ListResponses(ctx, "")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := dashboardData{
		CampaignCount: len(campaigns),
		ResponseCount: len(responses),
	}
	for _, c := range campaigns {
		data.Campaigns = append(data.Campaigns, dashboardCampaign{
			ID:     c.ID.String(),
			Name:   c.Name,
			Status: string(c.Status),
		})
	}
	for _, test := range a.container.ExperimentService.ActiveTests() {
		if test.Status == "running" {
			data.ActiveTests++
		} else {
			data.CompletedTests++
		}
	}
	for _, t := range a.container.ResponseService.Templates() {
		data.Templates = append(data.Templates, dashboardTemplate{
			ID:   t.ID.String(),
			Name: t.Name,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "dashboard", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type previewData struct {
	Name    string
	Subject string
	Body    template.HTML
}

// handleTemplatePreview renders a response template's body as Markdown so
// operators can see the message the way a candidate would.
func (a *App) handleTemplatePreview(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseTemplateID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t := a.container.ResponseService.Template(id)
	if t == nil {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}

	data := previewData{
		Name:    t.Name,
		Subject: t.Subject,
		Body:    renderMarkdown(t.Body),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "preview", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func renderMarkdown(body string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	doc := p.Parse([]byte(body))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML,
	})
	return template.HTML(markdown.Render(doc, renderer))
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head><title>ReliefReach Dashboard</title></head>
<body>
<h1>ReliefReach</h1>
<ul>
<li>Campaigns: {{.CampaignCount}}</li>
<li>Running experiments: {{.ActiveTests}}</li>
<li>Concluded experiments: {{.CompletedTests}}</li>
<li>Auto responses: {{.ResponseCount}}</li>
</ul>
<h2>Campaigns</h2>
<table border="1">
<tr><th>Name</th><th>Status</th><th>ID</th></tr>
{{range .Campaigns}}<tr><td>{{.Name}}</td><td>{{.Status}}</td><td>{{.ID}}</td></tr>
{{end}}</table>
<h2>Response Templates</h2>
<ul>
{{range .Templates}}<li><a href="/templates/{{.ID}}/preview">{{.Name}}</a></li>
{{end}}</ul>
</body>
</html>`

const previewHTML = `<!DOCTYPE html>
<html>
<head><title>{{.Name}} preview</title></head>
<body>
<h1>{{.Name}}</h1>
<p><strong>Subject:</strong> {{.Subject}}</p>
<hr>
{{.Body}}
</body>
</html>`
