package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/domain/experiment"
	"reliefreach/domain/response"
	"reliefreach/internal/container"
	"reliefreach/internal/testkit"
)

// Server is the JSON API server for campaign, experiment and response
// management.
type Server struct {
	router    *gin.Engine
	container *container.Container
}

// NewServer creates the API server over an initialized container
func NewServer(c *container.Container) *Server {
	if c.Config.Server.GinMode != "" {
		gin.SetMode(c.Config.Server.GinMode)
	}

	s := &Server{
		router:    gin.Default(),
		container: c,
	}
	s.setupRoutes()
	return s
}

// Router exposes the underlying gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/campaigns", s.handleListCampaigns)
		api.POST("/campaigns", s.handleCreateCampaign)
		api.GET("/campaigns/:id", s.handleGetCampaign)
		api.PUT("/campaigns/:id", s.handleUpdateCampaign)
		api.DELETE("/campaigns/:id", s.handleDeleteCampaign)
		api.POST("/campaigns/:id/activate", s.handleActivateCampaign)
		api.GET("/campaigns/:id/analytics", s.handleCampaignAnalytics)

		api.GET("/platforms", s.handleListPlatforms)
		api.PUT("/platforms/:name", s.handleUpdatePlatform)

		api.GET("/experiments", s.handleActiveTests)
		api.GET("/experiments/history", s.handleExperimentHistory)
		api.POST("/experiments", s.handleStartExperiment)
		api.GET("/experiments/:id", s.handleExperimentResults)
		api.POST("/experiments/:id/metrics", s.handleRecordMetric)
		api.POST("/experiments/:id/evaluate", s.handleEvaluate)
		api.POST("/experiments/:id/stop", s.handleStopExperiment)
		api.POST("/experiments/:id/apply-winner", s.handleApplyWinner)
		api.GET("/experiments/:id/export", s.handleExportExperiment)

		api.GET("/responses", s.handleListResponses)
		api.POST("/responses", s.handleProcessProfile)
		api.POST("/responses/:id/sent", s.handleMarkSent)

		api.GET("/profiles", s.handleListProfiles)

		api.GET("/templates", s.handleListTemplates)
		api.POST("/templates", s.handleCreateTemplate)
		api.GET("/templates/:id", s.handleGetTemplate)
		api.PUT("/templates/:id", s.handleUpdateTemplate)
		api.DELETE("/templates/:id", s.handleDeleteTemplate)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// jsonError maps a service error to a status code. Qualified not-found
// errors become 404; everything else reports an internal failure.
func jsonError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if core.IsNotFoundError(err) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// --- campaigns ---

func (s *Server) handleListCampaigns(c *gin.Context) {
	campaigns, err := s.container.CampaignService.ListCampaigns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if campaigns == nil {
		campaigns = []*campaign.Campaign{}
	}
	c.JSON(http.StatusOK, campaigns)
}

// createCampaignBody mirrors the service request with JSON tags
type createCampaignBody struct {
	Name           string                  `json:"name" binding:"required"`
	Description    string                  `json:"description"`
	Prompt         string                  `json:"prompt"`
	MediaType      campaign.MediaType      `json:"media_type"`
	Platforms      []string                `json:"platforms"`
	VariationCount int                     `json:"variation_count"`
	TargetAudience campaign.TargetAudience `json:"target_audience"`
	Job            *campaign.JobPosting    `json:"job_posting"`
}

func (s *Server) handleCreateCampaign(c *gin.Context) {
	var body createCampaignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.container.CampaignService.CreateCampaign(c.Request.Context(), appCreateRequest(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetCampaign(c *gin.Context) {
	id, err := core.ParseCampaignID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := s.container.CampaignService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return
	}
	c.JSON(http.StatusOK, found)
}

func (s *Server) handleUpdateCampaign(c *gin.Context) {
	id, err := core.ParseCampaignID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body campaign.Campaign
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.ID = id

	if err := s.container.CampaignService.UpdateCampaign(c.Request.Context(), &body); err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleDeleteCampaign(c *gin.Context) {
	id, err := core.ParseCampaignID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := s.container.CampaignService.DeleteCampaign(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleActivateCampaign(c *gin.Context) {
	id, err := core.ParseCampaignID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activated, err := s.container.CampaignService.ActivateCampaign(c.Request.Context(), id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, activated)
}

// campaignAnalyticsView pairs raw analytics with reach and engagement
// roll-ups over the time series
type campaignAnalyticsView struct {
	CampaignID core.CampaignID            `json:"campaign_id"`
	Analytics  campaign.Analytics         `json:"analytics"`
	Reach      *testkit.TimeSeriesSummary `json:"reach_summary,omitempty"`
	Engagement *testkit.TimeSeriesSummary `json:"engagement_summary,omitempty"`
}

func (s *Server) handleCampaignAnalytics(c *gin.Context) {
	id, err := core.ParseCampaignID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := s.container.CampaignService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return
	}

	view := campaignAnalyticsView{CampaignID: found.ID, Analytics: found.Analytics}
	if len(found.Analytics.TimeSeries) > 0 {
		if reach, err := testkit.SummarizeReach(found.Analytics.TimeSeries); err == nil {
			view.Reach = &reach
		}
		if engagement, err := testkit.SummarizeEngagement(found.Analytics.TimeSeries); err == nil {
			view.Engagement = &engagement
		}
	}
	c.JSON(http.StatusOK, view)
}

// --- platforms ---

func (s *Server) handleListPlatforms(c *gin.Context) {
	platforms, err := s.container.CampaignService.ListPlatforms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, platforms)
}

func (s *Server) handleUpdatePlatform(c *gin.Context) {
	var body campaign.Platform
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Name = campaign.PlatformName(c.Param("name"))
	if body.ID == "" {
		body.ID = c.Param("name")
	}

	if err := s.container.CampaignService.UpdatePlatform(c.Request.Context(), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, body)
}

// --- experiments ---

type startExperimentBody struct {
	CampaignID    string               `json:"campaign_id" binding:"required"`
	DurationHours int                  `json:"test_duration"`
	Criterion     experiment.Criterion `json:"winner_criteria"`
}

func (s *Server) handleStartExperiment(c *gin.Context) {
	var body startExperimentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaignID, err := core.ParseCampaignID(body.CampaignID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.container.ExperimentService.StartExperiment(c.Request.Context(), appStartRequest(campaignID, body))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"test_id": id})
}

func (s *Server) handleActiveTests(c *gin.Context) {
	tests := s.container.ExperimentService.ActiveTests()
	if tests == nil {
		tests = []*experiment.Results{}
	}
	c.JSON(http.StatusOK, tests)
}

func (s *Server) handleExperimentHistory(c *gin.Context) {
	history, err := s.container.ExperimentService.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if history == nil {
		history = []*experiment.Results{}
	}
	c.JSON(http.StatusOK, history)
}

func (s *Server) handleExperimentResults(c *gin.Context) {
	results := s.experimentByParam(c)
	if results == nil {
		return
	}
	c.JSON(http.StatusOK, results)
}

type recordMetricBody struct {
	VariantID string            `json:"variation_id" binding:"required"`
	Metric    experiment.Metric `json:"metric" binding:"required"`
	Delta     int64             `json:"value"`
}

func (s *Server) handleRecordMetric(c *gin.Context) {
	id, err := core.ParseExperimentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body recordMetricBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Delta == 0 {
		body.Delta = 1
	}

	s.container.ExperimentService.RecordMetric(id, core.VariantID(body.VariantID), body.Metric, body.Delta)
	c.Status(http.StatusAccepted)
}

func (s *Server) handleEvaluate(c *gin.Context) {
	id, err := core.ParseExperimentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.ExperimentService.Evaluate(id)

	results := s.container.ExperimentService.Results(id)
	if results == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "experiment not found"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) handleStopExperiment(c *gin.Context) {
	id, err := core.ParseExperimentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !s.container.ExperimentService.StopExperiment(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "experiment not found"})
		return
	}
	c.JSON(http.StatusOK, s.container.ExperimentService.Results(id))
}

func (s *Server) handleApplyWinner(c *gin.Context) {
	id, err := core.ParseExperimentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.container.ExperimentService.ApplyWinner(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) experimentByParam(c *gin.Context) *experiment.Results {
	id, err := core.ParseExperimentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}
	results := s.container.ExperimentService.Results(id)
	if results == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "experiment not found"})
		return nil
	}
	return results
}

// --- responses ---

type processProfileBody struct {
	CampaignID string                    `json:"campaign_id"`
	Profile    response.CandidateProfile `json:"profile" binding:"required"`
}

func (s *Server) handleProcessProfile(c *gin.Context) {
	var body processProfileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.container.ResponseService.ProcessProfile(c.Request.Context(), core.CampaignID(body.CampaignID), body.Profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) handleListResponses(c *gin.Context) {
	campaignID := core.CampaignID(c.Query("campaign_id"))
	responses, err := s.container.ResponseService.ListResponses(c.Request.Context(), campaignID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if responses == nil {
		responses = []*response.AutoResponse{}
	}
	c.JSON(http.StatusOK, responses)
}

func (s *Server) handleListProfiles(c *gin.Context) {
	campaignID := core.CampaignID(c.Query("campaign_id"))
	profiles, err := s.container.ResponseService.ListProfiles(c.Request.Context(), campaignID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profiles == nil {
		profiles = []*response.CandidateProfile{}
	}
	c.JSON(http.StatusOK, profiles)
}

func (s *Server) handleMarkSent(c *gin.Context) {
	updated, err := s.container.ResponseService.MarkSent(c.Request.Context(), core.ResponseID(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "response not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --- templates ---

func (s *Server) handleListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, s.container.ResponseService.Templates())
}

func (s *Server) handleGetTemplate(c *gin.Context) {
	id, err := core.ParseTemplateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := s.container.ResponseService.Template(id)
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleCreateTemplate(c *gin.Context) {
	var body response.Template
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.container.ResponseService.CreateTemplate(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateTemplate(c *gin.Context) {
	id, err := core.ParseTemplateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body response.TemplateUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.container.ResponseService.UpdateTemplate(c.Request.Context(), id, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteTemplate(c *gin.Context) {
	id, err := core.ParseTemplateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	removed, err := s.container.ResponseService.DeleteTemplate(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
