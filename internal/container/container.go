package container

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"

	"reliefreach/adapters/content/heuristic"
	"reliefreach/adapters/postgres"
	"reliefreach/adapters/rng"
	"reliefreach/app"
	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/internal"
	"reliefreach/internal/abtest"
	"reliefreach/internal/config"
	"reliefreach/internal/responder"
	"reliefreach/internal/testkit"
	"reliefreach/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	CampaignRepo   ports.CampaignRepository
	PlatformRepo   ports.PlatformRepository
	ProfileRepo    ports.ProfileRepository
	ResponseRepo   ports.ResponseRepository
	TemplateRepo   ports.TemplateRepository
	ExperimentRepo ports.ExperimentRepository

	// Decision engines
	Evaluator *abtest.Evaluator
	Responder *responder.Responder

	// Application services
	CampaignService   *app.CampaignService
	ContentService    *app.ContentService
	ExperimentService *app.ExperimentService
	ResponseService   *app.ResponseService

	// Test infrastructure
	TestKit *testkit.TestKit
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	return &Container{
		Config: cfg,
		Logger: internal.NewDefaultLogger(),
	}, nil
}

// InitWithDatabase wires repositories against a live Postgres connection
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	c.DB = db
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.CampaignRepo = postgres.NewCampaignRepository(db)
	c.PlatformRepo = postgres.NewPlatformRepository(db)
	c.ProfileRepo = postgres.NewProfileRepository(db)
	c.ResponseRepo = postgres.NewResponseRepository(db)
	c.TemplateRepo = postgres.NewTemplateRepository(db)
	c.ExperimentRepo = postgres.NewExperimentRepository(db)

	if err := c.initServices(); err != nil {
		return err
	}
	log.Printf("Container initialized with database connection")
	return nil
}

// InitInMemory wires repositories against the in-memory store. Used by the
// CLI demo and when no database is configured.
func (c *Container) InitInMemory() error {
	c.TestKit = testkit.NewTestKit(c.Config.Content.Seed)
	store := c.TestKit.Store()

	c.CampaignRepo = store.Campaigns()
	c.PlatformRepo = store.Platforms()
	c.ProfileRepo = store.Profiles()
	c.ResponseRepo = store.Responses()
	c.TemplateRepo = store.Templates()
	c.ExperimentRepo = store.Experiments()

	if err := c.initServices(); err != nil {
		return err
	}
	log.Printf("Container initialized with in-memory store")
	return nil
}

func (c *Container) initServices() error {
	c.Evaluator = abtest.NewEvaluator()
	c.Responder = responder.NewResponder()

	generator := heuristic.NewGenerator(rng.NewSource(c.Config.Content.Seed), c.Config.Content.Seed)
	c.ContentService = app.NewContentService(generator)

	c.CampaignService = app.NewCampaignService(c.CampaignRepo, c.PlatformRepo, c.ContentService, c.analyticsSource(), c.Logger)
	c.ExperimentService = app.NewExperimentService(c.Evaluator, c.CampaignRepo, c.ExperimentRepo, c.Logger)
	c.ResponseService = app.NewResponseService(c.Responder, c.CampaignRepo, c.ProfileRepo, c.ResponseRepo, c.TemplateRepo, c.Config.Engine.AutoRespondEnabled, c.Logger)

	if err := c.ResponseService.HydrateTemplates(context.Background()); err != nil {
		return fmt.Errorf("failed to hydrate template registry: %w", err)
	}
	return nil
}

// analyticsSource synthesizes per-campaign analytics. The seed is derived
// from the campaign id so repeated reads of one campaign agree.
func (c *Container) analyticsSource() app.AnalyticsSource {
	base := c.Config.Content.Seed
	return func(id core.CampaignID) campaign.Analytics {
		h := fnv.New64a()
		h.Write([]byte(id))
		cfg := testkit.DefaultAnalyticsConfig()
		cfg.Seed = base ^ int64(h.Sum64())
		return testkit.NewAnalyticsGenerator(cfg).Generate()
	}
}

// Close releases held resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
