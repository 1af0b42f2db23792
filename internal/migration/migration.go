package migration

import (
	"context"
	"fmt"

	"reliefreach/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createCampaignsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create campaigns table")
	}

	if err := r.createPlatformsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create platforms table")
	}

	if err := r.createExperimentsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create experiments table")
	}

	if err := r.createProfilesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create candidate_profiles table")
	}

	if err := r.createTemplatesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create response_templates table")
	}

	if err := r.createResponsesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create auto_responses table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createCampaignsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS campaigns (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'draft',
			platforms JSONB NOT NULL DEFAULT '[]'::jsonb,
			content JSONB NOT NULL DEFAULT '{}'::jsonb,
			target_audience JSONB NOT NULL DEFAULT '{}'::jsonb,
			budget DECIMAL(12,2) DEFAULT 0.0,
			analytics JSONB,
			job_posting JSONB,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createPlatformsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS platforms (
			name VARCHAR(50) PRIMARY KEY,
			enabled BOOLEAN NOT NULL DEFAULT false,
			credentials JSONB NOT NULL DEFAULT '{}'::jsonb,
			settings JSONB NOT NULL DEFAULT '{}'::jsonb,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createExperimentsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS experiments (
			id UUID PRIMARY KEY,
			campaign_id UUID REFERENCES campaigns(id) ON DELETE CASCADE,
			status VARCHAR(50) NOT NULL DEFAULT 'running',
			criterion VARCHAR(50) NOT NULL DEFAULT 'engagement',
			variants JSONB NOT NULL DEFAULT '[]'::jsonb,
			results JSONB NOT NULL DEFAULT '{}'::jsonb,
			winner_variant_id UUID,
			start_time TIMESTAMP WITH TIME ZONE NOT NULL,
			end_time TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createProfilesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS candidate_profiles (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(50),
			location VARCHAR(255),
			skills JSONB NOT NULL DEFAULT '[]'::jsonb,
			availability JSONB NOT NULL DEFAULT '{}'::jsonb,
			verified BOOLEAN NOT NULL DEFAULT false,
			rating DECIMAL(3,2),
			previous_experience JSONB NOT NULL DEFAULT '[]'::jsonb,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createTemplatesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS response_templates (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			subject TEXT NOT NULL,
			body TEXT NOT NULL,
			variables JSONB NOT NULL DEFAULT '[]'::jsonb,
			triggers JSONB NOT NULL DEFAULT '[]'::jsonb,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createResponsesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS auto_responses (
			id UUID PRIMARY KEY,
			campaign_id UUID,
			profile JSONB NOT NULL DEFAULT '{}'::jsonb,
			message TEXT NOT NULL,
			template JSONB NOT NULL DEFAULT '{}'::jsonb,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_campaigns_status ON campaigns(status)",
		"CREATE INDEX IF NOT EXISTS idx_campaigns_created_at ON campaigns(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_experiments_campaign_id ON experiments(campaign_id)",
		"CREATE INDEX IF NOT EXISTS idx_experiments_status ON experiments(status)",
		"CREATE INDEX IF NOT EXISTS idx_experiments_start_time ON experiments(start_time DESC)",

		"CREATE INDEX IF NOT EXISTS idx_profiles_created_at ON candidate_profiles(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_responses_campaign_id ON auto_responses(campaign_id)",
		"CREATE INDEX IF NOT EXISTS idx_responses_status ON auto_responses(status)",
		"CREATE INDEX IF NOT EXISTS idx_responses_created_at ON auto_responses(created_at DESC)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}
