package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"reliefreach/domain/campaign"
	"reliefreach/ports"

	"github.com/jmoiron/sqlx"
)

// platformRepository implements the PlatformRepository interface
type platformRepository struct {
	db *sqlx.DB
}

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(db *sqlx.DB) ports.PlatformRepository {
	return &platformRepository{db: db}
}

// List returns all platforms, seeding defaults when empty
func (r *platformRepository) List(ctx context.Context) ([]campaign.Platform, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM platforms`); err != nil {
		return nil, fmt.Errorf("failed to count platforms: %w", err)
	}
	if count == 0 {
		if err := r.seedDefaults(ctx); err != nil {
			return nil, err
		}
	}

	rows, err := r.db.QueryContext(ctx, `SELECT name, enabled, credentials, settings FROM platforms ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []campaign.Platform
	for rows.Next() {
		var (
			p         campaign.Platform
			credsJSON []byte
			setsJSON  []byte
		)
		if err := rows.Scan(&p.Name, &p.Enabled, &credsJSON, &setsJSON); err != nil {
			return nil, err
		}
		p.ID = string(p.Name)
		if len(credsJSON) > 0 && string(credsJSON) != "{}" && string(credsJSON) != "null" {
			if err := json.Unmarshal(credsJSON, &p.Credentials); err != nil {
				return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
			}
		}
		if len(setsJSON) > 0 {
			if err := json.Unmarshal(setsJSON, &p.Settings); err != nil {
				return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
			}
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}

// Update upserts a platform configuration
func (r *platformRepository) Update(ctx context.Context, p campaign.Platform) error {
	credsJSON, err := json.Marshal(p.Credentials)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	setsJSON, err := json.Marshal(p.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := `INSERT INTO platforms (name, enabled, credentials, settings)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			credentials = EXCLUDED.credentials,
			settings = EXCLUDED.settings,
			updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, p.Name, p.Enabled, credsJSON, setsJSON); err != nil {
		return fmt.Errorf("failed to update platform: %w", err)
	}
	return nil
}

func (r *platformRepository) seedDefaults(ctx context.Context) error {
	for _, p := range campaign.DefaultPlatforms() {
		if err := r.Update(ctx, p); err != nil {
			return fmt.Errorf("failed to seed platform %s: %w", p.Name, err)
		}
	}
	return nil
}
