package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"reliefreach/domain/campaign"
	"reliefreach/domain/core"
	"reliefreach/ports"

	"github.com/jmoiron/sqlx"
)

// campaignRepository implements the CampaignRepository interface
type campaignRepository struct {
	db *sqlx.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *sqlx.DB) ports.CampaignRepository {
	return &campaignRepository{db: db}
}

// List returns all campaigns in creation order
func (r *campaignRepository) List(ctx context.Context) ([]*campaign.Campaign, error) {
	query := `SELECT id, name, status, platforms, content, target_audience, analytics, job_posting, created_at
		FROM campaigns ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*campaign.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// GetByID retrieves a campaign by id, nil when missing
func (r *campaignRepository) GetByID(ctx context.Context, id core.CampaignID) (*campaign.Campaign, error) {
	query := `SELECT id, name, status, platforms, content, target_audience, analytics, job_posting, created_at
		FROM campaigns WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id.String())
	c, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// Save upserts a campaign
func (r *campaignRepository) Save(ctx context.Context, c *campaign.Campaign) error {
	platformsJSON, err := json.Marshal(c.Platforms)
	if err != nil {
		return fmt.Errorf("failed to marshal platforms: %w", err)
	}
	contentJSON, err := json.Marshal(c.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}
	audienceJSON, err := json.Marshal(c.TargetAudience)
	if err != nil {
		return fmt.Errorf("failed to marshal target audience: %w", err)
	}
	analyticsJSON, err := json.Marshal(c.Analytics)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics: %w", err)
	}
	jobJSON, err := json.Marshal(c.Job)
	if err != nil {
		return fmt.Errorf("failed to marshal job posting: %w", err)
	}

	query := `INSERT INTO campaigns (id, name, status, platforms, content, target_audience, analytics, job_posting, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			platforms = EXCLUDED.platforms,
			content = EXCLUDED.content,
			target_audience = EXCLUDED.target_audience,
			analytics = EXCLUDED.analytics,
			job_posting = EXCLUDED.job_posting,
			updated_at = NOW()`

	_, err = r.db.ExecContext(ctx, query,
		c.ID.String(), c.Name, c.Status, platformsJSON, contentJSON,
		audienceJSON, analyticsJSON, jobJSON, c.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save campaign: %w", err)
	}
	return nil
}

// Delete removes a campaign, reporting whether a row was removed
func (r *campaignRepository) Delete(ctx context.Context, id core.CampaignID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete campaign: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanCampaign reads one campaign row from a row scanner
func scanCampaign(row interface{ Scan(...any) error }) (*campaign.Campaign, error) {
	var (
		c             campaign.Campaign
		id            string
		platformsJSON []byte
		contentJSON   []byte
		audienceJSON  []byte
		analyticsJSON []byte
		jobJSON       []byte
		createdAt     sql.NullTime
	)

	err := row.Scan(&id, &c.Name, &c.Status, &platformsJSON, &contentJSON, &audienceJSON, &analyticsJSON, &jobJSON, &createdAt)
	if err != nil {
		return nil, err
	}
	c.ID = core.CampaignID(id)
	if createdAt.Valid {
		c.CreatedAt = core.NewTimestamp(createdAt.Time)
	}

	if len(platformsJSON) > 0 {
		if err := json.Unmarshal(platformsJSON, &c.Platforms); err != nil {
			return nil, fmt.Errorf("failed to unmarshal platforms: %w", err)
		}
	}
	if len(contentJSON) > 0 {
		if err := json.Unmarshal(contentJSON, &c.Content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal content: %w", err)
		}
	}
	if len(audienceJSON) > 0 {
		if err := json.Unmarshal(audienceJSON, &c.TargetAudience); err != nil {
			return nil, fmt.Errorf("failed to unmarshal target audience: %w", err)
		}
	}
	if len(analyticsJSON) > 0 {
		if err := json.Unmarshal(analyticsJSON, &c.Analytics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analytics: %w", err)
		}
	}
	if len(jobJSON) > 0 && string(jobJSON) != "null" {
		if err := json.Unmarshal(jobJSON, &c.Job); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job posting: %w", err)
		}
	}
	return &c, nil
}
