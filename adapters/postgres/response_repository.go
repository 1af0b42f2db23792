package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"reliefreach/domain/core"
	"reliefreach/domain/response"
	"reliefreach/ports"

	"github.com/jmoiron/sqlx"
)

// responseRepository implements the ResponseRepository interface
type responseRepository struct {
	db *sqlx.DB
}

// NewResponseRepository creates a new auto-response repository
func NewResponseRepository(db *sqlx.DB) ports.ResponseRepository {
	return &responseRepository{db: db}
}

// List returns all auto responses
func (r *responseRepository) List(ctx context.Context) ([]*response.AutoResponse, error) {
	query := `SELECT id, campaign_id, profile, message, template, status, created_at
		FROM auto_responses ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	return collectResponses(rows)
}

// ListByCampaign returns the auto responses generated for a campaign
func (r *responseRepository) ListByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.AutoResponse, error) {
	query := `SELECT id, campaign_id, profile, message, template, status, created_at
		FROM auto_responses WHERE campaign_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, campaignID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list responses by campaign: %w", err)
	}
	defer rows.Close()

	return collectResponses(rows)
}

// Save appends a generated auto response
func (r *responseRepository) Save(ctx context.Context, ar *response.AutoResponse) error {
	profileJSON, err := json.Marshal(ar.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	templateJSON, err := json.Marshal(ar.Template)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	var campaignID any
	if ar.CampaignID != "" {
		campaignID = ar.CampaignID.String()
	}

	query := `INSERT INTO auto_responses (id, campaign_id, profile, message, template, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		ar.ID.String(), campaignID, profileJSON, ar.Message, templateJSON, ar.Status, ar.Timestamp.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}
	return nil
}

// UpdateStatus transitions a response's delivery status
func (r *responseRepository) UpdateStatus(ctx context.Context, id core.ResponseID, status response.AutoResponseStatus) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE auto_responses SET status = $1 WHERE id = $2`, status, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to update response status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func collectResponses(rows *sql.Rows) ([]*response.AutoResponse, error) {
	var responses []*response.AutoResponse
	for rows.Next() {
		var (
			ar           response.AutoResponse
			id           string
			campaignID   sql.NullString
			profileJSON  []byte
			templateJSON []byte
			createdAt    sql.NullTime
		)
		if err := rows.Scan(&id, &campaignID, &profileJSON, &ar.Message, &templateJSON, &ar.Status, &createdAt); err != nil {
			return nil, err
		}
		ar.ID = core.ResponseID(id)
		if campaignID.Valid {
			ar.CampaignID = core.CampaignID(campaignID.String)
		}
		if createdAt.Valid {
			ar.Timestamp = core.NewTimestamp(createdAt.Time)
		}
		if len(profileJSON) > 0 {
			if err := json.Unmarshal(profileJSON, &ar.Profile); err != nil {
				return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
			}
		}
		if len(templateJSON) > 0 {
			if err := json.Unmarshal(templateJSON, &ar.Template); err != nil {
				return nil, fmt.Errorf("failed to unmarshal template: %w", err)
			}
		}
		responses = append(responses, &ar)
	}
	return responses, rows.Err()
}
