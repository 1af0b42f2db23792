package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"reliefreach/domain/experiment"
	"reliefreach/ports"

	"github.com/jmoiron/sqlx"
)

// experimentRepository implements the ExperimentRepository interface
type experimentRepository struct {
	db *sqlx.DB
}

// NewExperimentRepository creates a new experiment snapshot repository
func NewExperimentRepository(db *sqlx.DB) ports.ExperimentRepository {
	return &experimentRepository{db: db}
}

// List returns all stored snapshots in start order
func (r *experimentRepository) List(ctx context.Context) ([]*experiment.Results, error) {
	query := `SELECT results FROM experiments ORDER BY start_time ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	defer rows.Close()

	var snapshots []*experiment.Results
	for rows.Next() {
		var resultsJSON []byte
		if err := rows.Scan(&resultsJSON); err != nil {
			return nil, err
		}
		var res experiment.Results
		if err := json.Unmarshal(resultsJSON, &res); err != nil {
			return nil, fmt.Errorf("failed to unmarshal experiment snapshot: %w", err)
		}
		snapshots = append(snapshots, &res)
	}
	return snapshots, rows.Err()
}

// Save upserts one experiment snapshot. The full snapshot lives in the
// results column; scalar columns are denormalized for querying.
func (r *experimentRepository) Save(ctx context.Context, res *experiment.Results) error {
	resultsJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal experiment snapshot: %w", err)
	}
	variantsJSON, err := json.Marshal(res.VariantResults)
	if err != nil {
		return fmt.Errorf("failed to marshal variant results: %w", err)
	}

	var winnerID any
	if res.Winner != nil {
		winnerID = res.Winner.ID.String()
	}
	var endTime any
	if !res.EndTime.IsZero() {
		endTime = res.EndTime.Time()
	}

	query := `INSERT INTO experiments (id, campaign_id, status, criterion, variants, results, winner_variant_id, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			variants = EXCLUDED.variants,
			results = EXCLUDED.results,
			winner_variant_id = EXCLUDED.winner_variant_id,
			end_time = EXCLUDED.end_time`

	_, err = r.db.ExecContext(ctx, query,
		res.ExperimentID.String(), res.CampaignID.String(), res.Status, res.Config.Criterion,
		variantsJSON, resultsJSON, winnerID, res.StartTime.Time(), endTime,
	)
	if err != nil {
		return fmt.Errorf("failed to save experiment: %w", err)
	}
	return nil
}
