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

// templateRepository implements the TemplateRepository interface
type templateRepository struct {
	db *sqlx.DB
}

// NewTemplateRepository creates a new response template repository
func NewTemplateRepository(db *sqlx.DB) ports.TemplateRepository {
	return &templateRepository{db: db}
}

// List returns all stored templates
func (r *templateRepository) List(ctx context.Context) ([]response.Template, error) {
	query := `SELECT id, name, subject, body, variables, triggers
		FROM response_templates ORDER BY updated_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	return collectTemplates(rows)
}

// Save upserts a template by its ID
func (r *templateRepository) Save(ctx context.Context, t response.Template) error {
	variablesJSON, err := json.Marshal(t.Variables)
	if err != nil {
		return fmt.Errorf("failed to marshal variables: %w", err)
	}
	triggersJSON, err := json.Marshal(t.Triggers)
	if err != nil {
		return fmt.Errorf("failed to marshal triggers: %w", err)
	}

	query := `INSERT INTO response_templates (id, name, subject, body, variables, triggers, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			subject = EXCLUDED.subject,
			body = EXCLUDED.body,
			variables = EXCLUDED.variables,
			triggers = EXCLUDED.triggers,
			updated_at = NOW()`

	_, err = r.db.ExecContext(ctx, query,
		t.ID.String(), t.Name, t.Subject, t.Body, variablesJSON, triggersJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// Delete removes a template, reporting whether a row was removed
func (r *templateRepository) Delete(ctx context.Context, id core.TemplateID) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM response_templates WHERE id = $1`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete template: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func collectTemplates(rows *sql.Rows) ([]response.Template, error) {
	var templates []response.Template
	for rows.Next() {
		var (
			t             response.Template
			id            string
			variablesJSON []byte
			triggersJSON  []byte
		)
		if err := rows.Scan(&id, &t.Name, &t.Subject, &t.Body, &variablesJSON, &triggersJSON); err != nil {
			return nil, err
		}
		t.ID = core.TemplateID(id)
		if len(variablesJSON) > 0 {
			if err := json.Unmarshal(variablesJSON, &t.Variables); err != nil {
				return nil, fmt.Errorf("failed to unmarshal variables: %w", err)
			}
		}
		if len(triggersJSON) > 0 {
			if err := json.Unmarshal(triggersJSON, &t.Triggers); err != nil {
				return nil, fmt.Errorf("failed to unmarshal triggers: %w", err)
			}
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
