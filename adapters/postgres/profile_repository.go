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

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new candidate profile repository
func NewProfileRepository(db *sqlx.DB) ports.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, name, email, COALESCE(phone, '') as phone, COALESCE(location, '') as location,
	skills, availability, verified, rating, previous_experience`

// List returns all stored candidate profiles
func (r *profileRepository) List(ctx context.Context) ([]*response.CandidateProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM candidate_profiles ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	return collectProfiles(rows)
}

// ListByCampaign returns the profiles that received an auto response for the
// given campaign
func (r *profileRepository) ListByCampaign(ctx context.Context, campaignID core.CampaignID) ([]*response.CandidateProfile, error) {
	query := `SELECT DISTINCT ON (p.id)
		p.id, p.name, p.email, COALESCE(p.phone, '') as phone, COALESCE(p.location, '') as location,
		p.skills, p.availability, p.verified, p.rating, p.previous_experience
		FROM candidate_profiles p
		JOIN auto_responses ar ON ar.profile->>'id' = p.id::text
		WHERE ar.campaign_id = $1
		ORDER BY p.id, p.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, campaignID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles by campaign: %w", err)
	}
	defer rows.Close()

	return collectProfiles(rows)
}

// GetByID retrieves a profile by id, nil when missing
func (r *profileRepository) GetByID(ctx context.Context, id core.ProfileID) (*response.CandidateProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM candidate_profiles WHERE id = $1`

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// Save upserts a candidate profile
func (r *profileRepository) Save(ctx context.Context, p *response.CandidateProfile) error {
	skillsJSON, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	availJSON, err := json.Marshal(p.Availability)
	if err != nil {
		return fmt.Errorf("failed to marshal availability: %w", err)
	}
	expJSON, err := json.Marshal(p.PreviousExperience)
	if err != nil {
		return fmt.Errorf("failed to marshal previous experience: %w", err)
	}

	query := `INSERT INTO candidate_profiles (id, name, email, phone, location, skills, availability, verified, rating, previous_experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			skills = EXCLUDED.skills,
			availability = EXCLUDED.availability,
			verified = EXCLUDED.verified,
			rating = EXCLUDED.rating,
			previous_experience = EXCLUDED.previous_experience`

	_, err = r.db.ExecContext(ctx, query,
		p.ID.String(), p.Name, p.Email, p.Phone, p.Location,
		skillsJSON, availJSON, p.Verified, p.Rating, expJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func collectProfiles(rows *sql.Rows) ([]*response.CandidateProfile, error) {
	var profiles []*response.CandidateProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func scanProfile(row interface{ Scan(...any) error }) (*response.CandidateProfile, error) {
	var (
		p          response.CandidateProfile
		id         string
		skillsJSON []byte
		availJSON  []byte
		expJSON    []byte
		rating     sql.NullFloat64
	)

	err := row.Scan(&id, &p.Name, &p.Email, &p.Phone, &p.Location, &skillsJSON, &availJSON, &p.Verified, &rating, &expJSON)
	if err != nil {
		return nil, err
	}
	p.ID = core.ProfileID(id)
	if rating.Valid {
		p.Rating = &rating.Float64
	}

	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &p.Skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}
	if len(availJSON) > 0 {
		if err := json.Unmarshal(availJSON, &p.Availability); err != nil {
			return nil, fmt.Errorf("failed to unmarshal availability: %w", err)
		}
	}
	if len(expJSON) > 0 {
		if err := json.Unmarshal(expJSON, &p.PreviousExperience); err != nil {
			return nil, fmt.Errorf("failed to unmarshal previous experience: %w", err)
		}
	}
	return &p, nil
}
