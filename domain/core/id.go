package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	CampaignID   ID
	ExperimentID ID
	VariantID    ID
	TemplateID   ID
	ProfileID    ID
	ResponseID   ID
)

// String conversions for domain IDs
func (id CampaignID) String() string   { return ID(id).String() }
func (id ExperimentID) String() string { return ID(id).String() }
func (id VariantID) String() string    { return ID(id).String() }
func (id TemplateID) String() string   { return ID(id).String() }
func (id ProfileID) String() string    { return ID(id).String() }
func (id ResponseID) String() string   { return ID(id).String() }

// ParseCampaignID parses a string into CampaignID
func ParseCampaignID(s string) (CampaignID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("campaign ID cannot be empty")
	}
	return CampaignID(s), nil
}

// ParseExperimentID parses a string into ExperimentID
func ParseExperimentID(s string) (ExperimentID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("experiment ID cannot be empty")
	}
	return ExperimentID(s), nil
}

// ParseTemplateID parses a string into TemplateID
func ParseTemplateID(s string) (TemplateID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("template ID cannot be empty")
	}
	return TemplateID(s), nil
}

// ParseProfileID parses a string into ProfileID
func ParseProfileID(s string) (ProfileID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("profile ID cannot be empty")
	}
	return ProfileID(s), nil
}
