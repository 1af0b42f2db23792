package ports

import (
	"context"

	"reliefreach/domain/core"
	"reliefreach/domain/response"
)

// TemplateRepository persists the response template registry. The responder
// keeps its working set in memory; the repository is the durable copy that
// registry edits are written through to and the registry is hydrated from at
// startup.
type TemplateRepository interface {
	// List returns all stored templates in priority order
	List(ctx context.Context) ([]response.Template, error)

	// Save upserts a template
	Save(ctx context.Context, t response.Template) error

	// Delete removes a template, reporting whether a row was removed
	Delete(ctx context.Context, id core.TemplateID) (bool, error)
}
