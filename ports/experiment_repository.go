package ports

import (
	"context"

	"reliefreach/domain/experiment"
)

// ExperimentRepository keeps durable snapshots of experiments. The evaluator
// remains the authority while an experiment runs; snapshots are written
// behind it so concluded experiments survive a restart as history.
type ExperimentRepository interface {
	// List returns all stored snapshots in start order
	List(ctx context.Context) ([]*experiment.Results, error)

	// Save upserts one experiment snapshot
	Save(ctx context.Context, r *experiment.Results) error
}
