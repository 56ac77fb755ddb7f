package ports

import (
	"context"

	"github.com/aretw0/palintape/pkg/domain"
)

// RunStore defines the interface for persisting completed runs. This is the
// re-architected execution-log collaborator: the engine produces the trace,
// a store decides where it lives.
type RunStore interface {
	// Save persists the record under its ID (overwrite semantics).
	Save(ctx context.Context, record *domain.RunRecord) error

	// Load retrieves a record by ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.RunRecord, error)

	// Delete removes the record for an ID.
	Delete(ctx context.Context, id string) error

	// List returns the stored run IDs.
	List(ctx context.Context) ([]string, error)
}
