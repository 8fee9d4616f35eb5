package driving

import (
	"context"

	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// MaintenanceService performs administrative operations on the backend index.
// Confirmation of destructive operations is the caller's responsibility so
// the gate can be swapped for scripted, non-interactive use. Implementations
// run at most one action at a time and return domain.ErrActionInFlight for a
// call made while another action is still running.
type MaintenanceService interface {
	// Upload ingests the document at path. Returns domain.ErrNoFileSelected
	// when path is empty.
	Upload(ctx context.Context, path string) (*domain.ActionStatus, error)

	// Recreate clears the index and re-embeds all known files.
	Recreate(ctx context.Context) (*domain.ActionStatus, error)

	// Purge permanently deletes all embeddings from the index.
	Purge(ctx context.Context) (*domain.ActionStatus, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
