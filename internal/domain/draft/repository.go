package draft

import (
	"context"
)

// Repository defines the interface for draft session storage.
// Drafts are ephemeral: the store holds them for the lifetime of the
// editing session only and expires them after a configured TTL.
type Repository interface {
	// Save upserts the draft and resets its session TTL
	Save(ctx context.Context, d Draft) error

	// Get retrieves a draft by ID
	Get(ctx context.Context, id string) (Draft, error)

	// Delete removes a draft, e.g. after successful submission
	Delete(ctx context.Context, id string) error
}
