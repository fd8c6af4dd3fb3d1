package results

import (
	"context"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
)

// RemoteStore is the durable, append-only result store. Rows are never
// updated or deleted; duplicate submissions of the same attempt are
// deduplicated by (user, slug, attempt id).
type RemoteStore interface {
	// Save appends one immutable row for the authenticated user.
	// Unlike the local cache, failures must surface to the caller:
	// this is the system of record.
	Save(ctx context.Context, who identity.Identity, res ScoredResult) error

	// Latest returns the most recent row for the user, optionally
	// filtered by instrument slug (empty slug means any instrument).
	// Returns nil when no row exists.
	Latest(ctx context.Context, userID, slug string) (*StoredResult, error)

	// History returns up to limit rows for the user, newest first.
	History(ctx context.Context, userID string, limit int) ([]StoredResult, error)
}

// SaveRemote validates the payload, requires an identity, and appends
// the result. It is the single write path every caller goes through.
func SaveRemote(ctx context.Context, store RemoteStore, who identity.Identity, res ScoredResult) error {
	if who.ID == "" {
		return identity.ErrUnauthorized
	}
	if err := res.Validate(); err != nil {
		return err
	}
	return store.Save(ctx, who, res)
}
