// ABOUTME: Storage interface for persisting load snapshots
// ABOUTME: Implemented by the memory, redis and sqlite stores

package interfaces

import (
	"context"

	"essential-feed-api/core/domain"
)

// SnapshotStore persists the last successful load of a feed URL.
// The loader never reads from it; callers save and read explicitly.
type SnapshotStore interface {
	// Save replaces the snapshot stored for snapshot.FeedURL
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Latest returns the stored snapshot, or a *errors.NotFoundError
	Latest(ctx context.Context, feedURL string) (*domain.Snapshot, error)

	// Delete removes the snapshot; deleting a missing one is not an error
	Delete(ctx context.Context, feedURL string) error
}
