// ABOUTME: In-memory snapshot store built on go-cache
// ABOUTME: Snapshots live for the lifetime of the process and never expire

package memory

import (
	"context"

	"essential-feed-api/core/domain"
	coreerrors "essential-feed-api/core/errors"
	"essential-feed-api/infrastructure/store"
	"github.com/patrickmn/go-cache"
)

// SnapshotStore implements the SnapshotStore interface in process memory
type SnapshotStore struct {
	cache *cache.Cache
}

// NewSnapshotStore creates an empty in-memory store
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Save stores a serialized copy of the snapshot
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := store.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	s.cache.Set(store.Key(snapshot.FeedURL), data, cache.NoExpiration)
	return nil
}

// Latest returns the stored snapshot for feedURL
func (s *SnapshotStore) Latest(ctx context.Context, feedURL string) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := s.cache.Get(store.Key(feedURL))
	if !found {
		return nil, &coreerrors.NotFoundError{Resource: "snapshot", ID: feedURL}
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "snapshot", ID: feedURL}
	}

	return store.DecodeSnapshot(data)
}

// Delete removes the snapshot for feedURL
func (s *SnapshotStore) Delete(ctx context.Context, feedURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Delete(store.Key(feedURL))
	return nil
}

// Count returns the number of stored snapshots
func (s *SnapshotStore) Count() int {
	return s.cache.ItemCount()
}
