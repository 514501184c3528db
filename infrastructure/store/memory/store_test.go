package memory

import (
	"context"
	"testing"

	"essential-feed-api/core/interfaces"
	"essential-feed-api/infrastructure/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_Contract(t *testing.T) {
	storetest.RunSnapshotStoreTests(t, func(t *testing.T) interfaces.SnapshotStore {
		return NewSnapshotStore()
	})
}

func TestSnapshotStore_Count(t *testing.T) {
	s := NewSnapshotStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, storetest.Snapshot(t, "https://a.com/feed", 1)))
	require.NoError(t, s.Save(ctx, storetest.Snapshot(t, "https://b.com/feed", 1)))

	assert.Equal(t, 2, s.Count())
}

func TestSnapshotStore_StoredCopyIsIndependent(t *testing.T) {
	s := NewSnapshotStore()
	ctx := context.Background()
	snapshot := storetest.Snapshot(t, "https://a.com/feed", 2)
	require.NoError(t, s.Save(ctx, snapshot))

	snapshot.Items = snapshot.Items[:0]

	got, err := s.Latest(ctx, "https://a.com/feed")
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}

func TestSnapshotStore_CancelledContext(t *testing.T) {
	s := NewSnapshotStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, storetest.Snapshot(t, "https://a.com/feed", 1)), context.Canceled)
	_, err := s.Latest(ctx, "https://a.com/feed")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Delete(ctx, "https://a.com/feed"), context.Canceled)
}
