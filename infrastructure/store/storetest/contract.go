// Package storetest holds the behaviour every SnapshotStore must share.
package storetest

import (
	"context"
	"net/url"
	"testing"
	"time"

	"essential-feed-api/core/domain"
	coreerrors "essential-feed-api/core/errors"
	"essential-feed-api/core/interfaces"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty store for one subtest
type Factory func(t *testing.T) interfaces.SnapshotStore

// RunSnapshotStoreTests exercises the SnapshotStore contract against newStore
func RunSnapshotStoreTests(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("latest on empty store is not found", func(t *testing.T) {
		s := newStore(t)

		snapshot, err := s.Latest(ctx, "https://example.com/feed")

		assert.Nil(t, snapshot)
		assert.True(t, coreerrors.IsNotFound(err), "got %v", err)
	})

	t.Run("save then latest returns equal items", func(t *testing.T) {
		s := newStore(t)
		want := Snapshot(t, "https://example.com/feed", 3)

		require.NoError(t, s.Save(ctx, want))
		got, err := s.Latest(ctx, want.FeedURL)

		require.NoError(t, err)
		AssertSameSnapshot(t, want, got)
	})

	t.Run("save empty feed", func(t *testing.T) {
		s := newStore(t)
		want := Snapshot(t, "https://example.com/empty", 0)

		require.NoError(t, s.Save(ctx, want))
		got, err := s.Latest(ctx, want.FeedURL)

		require.NoError(t, err)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
	})

	t.Run("save replaces previous snapshot", func(t *testing.T) {
		s := newStore(t)
		first := Snapshot(t, "https://example.com/feed", 2)
		second := Snapshot(t, "https://example.com/feed", 1)
		second.SavedAt = first.SavedAt.Add(time.Minute)

		require.NoError(t, s.Save(ctx, first))
		require.NoError(t, s.Save(ctx, second))
		got, err := s.Latest(ctx, first.FeedURL)

		require.NoError(t, err)
		AssertSameSnapshot(t, second, got)
	})

	t.Run("snapshots are kept per feed url", func(t *testing.T) {
		s := newStore(t)
		a := Snapshot(t, "https://a.com/feed", 1)
		b := Snapshot(t, "https://b.com/feed", 2)

		require.NoError(t, s.Save(ctx, a))
		require.NoError(t, s.Save(ctx, b))

		gotA, err := s.Latest(ctx, a.FeedURL)
		require.NoError(t, err)
		AssertSameSnapshot(t, a, gotA)

		gotB, err := s.Latest(ctx, b.FeedURL)
		require.NoError(t, err)
		AssertSameSnapshot(t, b, gotB)
	})

	t.Run("delete removes snapshot", func(t *testing.T) {
		s := newStore(t)
		snapshot := Snapshot(t, "https://example.com/feed", 1)

		require.NoError(t, s.Save(ctx, snapshot))
		require.NoError(t, s.Delete(ctx, snapshot.FeedURL))

		_, err := s.Latest(ctx, snapshot.FeedURL)
		assert.True(t, coreerrors.IsNotFound(err))
	})

	t.Run("delete missing snapshot is not an error", func(t *testing.T) {
		s := newStore(t)

		assert.NoError(t, s.Delete(ctx, "https://example.com/none"))
	})

	t.Run("save rejects invalid snapshot", func(t *testing.T) {
		s := newStore(t)

		assert.Error(t, s.Save(ctx, nil))
		assert.Error(t, s.Save(ctx, &domain.Snapshot{FeedURL: "relative", SavedAt: time.Now()}))
		assert.Error(t, s.Save(ctx, &domain.Snapshot{FeedURL: "https://example.com/feed"}))
	})
}

// Snapshot builds a valid snapshot of n items for feedURL
func Snapshot(t *testing.T, feedURL string, n int) *domain.Snapshot {
	t.Helper()

	items := make([]domain.FeedItem, 0, n)
	for i := 0; i < n; i++ {
		imageURL, err := url.Parse("https://images.example.com/" + uuid.NewString() + ".png")
		require.NoError(t, err)

		var description *string
		if i%2 == 0 {
			description = domain.StringPtr("description")
		}
		items = append(items, domain.NewFeedItem(uuid.New(), description, domain.StringPtr("location"), *imageURL))
	}

	snapshot, err := domain.NewSnapshot(feedURL, items, time.Now().UTC().Truncate(time.Millisecond))
	require.NoError(t, err)
	return snapshot
}

// AssertSameSnapshot compares snapshots field by field
func AssertSameSnapshot(t *testing.T, want, got *domain.Snapshot) {
	t.Helper()

	require.NotNil(t, got)
	assert.Equal(t, want.FeedURL, got.FeedURL)
	assert.True(t, want.SavedAt.Equal(got.SavedAt), "saved_at %v != %v", want.SavedAt, got.SavedAt)
	require.Len(t, got.Items, len(want.Items))
	for i := range want.Items {
		assert.True(t, want.Items[i].Equal(got.Items[i]), "item %d differs", i)
	}
}
