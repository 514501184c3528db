// ABOUTME: Redis snapshot store using go-redis client
// ABOUTME: One key per feed URL holding the serialized snapshot

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"essential-feed-api/core/domain"
	coreerrors "essential-feed-api/core/errors"
	"essential-feed-api/infrastructure/store"
	"essential-feed-api/pkg/config"
	"github.com/redis/go-redis/v9"
)

// SnapshotStore implements the SnapshotStore interface using Redis
type SnapshotStore struct {
	client *redis.Client
}

// NewSnapshotStore connects to Redis and verifies the connection
func NewSnapshotStore(cfg config.RedisConfig) (*SnapshotStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Address, err)
	}

	return &SnapshotStore{
		client: client,
	}, nil
}

// Save stores the snapshot without expiration
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := store.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, store.Key(snapshot.FeedURL), data, 0).Err()
}

// Latest returns the stored snapshot for feedURL
func (s *SnapshotStore) Latest(ctx context.Context, feedURL string) (*domain.Snapshot, error) {
	data, err := s.client.Get(ctx, store.Key(feedURL)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, &coreerrors.NotFoundError{Resource: "snapshot", ID: feedURL}
		}
		return nil, err
	}

	return store.DecodeSnapshot(data)
}

// Delete removes the snapshot for feedURL
func (s *SnapshotStore) Delete(ctx context.Context, feedURL string) error {
	// DEL on a missing key is not an error
	return s.client.Del(ctx, store.Key(feedURL)).Err()
}

// Close closes the Redis connection
func (s *SnapshotStore) Close() error {
	return s.client.Close()
}
