// ABOUTME: Selects and opens the snapshot store backend named in configuration
// ABOUTME: Shared by the API server and the CLI

package backend

import (
	"fmt"

	"essential-feed-api/core/interfaces"
	"essential-feed-api/infrastructure/store/memory"
	"essential-feed-api/infrastructure/store/redis"
	"essential-feed-api/infrastructure/store/sqlite"
	"essential-feed-api/pkg/config"
)

// Store is a SnapshotStore that may hold resources to release
type Store interface {
	interfaces.SnapshotStore
	Close() error
}

// memoryStore adds a no-op Close to the in-memory store
type memoryStore struct {
	*memory.SnapshotStore
}

func (memoryStore) Close() error { return nil }

// Open creates the store selected by cfg.Type
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "", "memory":
		return memoryStore{memory.NewSnapshotStore()}, nil
	case "redis":
		s, err := redis.NewSnapshotStore(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.NewSnapshotStore(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
