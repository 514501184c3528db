// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, snapshot storage and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http transport, one round trip per call, no retries
// - logger/standard: logrus logger with optional lumberjack file rotation
// - store: snapshot codec shared by the backends
// - store/memory: in-process snapshots on go-cache
// - store/redis: snapshots in Redis via go-redis
// - store/sqlite: snapshots in a SQLite file via go-sqlite3
// - store/backend: picks a backend from configuration
// - store/storetest: behaviour every snapshot store must share
//
// # Snapshot Stores
//
// Stores keep items in the same JSON document the feed serves and read them
// back through the feed mapper, so a stored snapshot is validated exactly
// like a live response.
//
//	store, err := backend.Open(cfg.Store)
//	snapshot, _ := domain.NewSnapshot(feedURL, items, time.Now())
//	err = store.Save(ctx, snapshot)
//	latest, err := store.Latest(ctx, feedURL)
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithUserAgent("feedctl/1.0"))
//	resp, err := client.Get(ctx, "https://example.com/feed")
package infrastructure
