// ABOUTME: SQLite snapshot store for snapshots that survive restarts
// ABOUTME: One row per feed URL, the items column holds the feed wire document

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"essential-feed-api/core/domain"
	coreerrors "essential-feed-api/core/errors"
	"essential-feed-api/core/feed"
	"essential-feed-api/infrastructure/store"
	_ "github.com/mattn/go-sqlite3"
)

// SnapshotStore implements the SnapshotStore interface using SQLite
type SnapshotStore struct {
	db       *sql.DB
	filePath string
}

// NewSnapshotStore opens (or creates) the database at filePath
func NewSnapshotStore(filePath string) (*SnapshotStore, error) {
	if filePath == "" {
		filePath = "snapshots.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	s := &SnapshotStore{
		db:       db,
		filePath: filePath,
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// initSchema creates the snapshots table if it doesn't exist
func (s *SnapshotStore) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			feed_url TEXT PRIMARY KEY,
			items BLOB NOT NULL,
			saved_at INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save replaces the row for snapshot.FeedURL
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}

	doc, err := feed.EncodeItems(snapshot.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO snapshots (feed_url, items, saved_at)
		VALUES (?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, snapshot.FeedURL, doc, snapshot.SavedAt.UnixNano()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Latest returns the stored snapshot for feedURL
func (s *SnapshotStore) Latest(ctx context.Context, feedURL string) (*domain.Snapshot, error) {
	var doc []byte
	var savedAt int64

	query := "SELECT items, saved_at FROM snapshots WHERE feed_url = ?"
	err := s.db.QueryRowContext(ctx, query, feedURL).Scan(&doc, &savedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &coreerrors.NotFoundError{Resource: "snapshot", ID: feedURL}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return store.DecodeDocument(feedURL, doc, time.Unix(0, savedAt).UTC())
}

// Delete removes the row for feedURL
func (s *SnapshotStore) Delete(ctx context.Context, feedURL string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE feed_url = ?", feedURL); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// Stats returns store statistics
func (s *SnapshotStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_snapshots"] = count

	var pageCount, pageSize int
	err := s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = s.filePath

	return stats, nil
}

// Close closes the database connection
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
