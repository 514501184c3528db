// ABOUTME: Snapshot codec shared by the store backends
// ABOUTME: Items are kept in the feed wire format and read back through the items mapper

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"essential-feed-api/core/domain"
	"essential-feed-api/core/feed"
)

// record is the persisted form of a snapshot
type record struct {
	FeedURL  string          `json:"feed_url"`
	SavedAt  time.Time       `json:"saved_at"`
	Document json.RawMessage `json:"document"`
}

// EncodeSnapshot serializes a snapshot for storage
func EncodeSnapshot(snapshot *domain.Snapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, errors.New("snapshot cannot be nil")
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	doc, err := feed.EncodeItems(snapshot.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	return json.Marshal(record{
		FeedURL:  snapshot.FeedURL,
		SavedAt:  snapshot.SavedAt.UTC(),
		Document: doc,
	})
}

// DecodeSnapshot parses data written by EncodeSnapshot. The item document is
// validated with the same rules as a live response.
func DecodeSnapshot(data []byte) (*domain.Snapshot, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return DecodeDocument(rec.FeedURL, rec.Document, rec.SavedAt)
}

// DecodeDocument rebuilds a snapshot from its parts
func DecodeDocument(feedURL string, document []byte, savedAt time.Time) (*domain.Snapshot, error) {
	items, err := feed.MapItems(document, 200)
	if err != nil {
		return nil, fmt.Errorf("stored items for %s are unreadable: %w", feedURL, err)
	}

	return domain.NewSnapshot(feedURL, items, savedAt)
}

// Key returns the storage key for a feed URL
func Key(feedURL string) string {
	return "snapshot:" + feedURL
}
