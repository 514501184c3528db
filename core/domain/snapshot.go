// ABOUTME: Snapshot domain model records the items of one successful load
// ABOUTME: Provides validation for snapshots before they are persisted

package domain

import (
	"errors"
	"net/url"
	"time"
)

// Snapshot is the persisted outcome of a successful load of one feed URL
type Snapshot struct {
	// FeedURL is the resource the items were loaded from
	FeedURL string

	// Items are the decoded items in source order
	Items []FeedItem

	// SavedAt is when the snapshot was written
	SavedAt time.Time
}

// NewSnapshot creates a new Snapshot instance with validation
func NewSnapshot(feedURL string, items []FeedItem, savedAt time.Time) (*Snapshot, error) {
	if items == nil {
		items = []FeedItem{}
	}

	snapshot := &Snapshot{
		FeedURL: feedURL,
		Items:   items,
		SavedAt: savedAt,
	}

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Validate checks the snapshot refers to an absolute feed URL
func (s *Snapshot) Validate() error {
	if s.FeedURL == "" {
		return errors.New("snapshot feed URL cannot be empty")
	}

	parsedURL, err := url.Parse(s.FeedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return errors.New("snapshot feed URL is not valid format")
	}

	if s.SavedAt.IsZero() {
		return errors.New("snapshot saved time cannot be zero")
	}

	return nil
}
