// ABOUTME: Response DTOs for feed-related API endpoints
// ABOUTME: Mirrors the feed wire format so clients can reuse their decoders

package responses

import "time"

// FeedItemResponse represents a feed item in API responses
type FeedItemResponse struct {
	ID          string  `json:"id" doc:"Item UUID in canonical form"`
	Description *string `json:"description,omitempty" doc:"Optional item description"`
	Location    *string `json:"location,omitempty" doc:"Optional item location"`
	Image       string  `json:"image" doc:"Absolute image URL"`
}

// FeedResponse represents the outcome of one live load
type FeedResponse struct {
	URL   string             `json:"url" doc:"Feed URL that was loaded"`
	Count int                `json:"count" doc:"Number of items"`
	Items []FeedItemResponse `json:"items" doc:"Items in source order"`
}

// SnapshotResponse represents a stored snapshot
type SnapshotResponse struct {
	URL     string             `json:"url" doc:"Feed URL the snapshot was taken from"`
	SavedAt time.Time          `json:"saved_at" doc:"When the snapshot was saved"`
	Count   int                `json:"count" doc:"Number of items"`
	Items   []FeedItemResponse `json:"items" doc:"Items in source order"`
}
