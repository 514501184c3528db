// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"essential-feed-api/api/dto/responses"
	"essential-feed-api/core/domain"
	"essential-feed-api/core/feed"
)

// ToFeedItemResponses converts domain items to response DTOs, preserving order
func ToFeedItemResponses(items []domain.FeedItem) []responses.FeedItemResponse {
	records := feed.ToRecords(items)
	out := make([]responses.FeedItemResponse, 0, len(records))
	for _, r := range records {
		out = append(out, responses.FeedItemResponse{
			ID:          r.ID,
			Description: r.Description,
			Location:    r.Location,
			Image:       r.Image,
		})
	}
	return out
}

// ToFeedResponse converts a completed load to a FeedResponse DTO
func ToFeedResponse(url string, items []domain.FeedItem) *responses.FeedResponse {
	return &responses.FeedResponse{
		URL:   url,
		Count: len(items),
		Items: ToFeedItemResponses(items),
	}
}

// ToSnapshotResponse converts a domain Snapshot to a SnapshotResponse DTO
func ToSnapshotResponse(snapshot *domain.Snapshot) *responses.SnapshotResponse {
	if snapshot == nil {
		return nil
	}

	return &responses.SnapshotResponse{
		URL:     snapshot.FeedURL,
		SavedAt: snapshot.SavedAt,
		Count:   len(snapshot.Items),
		Items:   ToFeedItemResponses(snapshot.Items),
	}
}
