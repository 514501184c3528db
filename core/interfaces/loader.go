package interfaces

import (
	"context"

	"essential-feed-api/core/domain"
)

// FeedLoader loads the current items of a feed.
// Errors returned by Load are always core/errors.ErrConnectivity or
// core/errors.ErrInvalidData.
type FeedLoader interface {
	Load(ctx context.Context) ([]domain.FeedItem, error)
}
