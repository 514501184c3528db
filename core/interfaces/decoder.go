package interfaces

import "essential-feed-api/core/domain"

// ItemsDecoder maps a raw transport outcome to feed items.
// Decode must be pure: no I/O, no shared mutable state, and the same
// input always yields the same output.
type ItemsDecoder interface {
	Decode(data []byte, statusCode int) ([]domain.FeedItem, error)
}
