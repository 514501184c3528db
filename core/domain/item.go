// ABOUTME: FeedItem domain model represents one entry of a remote feed
// ABOUTME: Plain value type with structural equality and optional text fields

package domain

import (
	"net/url"

	"github.com/google/uuid"
)

// FeedItem represents an individual item in a remote feed.
// Values are returned by copy and never mutated after decoding.
type FeedItem struct {
	// ID uniquely identifies the item within a single load
	ID uuid.UUID

	// Description is optional, nil when the source omitted it
	Description *string

	// Location is optional, nil when the source omitted it
	Location *string

	// ImageURL points at the item's image
	ImageURL url.URL
}

// NewFeedItem builds a FeedItem, copying the optional strings so the caller
// cannot alter the item through its own variables afterwards.
func NewFeedItem(id uuid.UUID, description, location *string, imageURL url.URL) FeedItem {
	return FeedItem{
		ID:          id,
		Description: copyString(description),
		Location:    copyString(location),
		ImageURL:    imageURL,
	}
}

// Equal reports whether two items have identical fields
func (fi FeedItem) Equal(other FeedItem) bool {
	if fi.ID != other.ID {
		return false
	}

	if !equalOptional(fi.Description, other.Description) {
		return false
	}

	if !equalOptional(fi.Location, other.Location) {
		return false
	}

	return fi.ImageURL.String() == other.ImageURL.String()
}

// DescriptionOrEmpty returns the description or "" when absent
func (fi FeedItem) DescriptionOrEmpty() string {
	if fi.Description == nil {
		return ""
	}
	return *fi.Description
}

// LocationOrEmpty returns the location or "" when absent
func (fi FeedItem) LocationOrEmpty() string {
	if fi.Location == nil {
		return ""
	}
	return *fi.Location
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns a pointer to s, handy for building optional fields
func StringPtr(s string) *string {
	return &s
}
