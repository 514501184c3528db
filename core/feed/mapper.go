// ABOUTME: ItemsMapper validates a raw feed response and decodes it into domain items
// ABOUTME: Pure mapping from bytes and status code, no I/O and no shared state

package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"essential-feed-api/core/domain"
	coreerrors "essential-feed-api/core/errors"
	"github.com/google/uuid"
)

// canonicalUUIDLength is the length of the 8-4-4-4-12 textual form
const canonicalUUIDLength = 36

// DecodePolicy decides what happens to a structurally invalid item record
type DecodePolicy int

const (
	// AbortOnInvalidItem rejects the whole payload when any record is invalid
	AbortOnInvalidItem DecodePolicy = iota

	// SkipInvalidItems drops invalid records and keeps the valid ones in order
	SkipInvalidItems
)

// String returns the configuration name of the policy
func (p DecodePolicy) String() string {
	switch p {
	case SkipInvalidItems:
		return "skip"
	default:
		return "abort"
	}
}

// ParseDecodePolicy maps "abort" / "skip" to a policy
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch s {
	case "", "abort":
		return AbortOnInvalidItem, nil
	case "skip":
		return SkipInvalidItems, nil
	default:
		return AbortOnInvalidItem, fmt.Errorf("unknown decode policy %q", s)
	}
}

// Wire keys. Matching is exact: encoding/json struct tags would also accept
// "ITEMS" or "Id", so documents and records are read as raw key maps.
const (
	keyItems       = "items"
	keyID          = "id"
	keyDescription = "description"
	keyLocation    = "location"
	keyImage       = "image"
)

// remoteItem holds the string fields of one record after exact-key lookup
type remoteItem struct {
	ID          *string
	Description *string
	Location    *string
	Image       *string
}

// stringField reads key from a raw record. An absent key or JSON null
// yields nil; any non-string value is an error.
func stringField(record map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := record[key]
	if !ok {
		return nil, nil
	}
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func parseRemoteItem(raw json.RawMessage) (remoteItem, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(raw, &record); err != nil {
		return remoteItem{}, err
	}

	var rec remoteItem
	var err error
	if rec.ID, err = stringField(record, keyID); err != nil {
		return remoteItem{}, err
	}
	if rec.Description, err = stringField(record, keyDescription); err != nil {
		return remoteItem{}, err
	}
	if rec.Location, err = stringField(record, keyLocation); err != nil {
		return remoteItem{}, err
	}
	if rec.Image, err = stringField(record, keyImage); err != nil {
		return remoteItem{}, err
	}
	return rec, nil
}

// ItemsMapper implements interfaces.ItemsDecoder for the items wire format
type ItemsMapper struct {
	policy DecodePolicy
}

// NewItemsMapper creates a mapper applying the given policy to invalid records
func NewItemsMapper(policy DecodePolicy) *ItemsMapper {
	return &ItemsMapper{policy: policy}
}

// Policy returns the mapper's decode policy
func (m *ItemsMapper) Policy() DecodePolicy {
	return m.policy
}

// MapItems decodes with the default abort-on-invalid-item policy
func MapItems(data []byte, statusCode int) ([]domain.FeedItem, error) {
	return NewItemsMapper(AbortOnInvalidItem).Decode(data, statusCode)
}

// Decode validates the status code and payload and returns the items in
// source order. Any status other than exactly 200 is rejected before the
// payload is looked at.
func (m *ItemsMapper) Decode(data []byte, statusCode int) ([]domain.FeedItem, error) {
	if statusCode != http.StatusOK {
		return nil, &coreerrors.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("expected %d, got %d", http.StatusOK, statusCode),
		}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, coreerrors.WrapError(&coreerrors.ValidationError{
			Field:   "body",
			Message: "malformed JSON document",
		}, err.Error())
	}

	var records *[]json.RawMessage
	if raw, ok := doc[keyItems]; ok {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, &coreerrors.ValidationError{
				Field:   keyItems,
				Message: "collection is not a list",
			}
		}
	}
	if records == nil {
		return nil, &coreerrors.ValidationError{
			Field:   keyItems,
			Message: "collection is missing",
		}
	}

	items := make([]domain.FeedItem, 0, len(*records))
	for i, raw := range *records {
		item, err := decodeItem(i, raw)
		if err != nil {
			if m.policy == SkipInvalidItems {
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func decodeItem(index int, raw json.RawMessage) (domain.FeedItem, error) {
	field := func(name string) string {
		return fmt.Sprintf("items[%d].%s", index, name)
	}

	rec, err := parseRemoteItem(raw)
	if err != nil {
		return domain.FeedItem{}, &coreerrors.ValidationError{
			Field:   fmt.Sprintf("items[%d]", index),
			Message: "record is not an object with string fields",
		}
	}

	if rec.ID == nil {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: field(keyID), Message: "is required"}
	}
	if len(*rec.ID) != canonicalUUIDLength {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: field(keyID), Message: "not a canonical UUID"}
	}
	id, err := uuid.Parse(*rec.ID)
	if err != nil {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: field(keyID), Message: "not a valid UUID"}
	}

	if rec.Image == nil {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: field(keyImage), Message: "is required"}
	}
	imageURL, err := url.Parse(*rec.Image)
	if err != nil || imageURL.Scheme == "" || imageURL.Host == "" {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: field(keyImage), Message: "not a valid absolute URL"}
	}

	return domain.NewFeedItem(id, rec.Description, rec.Location, *imageURL), nil
}
