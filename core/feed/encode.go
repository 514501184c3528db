package feed

import (
	"encoding/json"

	"essential-feed-api/core/domain"
)

// ItemRecord is the wire representation of one item. Optional fields are
// omitted rather than sent as null.
type ItemRecord struct {
	ID          string  `json:"id"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Image       string  `json:"image"`
}

// ItemsDocument is the wire document accepted by ItemsMapper
type ItemsDocument struct {
	Items []ItemRecord `json:"items"`
}

// ToRecords converts domain items to wire records, preserving order
func ToRecords(items []domain.FeedItem) []ItemRecord {
	records := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		imageURL := item.ImageURL
		records = append(records, ItemRecord{
			ID:          item.ID.String(),
			Description: item.Description,
			Location:    item.Location,
			Image:       imageURL.String(),
		})
	}
	return records
}

// EncodeItems renders items in the wire format so that
// MapItems(EncodeItems(items), 200) yields the same items back.
func EncodeItems(items []domain.FeedItem) ([]byte, error) {
	return json.Marshal(ItemsDocument{Items: ToRecords(items)})
}
