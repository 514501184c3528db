package feed

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"essential-feed-api/core/domain"
	"essential-feed-api/core/interfaces"
	"github.com/google/uuid"
)

const anyFeedURL = "https://a-url.com/feed"

// makeItem returns an item and the JSON record the server would send for it
func makeItem(t *testing.T, description, location *string, image string) (domain.FeedItem, map[string]interface{}) {
	t.Helper()

	imageURL, err := url.Parse(image)
	if err != nil {
		t.Fatalf("bad fixture image URL %q: %v", image, err)
	}

	item := domain.NewFeedItem(uuid.New(), description, location, *imageURL)

	record := map[string]interface{}{
		"id":    item.ID.String(),
		"image": image,
	}
	if description != nil {
		record["description"] = *description
	}
	if location != nil {
		record["location"] = *location
	}

	return item, record
}

func makeItemsJSON(t *testing.T, records ...map[string]interface{}) []byte {
	t.Helper()

	if records == nil {
		records = []map[string]interface{}{}
	}
	data, err := json.Marshal(map[string]interface{}{"items": records})
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	return data
}

func clientReturning(status int, body []byte) *httpClientSpy {
	return &httpClientSpy{
		getFunc: func(_ context.Context, _ string) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: string(body)}, nil
		},
	}
}
