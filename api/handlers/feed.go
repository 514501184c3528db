// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Live loads of the configured feed plus explicit snapshot save and read

package handlers

import (
	"context"
	"net/http"
	"time"

	"essential-feed-api/api/dto/mappers"
	"essential-feed-api/api/dto/responses"
	"essential-feed-api/core/domain"
	"essential-feed-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	loader  interfaces.FeedLoader
	feedURL string
	store   interfaces.SnapshotStore
	logger  interfaces.Logger
	now     func() time.Time
}

// NewFeedHandler creates a new feed handler. store may be nil, in which case
// the snapshot endpoints answer 503.
func NewFeedHandler(loader interfaces.FeedLoader, feedURL string, store interfaces.SnapshotStore, logger interfaces.Logger) *FeedHandler {
	return &FeedHandler{
		loader:  loader,
		feedURL: feedURL,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "loadFeed",
		Method:      http.MethodGet,
		Path:        "/feed",
		Summary:     "Load the feed",
		Description: "Fetches the configured feed once and returns its items in source order",
		Tags:        []string{"Feed"},
	}, h.LoadFeed)

	huma.Register(api, huma.Operation{
		OperationID: "getSnapshot",
		Method:      http.MethodGet,
		Path:        "/feed/snapshot",
		Summary:     "Get the last saved snapshot",
		Description: "Returns the items saved by the last successful POST /feed/snapshot",
		Tags:        []string{"Snapshots"},
	}, h.GetSnapshot)

	huma.Register(api, huma.Operation{
		OperationID:   "saveSnapshot",
		Method:        http.MethodPost,
		Path:          "/feed/snapshot",
		Summary:       "Load the feed and save a snapshot",
		Description:   "Performs one load and stores the result; nothing is stored when the load fails",
		Tags:          []string{"Snapshots"},
		DefaultStatus: http.StatusCreated,
	}, h.SaveSnapshot)
}

// LoadFeedOutput defines the output for the LoadFeed operation
type LoadFeedOutput struct {
	Body responses.FeedResponse
}

// SnapshotOutput defines the output for the snapshot operations
type SnapshotOutput struct {
	Body responses.SnapshotResponse
}

// LoadFeed handles the GET /feed endpoint
func (h *FeedHandler) LoadFeed(ctx context.Context, input *struct{}) (*LoadFeedOutput, error) {
	items, err := h.loader.Load(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &LoadFeedOutput{Body: *mappers.ToFeedResponse(h.feedURL, items)}, nil
}

// GetSnapshot handles the GET /feed/snapshot endpoint
func (h *FeedHandler) GetSnapshot(ctx context.Context, input *struct{}) (*SnapshotOutput, error) {
	if h.store == nil {
		return nil, huma.Error503ServiceUnavailable("Snapshot store is not configured")
	}

	snapshot, err := h.store.Latest(ctx, h.feedURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SnapshotOutput{Body: *mappers.ToSnapshotResponse(snapshot)}, nil
}

// SaveSnapshot handles the POST /feed/snapshot endpoint
func (h *FeedHandler) SaveSnapshot(ctx context.Context, input *struct{}) (*SnapshotOutput, error) {
	if h.store == nil {
		return nil, huma.Error503ServiceUnavailable("Snapshot store is not configured")
	}

	items, err := h.loader.Load(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	snapshot, err := domain.NewSnapshot(h.feedURL, items, h.now().UTC())
	if err != nil {
		return nil, toHumaError(err)
	}

	if err := h.store.Save(ctx, snapshot); err != nil {
		if h.logger != nil {
			h.logger.Error("Failed to save snapshot", map[string]interface{}{
				"url":   h.feedURL,
				"error": err.Error(),
			})
		}
		return nil, huma.Error500InternalServerError("Failed to save snapshot")
	}

	return &SnapshotOutput{Body: *mappers.ToSnapshotResponse(snapshot)}, nil
}
