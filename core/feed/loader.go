// ABOUTME: RemoteFeedLoader fetches a feed over the injected transport and decodes it
// ABOUTME: Coerces every failure into one of the two domain error kinds

package feed

import (
	"context"

	"essential-feed-api/core/domain"
	coreerrors "essential-feed-api/core/errors"
	"essential-feed-api/core/interfaces"
)

// RemoteFeedLoader loads the items published at a single URL.
// It holds no state between calls: every Load is one independent round trip.
type RemoteFeedLoader struct {
	url     string
	client  interfaces.HTTPClient
	decoder interfaces.ItemsDecoder
	logger  interfaces.Logger
}

// NewRemoteFeedLoader creates a loader for url using client as transport.
// The loader does not own client and never closes it.
func NewRemoteFeedLoader(url string, client interfaces.HTTPClient, opts ...Option) *RemoteFeedLoader {
	l := &RemoteFeedLoader{
		url:     url,
		client:  client,
		decoder: NewItemsMapper(AbortOnInvalidItem),
		logger:  nopLogger{},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// URL returns the resource the loader fetches
func (l *RemoteFeedLoader) URL() string {
	return l.url
}

// Load performs one fetch-validate-decode cycle. It returns
// coreerrors.ErrConnectivity when the round trip fails and
// coreerrors.ErrInvalidData when the response is rejected; the decoder is
// never invoked after a transport failure.
func (l *RemoteFeedLoader) Load(ctx context.Context) ([]domain.FeedItem, error) {
	if l.client == nil {
		l.logger.Error("Feed loader has no HTTP client", map[string]interface{}{
			"url": l.url,
		})
		return nil, coreerrors.ErrConnectivity
	}

	l.logger.Debug("Fetching feed", map[string]interface{}{
		"url": l.url,
	})

	resp, err := l.client.Get(ctx, l.url)
	if err != nil || resp == nil {
		fields := map[string]interface{}{"url": l.url}
		if err != nil {
			fields["error"] = err.Error()
		}
		l.logger.Warn("Feed request failed", fields)
		return nil, coreerrors.ErrConnectivity
	}

	items, err := l.decoder.Decode(resp.Body(), resp.StatusCode())
	if err != nil {
		l.logger.Warn("Feed response rejected", map[string]interface{}{
			"url":    l.url,
			"status": resp.StatusCode(),
			"error":  err.Error(),
		})
		return nil, coreerrors.ErrInvalidData
	}

	l.logger.Debug("Feed loaded", map[string]interface{}{
		"url":   l.url,
		"items": len(items),
	})

	return items, nil
}

// nopLogger is used when no logger is injected
type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
