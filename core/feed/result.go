package feed

import (
	"context"

	"essential-feed-api/core/domain"
	coreerrors "essential-feed-api/core/errors"
)

// Result is the outcome of one load: either Items or Err is meaningful.
// Err, when set, is always one of the two domain sentinels.
type Result struct {
	Items []domain.FeedItem
	Err   error
}

// Kind reports the failure kind, or coreerrors.KindNone on success
func (r Result) Kind() coreerrors.Kind {
	return coreerrors.KindOf(r.Err)
}

// Succeeded reports whether the load produced items
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// LoadAsync runs Load on its own goroutine. The returned channel delivers
// exactly one Result and is then closed. Cancelling ctx is forwarded to the
// transport; what a cancelled round trip reports is up to the transport.
func (l *RemoteFeedLoader) LoadAsync(ctx context.Context) <-chan Result {
	results := make(chan Result, 1)

	go func() {
		defer close(results)
		items, err := l.Load(ctx)
		results <- Result{Items: items, Err: err}
	}()

	return results
}
