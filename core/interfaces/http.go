package interfaces

import "context"

// HTTPClient is the transport capability the feed loader depends on.
// Get performs exactly one round trip to url and either returns the
// complete response or an error when the round trip could not complete.
// Implementations must not retry and must be safe for concurrent use
// when a loader is shared between goroutines.
type HTTPClient interface {
	Get(ctx context.Context, url string) (Response, error)
}

// Response is a completed HTTP round trip with its body fully read.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response payload. It is never nil for a
	// successful round trip, although it may be empty.
	Body() []byte

	// Header returns the value of the specified header, or "".
	Header(key string) string
}
