// ABOUTME: Standard HTTP client implementation of the feed transport capability
// ABOUTME: One round trip per Get with the body read in full before returning

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	coreerrors "essential-feed-api/core/errors"
	"essential-feed-api/core/interfaces"
)

const defaultUserAgent = "EssentialFeed/1.0"

// StandardHTTPClient implements the HTTPClient interface using net/http.
// It never retries: a failed round trip is reported to the caller as is.
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// ClientOption configures a StandardHTTPClient
type ClientOption func(*StandardHTTPClient)

// WithUserAgent overrides the User-Agent header sent with each request
func WithUserAgent(userAgent string) ClientOption {
	return func(c *StandardHTTPClient) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTransport replaces the underlying round tripper
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *StandardHTTPClient) {
		if rt != nil {
			c.client.Transport = rt
		}
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout leaves cancellation entirely to the request context.
func NewStandardHTTPClient(timeout time.Duration, opts ...ClientOption) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs one HTTP GET request. Any status code counts as a completed
// round trip; only failures to obtain a full response are returned as errors.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &coreerrors.ConnectivityError{URL: url, Cause: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &coreerrors.ConnectivityError{URL: url, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &coreerrors.ConnectivityError{URL: url, Cause: err}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       []byte
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() []byte {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
