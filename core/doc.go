// Package core contains the business logic for loading a remote image feed.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: pure domain models (FeedItem, Snapshot)
// - feed: the remote loader, the items mapper and the wire encoder
// - errors: the two load failure kinds plus detail error types
// - interfaces: contracts for external dependencies (HTTP, store, logger)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - A load is one round trip; there is no cache, retry or background refresh
// - Callers only ever see ErrConnectivity or ErrInvalidData from a load
//
// # Usage Example
//
//	import (
//	    "essential-feed-api/core/feed"
//	    "essential-feed-api/infrastructure/http/standard"
//	)
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	loader := feed.NewRemoteFeedLoader("https://example.com/feed", client)
//
//	items, err := loader.Load(ctx)
//	switch {
//	case errors.IsConnectivity(err):
//	    // the request did not complete
//	case errors.IsInvalidData(err):
//	    // the response was not a valid feed
//	}
package core
