// ABOUTME: Functional options for configuring a RemoteFeedLoader
// ABOUTME: Replaces the decoder, the decode policy or the logger at construction time

package feed

import "essential-feed-api/core/interfaces"

// Option configures a RemoteFeedLoader
type Option func(*RemoteFeedLoader)

// WithDecoder sets a custom decoder implementation
func WithDecoder(decoder interfaces.ItemsDecoder) Option {
	return func(l *RemoteFeedLoader) {
		if decoder != nil {
			l.decoder = decoder
		}
	}
}

// WithDecodePolicy uses the standard ItemsMapper with the given policy
func WithDecodePolicy(policy DecodePolicy) Option {
	return func(l *RemoteFeedLoader) {
		l.decoder = NewItemsMapper(policy)
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(l *RemoteFeedLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}
