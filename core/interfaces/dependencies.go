// ABOUTME: Dependencies container provides dependency injection for process wiring
// ABOUTME: Groups the adapters built once at startup and handed to services

package interfaces

// Dependencies holds the external dependencies assembled by cmd/ entry points
type Dependencies struct {
	// HTTPClient performs feed round trips
	HTTPClient HTTPClient

	// Store persists snapshots, may be nil when snapshots are disabled
	Store SnapshotStore

	// Logger provides structured logging
	Logger Logger
}
