package service

import (
	"context"
	"time"

	"github.com/meridiancon/companion-sync/models"
)

// SyncService defines the client-side contract for keeping the local entity
// cache in step with the backend.
type SyncService interface {
	// Synchronize runs one sync cycle: it picks the incremental or full
	// path based on the stored metadata, fetches the delta, merges every
	// entity kind into the cache, then persists the snapshot and updated
	// metadata. A call arriving while a cycle is in flight does not start
	// a second one; it queues a single re-run that the current cycle
	// executes before returning. On failure the cache, metadata and
	// persisted state are left untouched.
	Synchronize(ctx context.Context) error

	// RefreshCommunications replaces the private-message collection with
	// the authenticated endpoint's current list. Requires a bearer token
	// to have been set; returns adapter.ErrUnauthorized otherwise.
	RefreshCommunications(ctx context.Context) error

	// ResetCache clears every collection and the persisted state and
	// returns the sync metadata to its first-launch epoch value. The next
	// Synchronize takes the full path.
	ResetCache(ctx context.Context) error

	// Restore loads the persisted snapshot and metadata into the cache at
	// startup. A missing or undecodable snapshot is not an error; the
	// cache simply comes up empty and the next sync runs full.
	Restore(ctx context.Context) error

	// SetToken installs the bearer token used by authenticated calls.
	SetToken(token string) error

	// Metadata returns a copy of the current sync metadata.
	Metadata() models.SyncMetadata
}

// SyncJob defines the contract for a background worker that periodically
// triggers Synchronize.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
