package store

import (
	"context"

	"github.com/meridiancon/companion-sync/internal/cache"
	"github.com/meridiancon/companion-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// CacheRepository persists the cache between launches: the serialized
// entity collections plus the sync metadata that decides incremental vs.
// full sync. Writes happen only after a fully applied sync; reads happen
// once at startup.
type CacheRepository interface {
	// LoadSnapshot reads every persisted record, grouped by entity kind.
	// A fresh database yields an empty snapshot, not an error.
	LoadSnapshot(ctx context.Context) (cache.Snapshot, error)

	// SaveSnapshot transactionally replaces the persisted records with
	// the given snapshot and stores the metadata alongside. Either both
	// survive or neither does.
	SaveSnapshot(ctx context.Context, snap cache.Snapshot, meta models.SyncMetadata) error

	// LoadMetadata reads the persisted sync metadata. The second return
	// is false when no sync has ever been persisted.
	LoadMetadata(ctx context.Context) (models.SyncMetadata, bool, error)

	// Clear removes all persisted records and metadata, returning the
	// database to its first-launch state.
	Clear(ctx context.Context) error
}
