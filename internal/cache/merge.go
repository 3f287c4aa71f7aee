package cache

import "github.com/meridiancon/companion-sync/models"

// ApplyDelta applies one entity kind's slice of a sync response to its
// collection. The order is fixed and load-bearing:
//
//  1. clear the collection when RemoveAllBeforeInsert is set (full replace),
//  2. upsert changed records, transformed if a transform is given,
//  3. remove deleted identifiers.
//
// Applying deletes after upserts makes deletion win when an identifier
// appears in both lists of the same delta. Changed records carrying the
// wire-level soft-delete flag are removed rather than stored, so the cache
// never holds tombstones. Applying the same delta twice is idempotent.
func ApplyDelta[T models.Record](c *Collection[T], delta models.EntityDelta[T], transform func(T) T) {
	if delta.RemoveAllBeforeInsert.Bool() {
		c.RemoveAll()
	}

	if len(delta.ChangedEntities) > 0 {
		changed := make([]T, 0, len(delta.ChangedEntities))
		var tombstoned []string
		for _, record := range delta.ChangedEntities {
			if transform != nil {
				record = transform(record)
			}
			if record.Tombstone() {
				tombstoned = append(tombstoned, record.Key())
				continue
			}
			changed = append(changed, record)
		}
		c.UpsertMany(changed...)
		c.RemoveMany(tombstoned...)
	}

	if len(delta.DeletedEntities) > 0 {
		c.RemoveMany(delta.DeletedEntities...)
	}
}
