package store

import (
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/meridiancon/companion-sync/models"
)

// The metadata table is a single-row table; this is its fixed key.
const metadataRowID = 1

func buildSelectAllRecordsQuery() (string, []any, error) {
	return sq.Select("kind", "id", "payload").
		From("cache_records").
		ToSql()
}

func buildDeleteAllRecordsQuery() (string, []any, error) {
	return sq.Delete("cache_records").ToSql()
}

// buildInsertRecordsQuery produces one multi-row insert for every record of
// a single entity kind. Callers must not pass an empty items map.
func buildInsertRecordsQuery(kind string, items map[string]json.RawMessage) (string, []any, error) {
	builder := sq.Insert("cache_records").Columns("kind", "id", "payload")
	for id, payload := range items {
		builder = builder.Values(kind, id, string(payload))
	}
	return builder.ToSql()
}

func buildUpsertMetadataQuery(meta models.SyncMetadata) (string, []any, error) {
	return sq.Insert("sync_metadata").
		Columns("id", "convention_identifier", "cache_schema_version", "last_synchronized_utc", "sync_state").
		Values(metadataRowID, meta.ConventionIdentifier, meta.CacheSchemaVersion, meta.LastSynchronizedUtc.UTC().Format(time.RFC3339), meta.SyncState).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			convention_identifier = excluded.convention_identifier,
			cache_schema_version = excluded.cache_schema_version,
			last_synchronized_utc = excluded.last_synchronized_utc,
			sync_state = excluded.sync_state`).
		ToSql()
}

func buildSelectMetadataQuery() (string, []any, error) {
	return sq.Select("convention_identifier", "cache_schema_version", "last_synchronized_utc", "sync_state").
		From("sync_metadata").
		Where(sq.Eq{"id": metadataRowID}).
		ToSql()
}

func buildDeleteMetadataQuery() (string, []any, error) {
	return sq.Delete("sync_metadata").ToSql()
}
