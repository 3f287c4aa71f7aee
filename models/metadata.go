package models

import "time"

// SyncMetadata describes the provenance of the local cache. It is owned by
// the sync orchestrator and overwritten only after a delta has been applied
// in full. The stored convention identifier and schema version decide
// whether the next sync may be incremental; a mismatch on either means the
// local cache is not trustworthy and forces a full re-sync.
type SyncMetadata struct {
	ConventionIdentifier string    `json:"convention_identifier"`
	CacheSchemaVersion   int       `json:"cache_schema_version"`
	LastSynchronizedUtc  time.Time `json:"last_synchronized_utc"`
	SyncState            string    `json:"sync_state"`
}

// InitialSyncMetadata returns the first-launch state: no convention, no
// schema version, epoch timestamp. This state always routes to a full sync.
func InitialSyncMetadata() SyncMetadata {
	return SyncMetadata{LastSynchronizedUtc: time.Unix(0, 0).UTC()}
}

// Synchronized reports whether at least one successful sync has completed.
func (m SyncMetadata) Synchronized() bool {
	return !m.LastSynchronizedUtc.IsZero() && m.LastSynchronizedUtc.After(time.Unix(0, 0).UTC())
}
