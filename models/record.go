package models

import "time"

// Record is implemented by every synchronized entity. The Key is the
// backend-assigned identifier, unique within one entity kind. Tombstone
// reports the wire-level soft-delete flag; tombstoned records are removed
// from the local cache instead of being stored.
type Record interface {
	Key() string
	Tombstone() bool
}

// RecordBase carries the fields shared by all synchronized entities.
// Embed it in every record type.
type RecordBase struct {
	Id                    string    `json:"Id"`
	LastChangeDateTimeUtc time.Time `json:"LastChangeDateTimeUtc"`
	IsDeleted             int       `json:"IsDeleted"`
}

func (r RecordBase) Key() string { return r.Id }

func (r RecordBase) Tombstone() bool { return r.IsDeleted != 0 }
