package models

import (
	"bytes"
	"fmt"
	"time"
)

// FlexBool is a bool that tolerates the backend's loose serialization of
// RemoveAllBeforeInsert: JSON true/false, "true"/"false", 1/0 and "1"/"0"
// all decode successfully.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	switch s {
	case "true", "True", "1":
		*f = true
	case "false", "False", "0", "null", "":
		*f = false
	default:
		return fmt.Errorf("cannot decode %q as bool", s)
	}
	return nil
}

func (f FlexBool) Bool() bool { return bool(f) }

// EntityDelta is the per-entity-kind slice of a sync response: the records
// created or updated since the reference point, the identifiers removed, and
// a flag ordering the client to drop its whole collection first (full
// replace, used when the cache epoch changes).
type EntityDelta[T Record] struct {
	RemoveAllBeforeInsert FlexBool `json:"RemoveAllBeforeInsert"`
	ChangedEntities       []T      `json:"ChangedEntities,omitempty"`
	DeletedEntities       []string `json:"DeletedEntities,omitempty"`
}

// SyncResponse is the payload of GET /Api/Sync. One EntityDelta per entity
// kind; CurrentDateTimeUtc becomes the client's next "since" reference.
type SyncResponse struct {
	ConventionIdentifier string     `json:"ConventionIdentifier"`
	Since                *time.Time `json:"Since,omitempty"`
	CurrentDateTimeUtc   time.Time  `json:"CurrentDateTimeUtc"`
	State                string     `json:"State"`

	Events               EntityDelta[Event]          `json:"Events"`
	EventConferenceDays  EntityDelta[EventDay]       `json:"EventConferenceDays"`
	EventConferenceRooms EntityDelta[EventRoom]      `json:"EventConferenceRooms"`
	EventConferenceTracks EntityDelta[EventTrack]    `json:"EventConferenceTracks"`
	KnowledgeGroups      EntityDelta[KnowledgeGroup] `json:"KnowledgeGroups"`
	KnowledgeEntries     EntityDelta[KnowledgeEntry] `json:"KnowledgeEntries"`
	Images               EntityDelta[Image]          `json:"Images"`
	Dealers              EntityDelta[Dealer]         `json:"Dealers"`
	Announcements        EntityDelta[Announcement]   `json:"Announcements"`
	Maps                 EntityDelta[Map]            `json:"Maps"`
}

// Validate rejects responses that are structurally unusable before any merge
// begins. A malformed response must never be partially applied.
func (r SyncResponse) Validate() error {
	if r.ConventionIdentifier == "" {
		return fmt.Errorf("sync response missing ConventionIdentifier")
	}
	if r.CurrentDateTimeUtc.IsZero() {
		return fmt.Errorf("sync response missing CurrentDateTimeUtc")
	}
	return nil
}
