package cache

import (
	"strings"

	"github.com/meridiancon/companion-sync/models"
)

// Entity kind names. Used as snapshot keys and in logs; the delta kinds
// match the field names of the sync response.
const (
	KindEvents                = "Events"
	KindEventConferenceDays   = "EventConferenceDays"
	KindEventConferenceRooms  = "EventConferenceRooms"
	KindEventConferenceTracks = "EventConferenceTracks"
	KindKnowledgeGroups       = "KnowledgeGroups"
	KindKnowledgeEntries      = "KnowledgeEntries"
	KindImages                = "Images"
	KindDealers               = "Dealers"
	KindAnnouncements         = "Announcements"
	KindMaps                  = "Maps"
	KindCommunications        = "Communications"
)

// Store holds one normalized collection per synchronized entity kind. It is
// the only shared mutable state of the cache core: the sync orchestrator
// writes it through ApplyDelta, everything else reads.
//
// Construct with NewStore; a Store is safe for concurrent readers and a
// single writer per collection.
type Store struct {
	Events                *Collection[models.Event]
	EventConferenceDays   *Collection[models.EventDay]
	EventConferenceRooms  *Collection[models.EventRoom]
	EventConferenceTracks *Collection[models.EventTrack]
	KnowledgeGroups       *Collection[models.KnowledgeGroup]
	KnowledgeEntries      *Collection[models.KnowledgeEntry]
	Images                *Collection[models.Image]
	Dealers               *Collection[models.Dealer]
	Announcements         *Collection[models.Announcement]
	Maps                  *Collection[models.Map]
	Communications        *Collection[models.Communication]
}

// NewStore creates an empty store with the read-time ordering each entity
// kind is presented in: events by start time, dealers by display name,
// announcements and messages newest first, curated content by its explicit
// order field.
func NewStore() *Store {
	return &Store{
		Events: NewCollection(func(a, b models.Event) bool {
			if !a.StartDateTimeUtc.Equal(b.StartDateTimeUtc) {
				return a.StartDateTimeUtc.Before(b.StartDateTimeUtc)
			}
			return a.Title < b.Title
		}),
		EventConferenceDays: NewCollection(func(a, b models.EventDay) bool {
			return a.Date.Before(b.Date)
		}),
		EventConferenceRooms: NewCollection(func(a, b models.EventRoom) bool {
			return a.Name < b.Name
		}),
		EventConferenceTracks: NewCollection(func(a, b models.EventTrack) bool {
			return a.Name < b.Name
		}),
		KnowledgeGroups: NewCollection(func(a, b models.KnowledgeGroup) bool {
			return a.Order < b.Order
		}),
		KnowledgeEntries: NewCollection(func(a, b models.KnowledgeEntry) bool {
			return a.Order < b.Order
		}),
		Images: NewCollection(func(a, b models.Image) bool {
			return a.Id < b.Id
		}),
		Dealers: NewCollection(func(a, b models.Dealer) bool {
			return strings.ToLower(displayName(a)) < strings.ToLower(displayName(b))
		}),
		Announcements: NewCollection(func(a, b models.Announcement) bool {
			return a.ValidFromDateTimeUtc.After(b.ValidFromDateTimeUtc)
		}),
		Maps: NewCollection(func(a, b models.Map) bool {
			return a.Order < b.Order
		}),
		Communications: NewCollection(func(a, b models.Communication) bool {
			return a.CreatedDateTimeUtc.After(b.CreatedDateTimeUtc)
		}),
	}
}

func displayName(d models.Dealer) string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.AttendeeNickname
}

// ApplySyncResponse merges every entity kind's delta into its collection.
// This is phase one of a sync cycle: no derivation reads happen here, so
// cross-kind joins only ever observe a fully merged response. The order the
// per-kind deltas are applied in carries no meaning.
func (s *Store) ApplySyncResponse(resp models.SyncResponse) {
	ApplyDelta(s.Events, resp.Events, normalizeEvent)
	ApplyDelta(s.EventConferenceDays, resp.EventConferenceDays, nil)
	ApplyDelta(s.EventConferenceRooms, resp.EventConferenceRooms, nil)
	ApplyDelta(s.EventConferenceTracks, resp.EventConferenceTracks, nil)
	ApplyDelta(s.KnowledgeGroups, resp.KnowledgeGroups, nil)
	ApplyDelta(s.KnowledgeEntries, resp.KnowledgeEntries, nil)
	ApplyDelta(s.Images, resp.Images, nil)
	ApplyDelta(s.Dealers, resp.Dealers, nil)
	ApplyDelta(s.Announcements, resp.Announcements, nil)
	ApplyDelta(s.Maps, resp.Maps, nil)
}

// normalizeEvent stamps derived-friendly defaults on an incoming event so
// downstream code never branches on nil tags.
func normalizeEvent(e models.Event) models.Event {
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e
}

// Reset clears every collection. Versions keep growing, so memoized readers
// notice the wipe.
func (s *Store) Reset() {
	s.Events.RemoveAll()
	s.EventConferenceDays.RemoveAll()
	s.EventConferenceRooms.RemoveAll()
	s.EventConferenceTracks.RemoveAll()
	s.KnowledgeGroups.RemoveAll()
	s.KnowledgeEntries.RemoveAll()
	s.Images.RemoveAll()
	s.Dealers.RemoveAll()
	s.Announcements.RemoveAll()
	s.Maps.RemoveAll()
	s.Communications.RemoveAll()
}
