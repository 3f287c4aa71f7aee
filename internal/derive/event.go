package derive

import (
	"slices"

	"github.com/meridiancon/companion-sync/models"
)

// PartOfDay buckets an event's start into a coarse daypart for grouping in
// the schedule UI.
type PartOfDay string

const (
	Morning   PartOfDay = "morning"
	Afternoon PartOfDay = "afternoon"
	Evening   PartOfDay = "evening"
	Night     PartOfDay = "night"
)

// Access-restriction and category tags the backend stamps on events.
const (
	tagSuperSponsorOnly = "supersponsors_only"
	tagSponsorOnly      = "sponsors_only"
	tagMaskRequired     = "mask_required"
)

// tagGlyphs maps event tags to icon names, highest priority first. The
// event's Glyph is the first matching entry; Badges collects all matches in
// this order. Sponsor tiers outrank category tags.
var tagGlyphs = []struct {
	Tag   string
	Glyph string
}{
	{tagSuperSponsorOnly, "star-circle"},
	{tagSponsorOnly, "star"},
	{"ticket_required", "ticket"},
	{"main_stage", "bank"},
	{"signing", "draw"},
	{"stage", "theater"},
	{"photoshoot", "camera"},
	{tagMaskRequired, "face-mask"},
}

// EventDetails is an event joined against its day, room, track and images,
// plus flags and icons derived from its tags. Unresolvable references stay
// nil; that is the normal state during a partial sync.
type EventDetails struct {
	models.Event

	ConferenceDay   *models.EventDay
	ConferenceRoom  *models.EventRoom
	ConferenceTrack *models.EventTrack
	Poster          *ImageDetails
	Banner          *ImageDetails

	PartOfDay        PartOfDay
	SuperSponsorOnly bool
	SponsorOnly      bool
	MaskRequired     bool
	Glyph            string
	Badges           []string
}

// EventDetails derives the projection for a single event id.
func (d *Deriver) EventDetails(id string) (EventDetails, bool) {
	ev, ok := d.store.Events.Get(id)
	if !ok {
		return EventDetails{}, false
	}
	return d.eventDetails(ev), true
}

// AllEventDetails derives the full ordered event list. Memoized until any
// of the joined collections changes.
func (d *Deriver) AllEventDetails() []EventDetails {
	versions := []uint64{
		d.store.Events.Version(),
		d.store.EventConferenceDays.Version(),
		d.store.EventConferenceRooms.Version(),
		d.store.EventConferenceTracks.Version(),
		d.store.Images.Version(),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.eventsMemo.get(versions); ok {
		return cached
	}

	events := d.store.Events.All()
	out := make([]EventDetails, 0, len(events))
	for _, ev := range events {
		out = append(out, d.eventDetails(ev))
	}
	d.eventsMemo.put(versions, out)
	return out
}

func (d *Deriver) eventDetails(ev models.Event) EventDetails {
	details := EventDetails{
		Event:     ev,
		Poster:    d.resolveImage(ev.PosterImageId),
		Banner:    d.resolveImage(ev.BannerImageId),
		PartOfDay: d.partOfDay(ev),
	}

	if day, ok := d.store.EventConferenceDays.Get(ev.ConferenceDayId); ok {
		details.ConferenceDay = &day
	}
	if room, ok := d.store.EventConferenceRooms.Get(ev.ConferenceRoomId); ok {
		details.ConferenceRoom = &room
	}
	if track, ok := d.store.EventConferenceTracks.Get(ev.ConferenceTrackId); ok {
		details.ConferenceTrack = &track
	}

	details.SuperSponsorOnly = slices.Contains(ev.Tags, tagSuperSponsorOnly)
	details.SponsorOnly = slices.Contains(ev.Tags, tagSponsorOnly)
	details.MaskRequired = slices.Contains(ev.Tags, tagMaskRequired)

	for _, tg := range tagGlyphs {
		if !slices.Contains(ev.Tags, tg.Tag) {
			continue
		}
		if details.Glyph == "" {
			details.Glyph = tg.Glyph
		}
		details.Badges = append(details.Badges, tg.Glyph)
	}

	return details
}

// partOfDay buckets by the event's local wall-clock start hour:
// 06-12 morning, 13-16 afternoon, 17-20 evening, everything else night.
func (d *Deriver) partOfDay(ev models.Event) PartOfDay {
	hour := ev.StartDateTimeUtc.In(d.location).Hour()
	switch {
	case hour >= 6 && hour < 13:
		return Morning
	case hour >= 13 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}
