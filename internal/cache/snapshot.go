package cache

import (
	"encoding/json"
	"fmt"

	"github.com/meridiancon/companion-sync/models"
)

// Snapshot is the serialized form of a Store: kind name to a plain
// identifier-to-record map. It is what the persistence layer writes to disk
// and what the store is rebuilt from at startup.
type Snapshot map[string]map[string]json.RawMessage

// Snapshot serializes every collection.
func (s *Store) Snapshot() (Snapshot, error) {
	snap := make(Snapshot, 11)

	var err error
	put := func(kind string, items map[string]json.RawMessage, e error) {
		if err == nil && e != nil {
			err = fmt.Errorf("snapshot %s: %w", kind, e)
			return
		}
		snap[kind] = items
	}

	items, e := marshalItems(s.Events)
	put(KindEvents, items, e)
	items, e = marshalItems(s.EventConferenceDays)
	put(KindEventConferenceDays, items, e)
	items, e = marshalItems(s.EventConferenceRooms)
	put(KindEventConferenceRooms, items, e)
	items, e = marshalItems(s.EventConferenceTracks)
	put(KindEventConferenceTracks, items, e)
	items, e = marshalItems(s.KnowledgeGroups)
	put(KindKnowledgeGroups, items, e)
	items, e = marshalItems(s.KnowledgeEntries)
	put(KindKnowledgeEntries, items, e)
	items, e = marshalItems(s.Images)
	put(KindImages, items, e)
	items, e = marshalItems(s.Dealers)
	put(KindDealers, items, e)
	items, e = marshalItems(s.Announcements)
	put(KindAnnouncements, items, e)
	items, e = marshalItems(s.Maps)
	put(KindMaps, items, e)
	items, e = marshalItems(s.Communications)
	put(KindCommunications, items, e)

	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Restore replaces the store contents with the given snapshot. Kinds absent
// from the snapshot come up empty. Undecodable records fail the whole
// restore; the caller falls back to a full sync in that case.
func (s *Store) Restore(snap Snapshot) error {
	s.Reset()

	if err := restoreItems(s.Events, snap[KindEvents]); err != nil {
		return fmt.Errorf("restore %s: %w", KindEvents, err)
	}
	if err := restoreItems(s.EventConferenceDays, snap[KindEventConferenceDays]); err != nil {
		return fmt.Errorf("restore %s: %w", KindEventConferenceDays, err)
	}
	if err := restoreItems(s.EventConferenceRooms, snap[KindEventConferenceRooms]); err != nil {
		return fmt.Errorf("restore %s: %w", KindEventConferenceRooms, err)
	}
	if err := restoreItems(s.EventConferenceTracks, snap[KindEventConferenceTracks]); err != nil {
		return fmt.Errorf("restore %s: %w", KindEventConferenceTracks, err)
	}
	if err := restoreItems(s.KnowledgeGroups, snap[KindKnowledgeGroups]); err != nil {
		return fmt.Errorf("restore %s: %w", KindKnowledgeGroups, err)
	}
	if err := restoreItems(s.KnowledgeEntries, snap[KindKnowledgeEntries]); err != nil {
		return fmt.Errorf("restore %s: %w", KindKnowledgeEntries, err)
	}
	if err := restoreItems(s.Images, snap[KindImages]); err != nil {
		return fmt.Errorf("restore %s: %w", KindImages, err)
	}
	if err := restoreItems(s.Dealers, snap[KindDealers]); err != nil {
		return fmt.Errorf("restore %s: %w", KindDealers, err)
	}
	if err := restoreItems(s.Announcements, snap[KindAnnouncements]); err != nil {
		return fmt.Errorf("restore %s: %w", KindAnnouncements, err)
	}
	if err := restoreItems(s.Maps, snap[KindMaps]); err != nil {
		return fmt.Errorf("restore %s: %w", KindMaps, err)
	}
	if err := restoreItems(s.Communications, snap[KindCommunications]); err != nil {
		return fmt.Errorf("restore %s: %w", KindCommunications, err)
	}

	return nil
}

func marshalItems[T models.Record](c *Collection[T]) (map[string]json.RawMessage, error) {
	all := c.All()
	out := make(map[string]json.RawMessage, len(all))
	for _, item := range all {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("marshal record %s: %w", item.Key(), err)
		}
		out[item.Key()] = raw
	}
	return out, nil
}

func restoreItems[T models.Record](c *Collection[T], raw map[string]json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	records := make([]T, 0, len(raw))
	for id, payload := range raw {
		var record T
		if err := json.Unmarshal(payload, &record); err != nil {
			return fmt.Errorf("decode record %s: %w", id, err)
		}
		records = append(records, record)
	}
	c.UpsertMany(records...)
	return nil
}
