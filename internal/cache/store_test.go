// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/meridiancon/companion-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(id, title string, start time.Time) models.Event {
	return models.Event{
		RecordBase:       models.RecordBase{Id: id, LastChangeDateTimeUtc: start},
		Title:            title,
		StartDateTimeUtc: start,
	}
}

func TestStore_ApplySyncResponse(t *testing.T) {
	s := NewStore()
	day := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	s.ApplySyncResponse(models.SyncResponse{
		ConventionIdentifier: "MC2026",
		CurrentDateTimeUtc:   day,
		Events: models.EntityDelta[models.Event]{
			ChangedEntities: []models.Event{
				event("ev-2", "Closing", day.Add(2*time.Hour)),
				event("ev-1", "Opening", day),
			},
		},
		Dealers: models.EntityDelta[models.Dealer]{
			ChangedEntities: []models.Dealer{
				{RecordBase: models.RecordBase{Id: "d-1"}, DisplayName: "Zeta Prints"},
				{RecordBase: models.RecordBase{Id: "d-2"}, DisplayName: "alpha ink"},
			},
		},
	})

	events := s.Events.All()
	require.Len(t, events, 2)
	assert.Equal(t, "Opening", events[0].Title, "events are ordered by start time")

	dealers := s.Dealers.All()
	require.Len(t, dealers, 2)
	assert.Equal(t, "alpha ink", dealers[0].DisplayName, "dealer order is case-insensitive by display name")
}

func TestStore_ApplySyncResponse_StampsEventTags(t *testing.T) {
	s := NewStore()

	s.ApplySyncResponse(models.SyncResponse{
		Events: models.EntityDelta[models.Event]{
			ChangedEntities: []models.Event{event("ev-1", "Untagged", time.Now().UTC())},
		},
	})

	got, ok := s.Events.Get("ev-1")
	require.True(t, ok)
	assert.NotNil(t, got.Tags)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Events.UpsertMany(event("ev-1", "x", time.Now().UTC()))
	s.Communications.UpsertMany(models.Communication{RecordBase: models.RecordBase{Id: "m-1"}})
	eventsVersion := s.Events.Version()

	s.Reset()

	assert.Equal(t, 0, s.Events.Len())
	assert.Equal(t, 0, s.Communications.Len())
	assert.Greater(t, s.Events.Version(), eventsVersion, "reset must be visible to version watchers")
}

func TestStore_SnapshotRestore(t *testing.T) {
	src := NewStore()
	start := time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC)
	src.Events.UpsertMany(event("ev-1", "Concert", start))
	src.Dealers.UpsertMany(models.Dealer{RecordBase: models.RecordBase{Id: "d-1"}, DisplayName: "Foxworks"})
	src.Announcements.UpsertMany(announcement("a-1", "Doors open"))

	snap, err := src.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap, 11, "every kind appears in the snapshot, empty ones included")

	dst := NewStore()
	require.NoError(t, dst.Restore(snap))

	got, ok := dst.Events.Get("ev-1")
	require.True(t, ok)
	assert.Equal(t, "Concert", got.Title)
	assert.True(t, got.StartDateTimeUtc.Equal(start))
	assert.Equal(t, 1, dst.Dealers.Len())
	assert.Equal(t, 1, dst.Announcements.Len())
	assert.Equal(t, 0, dst.Maps.Len())
}

func TestStore_Restore_BadPayload(t *testing.T) {
	s := NewStore()
	s.Events.UpsertMany(event("ev-1", "stale", time.Now().UTC()))

	err := s.Restore(Snapshot{
		KindEvents: {"broken": json.RawMessage(`{"Id":`)},
	})
	require.Error(t, err)
	assert.Equal(t, 0, s.Events.Len(), "a failed restore never leaves partial state behind")
}

func TestCollection_AllNeverNil(t *testing.T) {
	c := NewCollection[models.Event](nil)
	assert.NotNil(t, c.All())
	assert.Empty(t, c.All())
}
