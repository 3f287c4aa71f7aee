// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"testing"
	"time"

	"github.com/meridiancon/companion-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func announcement(id, title string) models.Announcement {
	return models.Announcement{
		RecordBase: models.RecordBase{Id: id, LastChangeDateTimeUtc: time.Now().UTC()},
		Title:      title,
	}
}

func newAnnouncementCollection() *Collection[models.Announcement] {
	return NewCollection[models.Announcement](nil)
}

func collectIDs(items []models.Announcement) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Id)
	}
	return ids
}

func TestApplyDelta_UpsertAndDelete(t *testing.T) {
	c := newAnnouncementCollection()
	c.UpsertMany(announcement("keep", "old"), announcement("gone", "old"))

	ApplyDelta(c, models.EntityDelta[models.Announcement]{
		ChangedEntities: []models.Announcement{announcement("keep", "new"), announcement("added", "fresh")},
		DeletedEntities: []string{"gone"},
	}, nil)

	require.Equal(t, 2, c.Len())

	got, ok := c.Get("keep")
	require.True(t, ok)
	assert.Equal(t, "new", got.Title)

	_, ok = c.Get("gone")
	assert.False(t, ok)

	_, ok = c.Get("added")
	assert.True(t, ok)
}

func TestApplyDelta_Idempotent(t *testing.T) {
	c := newAnnouncementCollection()
	c.UpsertMany(announcement("a", "seed"), announcement("b", "seed"))

	delta := models.EntityDelta[models.Announcement]{
		ChangedEntities: []models.Announcement{announcement("a", "changed"), announcement("c", "new")},
		DeletedEntities: []string{"b"},
	}

	ApplyDelta(c, delta, nil)
	once := c.All()

	ApplyDelta(c, delta, nil)
	twice := c.All()

	assert.Equal(t, once, twice)
}

func TestApplyDelta_DeleteWins(t *testing.T) {
	c := newAnnouncementCollection()

	ApplyDelta(c, models.EntityDelta[models.Announcement]{
		ChangedEntities: []models.Announcement{announcement("both", "changed")},
		DeletedEntities: []string{"both"},
	}, nil)

	_, ok := c.Get("both")
	assert.False(t, ok, "id present in both lists must end up deleted")
	assert.Equal(t, 0, c.Len())
}

func TestApplyDelta_FullReplace(t *testing.T) {
	c := newAnnouncementCollection()
	c.UpsertMany(announcement("stale-1", "x"), announcement("stale-2", "x"), announcement("survivor", "old"))

	ApplyDelta(c, models.EntityDelta[models.Announcement]{
		RemoveAllBeforeInsert: true,
		ChangedEntities:       []models.Announcement{announcement("survivor", "new"), announcement("fresh", "new")},
	}, nil)

	assert.ElementsMatch(t, []string{"survivor", "fresh"}, collectIDs(c.All()))

	got, _ := c.Get("survivor")
	assert.Equal(t, "new", got.Title, "survivor must carry the delta's version, not the stale one")
}

func TestApplyDelta_TombstonedChangeIsRemoved(t *testing.T) {
	c := newAnnouncementCollection()
	c.UpsertMany(announcement("doomed", "old"))

	tombstone := announcement("doomed", "irrelevant")
	tombstone.IsDeleted = 1

	ApplyDelta(c, models.EntityDelta[models.Announcement]{
		ChangedEntities: []models.Announcement{tombstone},
	}, nil)

	_, ok := c.Get("doomed")
	assert.False(t, ok, "soft-deleted wire records must be hard-removed")
}

func TestApplyDelta_Transform(t *testing.T) {
	c := newAnnouncementCollection()

	ApplyDelta(c, models.EntityDelta[models.Announcement]{
		ChangedEntities: []models.Announcement{announcement("a", "raw")},
	}, func(a models.Announcement) models.Announcement {
		a.Title = "stamped"
		return a
	})

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "stamped", got.Title)
}

func TestApplyDelta_UniqueKeys(t *testing.T) {
	c := newAnnouncementCollection()

	ApplyDelta(c, models.EntityDelta[models.Announcement]{
		ChangedEntities: []models.Announcement{announcement("dup", "first"), announcement("dup", "second")},
	}, nil)

	require.Equal(t, 1, c.Len())
	got, _ := c.Get("dup")
	assert.Equal(t, "second", got.Title, "last write wins")
}

func TestApplyDelta_RemoveMissingIsNoop(t *testing.T) {
	c := newAnnouncementCollection()
	c.UpsertMany(announcement("a", "x"))

	ApplyDelta(c, models.EntityDelta[models.Announcement]{
		DeletedEntities: []string{"never-existed"},
	}, nil)

	assert.Equal(t, 1, c.Len())
}
