// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"testing"
	"time"

	"github.com/meridiancon/companion-sync/internal/cache"
	"github.com/meridiancon/companion-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveAnnouncements_WindowFilter(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	store := cache.NewStore()
	d := NewDeriver(store, "https://api.example.org", time.UTC, func() time.Time { return now })

	window := func(id string, from, until time.Time) models.Announcement {
		return models.Announcement{
			RecordBase:            models.RecordBase{Id: id},
			Title:                 id,
			ValidFromDateTimeUtc:  from,
			ValidUntilDateTimeUtc: until,
		}
	}

	store.Announcements.UpsertMany(
		window("active", now.Add(-time.Hour), now.Add(time.Hour)),
		window("starts-now", now, now.Add(time.Hour)),
		window("expired", now.Add(-2*time.Hour), now.Add(-time.Hour)),
		window("ends-now", now.Add(-time.Hour), now),
		window("future", now.Add(time.Hour), now.Add(2*time.Hour)),
	)

	active := d.ActiveAnnouncements()
	require.Len(t, active, 2)

	ids := []string{active[0].Id, active[1].Id}
	assert.ElementsMatch(t, []string{"active", "starts-now"}, ids,
		"the window is inclusive at the start and exclusive at the end")
}

func TestAnnouncementDetails_Image(t *testing.T) {
	d, store := newTestDeriver(t)
	store.Images.UpsertMany(models.Image{RecordBase: models.RecordBase{Id: "img-1"}, ContentHashSha1: "h"})
	store.Announcements.UpsertMany(models.Announcement{
		RecordBase: models.RecordBase{Id: "a-1"},
		ImageId:    "img-1",
	})

	details, ok := d.AnnouncementDetails("a-1")
	require.True(t, ok)
	require.NotNil(t, details.Image)
	assert.Contains(t, details.Image.FullUrl, "/Images/img-1/Content/with-hash:")
}
