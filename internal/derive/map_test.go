// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"testing"

	"github.com/meridiancon/companion-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDetails_ResolvesEntryLinks(t *testing.T) {
	d, store := newTestDeriver(t)

	store.Dealers.UpsertMany(models.Dealer{RecordBase: models.RecordBase{Id: "d-1"}, DisplayName: "Foxworks"})
	store.Maps.UpsertMany(
		models.Map{RecordBase: models.RecordBase{Id: "m-lobby"}, Description: "Lobby"},
		models.Map{
			RecordBase:  models.RecordBase{Id: "m-den"},
			Description: "Dealers' Den",
			ImageId:     "img-den",
			Entries: []models.MapEntry{
				{
					Id: "entry-1", X: 120, Y: 80, TapRadius: 24,
					Links: []models.LinkFragment{
						{FragmentType: "DealerDetail", Target: "d-1"},
						{FragmentType: "MapEntry", Target: "m-lobby"},
						{FragmentType: "WebExternal", Name: "Menu", Target: "https://example.org"},
						{FragmentType: "DealerDetail", Target: "gone"},
					},
				},
			},
		},
	)

	details, ok := d.MapDetails("m-den")
	require.True(t, ok)
	assert.Nil(t, details.Image, "dangling map image resolves to nil")
	require.Len(t, details.Entries, 1)

	links := details.Entries[0].Links
	require.Len(t, links, 4)

	require.NotNil(t, links[0].Dealer)
	assert.Equal(t, "Foxworks", links[0].Dealer.DisplayName)

	require.NotNil(t, links[1].Map)
	assert.Equal(t, "Lobby", links[1].Map.Description)

	assert.Nil(t, links[2].Dealer, "web links pass through unresolved")
	assert.Nil(t, links[2].Map)

	assert.Nil(t, links[3].Dealer, "dangling dealer target stays nil")
}

func TestAllMapDetails_Order(t *testing.T) {
	d, store := newTestDeriver(t)
	store.Maps.UpsertMany(
		models.Map{RecordBase: models.RecordBase{Id: "m-2"}, Description: "Second", Order: 2},
		models.Map{RecordBase: models.RecordBase{Id: "m-1"}, Description: "First", Order: 1},
	)

	all := d.AllMapDetails()
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Description)
	assert.Equal(t, "Second", all[1].Description)
}
