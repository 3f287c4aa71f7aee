// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"testing"
	"time"

	"github.com/meridiancon/companion-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerDetails_FullName(t *testing.T) {
	d, store := newTestDeriver(t)
	store.Dealers.UpsertMany(
		models.Dealer{RecordBase: models.RecordBase{Id: "d-1"}, DisplayName: "Foxworks", AttendeeNickname: "fox"},
		models.Dealer{RecordBase: models.RecordBase{Id: "d-2"}, AttendeeNickname: "badger"},
	)

	named, ok := d.DealerDetails("d-1")
	require.True(t, ok)
	assert.Equal(t, "Foxworks", named.FullName)

	fallback, ok := d.DealerDetails("d-2")
	require.True(t, ok)
	assert.Equal(t, "badger", fallback.FullName, "nickname fills in when no display name is set")
}

func TestDealerDetails_AttendanceDays(t *testing.T) {
	d, store := newTestDeriver(t)

	// 2026-08-27 is a Thursday, the 28th a Friday, the 29th a Saturday.
	store.EventConferenceDays.UpsertMany(
		models.EventDay{RecordBase: models.RecordBase{Id: "day-thu"}, Name: "Day 1", Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)},
		models.EventDay{RecordBase: models.RecordBase{Id: "day-fri"}, Name: "Day 2", Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
		models.EventDay{RecordBase: models.RecordBase{Id: "day-sat"}, Name: "Day 3", Date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
	)
	store.Dealers.UpsertMany(models.Dealer{
		RecordBase:        models.RecordBase{Id: "d-1"},
		DisplayName:       "Foxworks",
		AttendsOnThursday: true,
		AttendsOnSaturday: true,
	})

	details, ok := d.DealerDetails("d-1")
	require.True(t, ok)

	assert.Equal(t, []string{"thu", "sat"}, details.AttendanceDayNames)
	require.Len(t, details.AttendanceDays, 2)
	assert.Equal(t, "Day 1", details.AttendanceDays[0].Name)
	assert.Equal(t, "Day 3", details.AttendanceDays[1].Name)
}

func TestDealerDetails_AttendanceWithoutMatchingDay(t *testing.T) {
	d, store := newTestDeriver(t)
	store.Dealers.UpsertMany(models.Dealer{
		RecordBase:      models.RecordBase{Id: "d-1"},
		AttendsOnFriday: true,
	})

	details, ok := d.DealerDetails("d-1")
	require.True(t, ok)
	assert.Equal(t, []string{"fri"}, details.AttendanceDayNames)
	assert.Empty(t, details.AttendanceDays, "day names survive even when no conference day record matches")
}

func TestSplitShortDescription(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTable string
		wantBody  string
	}{
		{"table line with body", "Table 42\nCustom badges and prints", "Table 42", "Custom badges and prints"},
		{"table line only", "Table A-7", "Table A-7", ""},
		{"no table prefix", "Prints and stickers", "", "Prints and stickers"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, body := splitShortDescription(tt.input)
			assert.Equal(t, tt.wantTable, table)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))) // Monday
	assert.Equal(t, 6, isoWeekday(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))) // Saturday
	assert.Equal(t, 7, isoWeekday(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))) // Sunday
}
