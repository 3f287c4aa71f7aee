package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{`true`, true, false},
		{`false`, false, false},
		{`"true"`, true, false},
		{`"false"`, false, false},
		{`"True"`, true, false},
		{`1`, true, false},
		{`0`, false, false},
		{`"1"`, true, false},
		{`"0"`, false, false},
		{`null`, false, false},
		{`"yes"`, false, true},
		{`2`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f FlexBool
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Bool())
		})
	}
}

func TestSyncResponse_Decode(t *testing.T) {
	payload := `{
		"ConventionIdentifier": "MC2026",
		"CurrentDateTimeUtc": "2026-08-28T09:00:00Z",
		"State": "Live",
		"Events": {
			"RemoveAllBeforeInsert": false,
			"ChangedEntities": [
				{"Id": "ev-1", "Title": "Opening", "StartDateTimeUtc": "2026-08-27T08:00:00Z", "Tags": ["main_stage"]}
			],
			"DeletedEntities": ["ev-0"]
		},
		"Dealers": {
			"RemoveAllBeforeInsert": "true",
			"ChangedEntities": [{"Id": "d-1", "DisplayName": "Foxworks", "AttendsOnThursday": true}]
		}
	}`

	var resp SyncResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.NoError(t, resp.Validate())

	assert.Equal(t, "MC2026", resp.ConventionIdentifier)
	require.Len(t, resp.Events.ChangedEntities, 1)
	assert.Equal(t, "Opening", resp.Events.ChangedEntities[0].Title)
	assert.Equal(t, []string{"ev-0"}, resp.Events.DeletedEntities)
	assert.True(t, resp.Dealers.RemoveAllBeforeInsert.Bool())
	assert.True(t, resp.Dealers.ChangedEntities[0].AttendsOnThursday)
}

func TestSyncResponse_Validate(t *testing.T) {
	now := time.Now().UTC()

	assert.NoError(t, SyncResponse{ConventionIdentifier: "MC2026", CurrentDateTimeUtc: now}.Validate())
	assert.Error(t, SyncResponse{CurrentDateTimeUtc: now}.Validate())
	assert.Error(t, SyncResponse{ConventionIdentifier: "MC2026"}.Validate())
}

func TestRecordBase(t *testing.T) {
	r := RecordBase{Id: "abc"}
	assert.Equal(t, "abc", r.Key())
	assert.False(t, r.Tombstone())

	r.IsDeleted = 1
	assert.True(t, r.Tombstone())
}

func TestSyncMetadata_Synchronized(t *testing.T) {
	assert.False(t, InitialSyncMetadata().Synchronized())
	assert.False(t, SyncMetadata{}.Synchronized())
	assert.True(t, SyncMetadata{LastSynchronizedUtc: time.Now().UTC()}.Synchronized())
}

func TestCommunication_Read(t *testing.T) {
	var m Communication
	assert.False(t, m.Read())

	now := time.Now().UTC()
	m.ReadDateTimeUtc = &now
	assert.True(t, m.Read())
}
