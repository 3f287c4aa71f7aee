package models

import "time"

// Event is a single programme item. Times come in two flavours from the
// backend: absolute UTC instants and convention-local wall-clock strings.
type Event struct {
	RecordBase
	Slug                  string    `json:"Slug"`
	Title                 string    `json:"Title"`
	SubTitle              string    `json:"SubTitle"`
	Abstract              string    `json:"Abstract"`
	Description           string    `json:"Description"`
	StartDateTimeUtc      time.Time `json:"StartDateTimeUtc"`
	EndDateTimeUtc        time.Time `json:"EndDateTimeUtc"`
	StartTime             string    `json:"StartTime"`
	EndTime               string    `json:"EndTime"`
	Duration              string    `json:"Duration"`
	ConferenceDayId       string    `json:"ConferenceDayId"`
	ConferenceRoomId      string    `json:"ConferenceRoomId"`
	ConferenceTrackId     string    `json:"ConferenceTrackId"`
	PosterImageId         string    `json:"PosterImageId"`
	BannerImageId         string    `json:"BannerImageId"`
	Tags                  []string  `json:"Tags"`
	IsAcceptingFeedback   bool      `json:"IsAcceptingFeedback"`
	IsDeviatingFromConBook bool     `json:"IsDeviatingFromConBook"`
}

// EventDay is one convention day. Date is the calendar day in the
// convention's local timezone.
type EventDay struct {
	RecordBase
	Name string    `json:"Name"`
	Date time.Time `json:"Date"`
}

type EventRoom struct {
	RecordBase
	Name      string `json:"Name"`
	ShortName string `json:"ShortName"`
}

type EventTrack struct {
	RecordBase
	Name string `json:"Name"`
}
