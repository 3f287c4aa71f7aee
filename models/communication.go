package models

import "time"

// Communication is a private message addressed to the logged-in attendee.
// Unlike the other entity kinds it is not part of the delta sync response;
// the full list is fetched from the authenticated endpoint and replaces the
// local collection wholesale.
type Communication struct {
	RecordBase
	RecipientUid          string     `json:"RecipientUid"`
	SenderUid             string     `json:"SenderUid"`
	CreatedDateTimeUtc    time.Time  `json:"CreatedDateTimeUtc"`
	ReceivedDateTimeUtc   *time.Time `json:"ReceivedDateTimeUtc,omitempty"`
	ReadDateTimeUtc       *time.Time `json:"ReadDateTimeUtc,omitempty"`
	AuthorName            string     `json:"AuthorName"`
	Subject               string     `json:"Subject"`
	Message               string     `json:"Message"`
}

// Read reports whether the message has been marked read.
func (c Communication) Read() bool { return c.ReadDateTimeUtc != nil }
