package models

import "time"

// Announcement is a convention-wide notice with a validity window.
type Announcement struct {
	RecordBase
	ValidFromDateTimeUtc  time.Time `json:"ValidFromDateTimeUtc"`
	ValidUntilDateTimeUtc time.Time `json:"ValidUntilDateTimeUtc"`
	ExternalReference     string    `json:"ExternalReference"`
	Area                  string    `json:"Area"`
	Author                string    `json:"Author"`
	Title                 string    `json:"Title"`
	Content               string    `json:"Content"`
	ImageId               string    `json:"ImageId"`
}

// ValidAt reports whether the announcement's validity window contains now.
func (a Announcement) ValidAt(now time.Time) bool {
	return !now.Before(a.ValidFromDateTimeUtc) && now.Before(a.ValidUntilDateTimeUtc)
}
