package models

// Map is a browseable venue map backed by an image, with tappable entries.
type Map struct {
	RecordBase
	Description  string     `json:"Description"`
	IsBrowseable bool       `json:"IsBrowseable"`
	ImageId      string     `json:"ImageId"`
	Order        int        `json:"Order"`
	Entries      []MapEntry `json:"Entries"`
}

// MapEntry is a tappable region on a map. Coordinates are relative to the
// map image's pixel dimensions.
type MapEntry struct {
	Id        string         `json:"Id"`
	X         int            `json:"X"`
	Y         int            `json:"Y"`
	TapRadius int            `json:"TapRadius"`
	Links     []LinkFragment `json:"Links"`
}

// LinkFragment is a typed outbound reference used by map entries, dealers
// and knowledge entries. FragmentType is one of "WebExternal", "MapExternal",
// "MapEntry", "DealerDetail" or "EventConferenceRoom"; Target holds the
// id or URL the fragment points at.
type LinkFragment struct {
	FragmentType string `json:"FragmentType"`
	Name         string `json:"Name"`
	Target       string `json:"Target"`
}
