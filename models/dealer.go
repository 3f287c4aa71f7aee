package models

// Dealer is a dealers' den / artist alley vendor entry.
type Dealer struct {
	RecordBase
	RegistrationNumber     int      `json:"RegistrationNumber"`
	AttendeeNickname       string   `json:"AttendeeNickname"`
	DisplayName            string   `json:"DisplayName"`
	Merchandise            string   `json:"Merchandise"`
	ShortDescription       string   `json:"ShortDescription"`
	AboutTheArtistText     string   `json:"AboutTheArtistText"`
	AboutTheArtText        string   `json:"AboutTheArtText"`
	ArtPreviewCaption      string   `json:"ArtPreviewCaption"`
	AttendsOnThursday      bool     `json:"AttendsOnThursday"`
	AttendsOnFriday        bool     `json:"AttendsOnFriday"`
	AttendsOnSaturday      bool     `json:"AttendsOnSaturday"`
	ArtistThumbnailImageId string   `json:"ArtistThumbnailImageId"`
	ArtistImageId          string   `json:"ArtistImageId"`
	ArtPreviewImageId      string   `json:"ArtPreviewImageId"`
	IsAfterDark            bool     `json:"IsAfterDark"`
	Categories             []string `json:"Categories"`
	Keywords               map[string][]string `json:"Keywords"`
	Links                  []LinkFragment      `json:"Links"`
}
