package models

// Image is the metadata record for a backend-hosted image. The binary
// content itself is fetched lazily by the UI layer via the
// content-addressed URL derived from ContentHashSha1.
type Image struct {
	RecordBase
	InternalReference string `json:"InternalReference"`
	Width             int    `json:"Width"`
	Height            int    `json:"Height"`
	SizeInBytes       int64  `json:"SizeInBytes"`
	MimeType          string `json:"MimeType"`
	ContentHashSha1   string `json:"ContentHashSha1"`
}
