package models

// KnowledgeGroup is a section of the static info pages (the "con book").
type KnowledgeGroup struct {
	RecordBase
	Name                string `json:"Name"`
	Description         string `json:"Description"`
	Order               int    `json:"Order"`
	ShowInHamburgerMenu bool   `json:"ShowInHamburgerMenu"`
	FontAwesomeIconName string `json:"FontAwesomeIconName"`
}

// KnowledgeEntry is a single info page inside a group.
type KnowledgeEntry struct {
	RecordBase
	KnowledgeGroupId string         `json:"KnowledgeGroupId"`
	Title            string         `json:"Title"`
	Text             string         `json:"Text"`
	Order            int            `json:"Order"`
	Links            []LinkFragment `json:"Links"`
	ImageIds         []string       `json:"ImageIds"`
}
