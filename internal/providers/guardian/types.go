package guardian

// searchResponse mirrors the Guardian content search envelope.
type searchResponse struct {
	Response struct {
		Status  string         `json:"status"`
		Total   int            `json:"total"`
		Results []searchResult `json:"results"`
	} `json:"response"`
}

type searchResult struct {
	WebTitle           string `json:"webTitle"`
	WebPublicationDate string `json:"webPublicationDate"`
	SectionName        string `json:"sectionName"`
	WebURL             string `json:"webUrl"`
}
