package newsdata

// newsResponse mirrors the NewsData.io latest-news envelope.
type newsResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Results      []newsResult `json:"results"`
}

type newsResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	SourceID string `json:"source_id"`
	PubDate  string `json:"pubDate"`
}
