package entity

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResult struct {
	Response       string   `json:"response"`
	RelatedQueries []string `json:"related_queries"`
	Images         []string `json:"images"`
}
