// Package models defines the data structures shared across the pipeline.
package models

// OrganicResult is a single ranked result from the search provider.
type OrganicResult struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Date          string `json:"date"`
	Snippet       string `json:"snippet"`
	Position      int    `json:"position"`
	DisplayedLink string `json:"displayed_link"`
}

// PAAQuestion is a "people also ask" entry from the search provider.
type PAAQuestion struct {
	Question string `json:"question"`
	Snippet  string `json:"snippet"`
	Title    string `json:"title"`
}

// RelatedSearch is a related-query suggestion from the search provider.
type RelatedSearch struct {
	Query string `json:"query"`
}

// SearchResultSet holds everything extracted from one search-provider response.
// It is produced once per run and never mutated afterwards.
type SearchResultSet struct {
	OrganicResults   []OrganicResult   `json:"organic_results"`
	PAAQuestions     []PAAQuestion     `json:"paa_questions"`
	RelatedSearches  []RelatedSearch   `json:"related_searches"`
	SearchParameters map[string]string `json:"search_parameters"`
}

// Query returns the original search query recorded by the provider.
func (s SearchResultSet) Query() string {
	return s.SearchParameters["q"]
}

// IsEmpty reports whether the provider returned nothing usable.
func (s SearchResultSet) IsEmpty() bool {
	return len(s.OrganicResults) == 0 && len(s.PAAQuestions) == 0 && len(s.RelatedSearches) == 0
}

// CompetitorLinks returns up to max organic result links, in rank order.
func (s SearchResultSet) CompetitorLinks(max int) []string {
	links := make([]string, 0, max)
	for _, r := range s.OrganicResults {
		if len(links) == max {
			break
		}
		if r.Link != "" {
			links = append(links, r.Link)
		}
	}
	return links
}
