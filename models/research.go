package models

// ResearchOutput is the deep-research provider's answer for one query: the
// model's free-text reasoning plus any URLs it cited.
type ResearchOutput struct {
	ThinkingText string   `json:"thinking_text"`
	CitationURLs []string `json:"citation_urls"`
}

// NoResearchOutput is the sentinel used when the research capability is
// unavailable or the call failed. Downstream formatting still has something
// to say instead of an empty section.
const NoResearchOutput = "No deep research output provided."

// EmptyResearchOutput returns the degraded sentinel value.
func EmptyResearchOutput() ResearchOutput {
	return ResearchOutput{ThinkingText: NoResearchOutput}
}
