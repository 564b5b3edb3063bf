// Package assembler merges search results, page profiles, and deep-research
// output into the single flat context block the prompt templates are built
// around. The section order is a hard contract: downstream prompts depend on
// it, and identical input must produce byte-identical output.
package assembler

import (
	"fmt"
	"strings"

	"github.com/seoforge/seoforge/models"
)

const topArticleLimit = 5

const contextLayout = `
Search Query: %s

Content Parameters:
Article Intent: %s
Secondary Keywords: %s

--- Top Ranking Articles ---
%s

--- People Also Ask Questions ---
%s

--- Related Searches ---
%s

--- Competitor Content Analysis ---
%s

--- Deep Research Thinking Process ---
%s

--- Citation Content from Deep Research ---
%s
`

// Assemble builds the LLM context text block.
func Assemble(params models.ContentParameters, results models.SearchResultSet, profiles []models.PageProfile, thinking string, citations []models.PageProfile) string {
	return fmt.Sprintf(contextLayout,
		results.Query(),
		params.Intent,
		strings.Join(params.SecondaryKeywords, ", "),
		formatTopArticles(results.OrganicResults),
		formatPAAQuestions(results.PAAQuestions),
		formatRelatedSearches(results.RelatedSearches),
		ProfileSummaries(profiles),
		thinking,
		ProfileSummaries(citations),
	)
}

func formatTopArticles(results []models.OrganicResult) string {
	if len(results) > topArticleLimit {
		results = results[:topArticleLimit]
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s (URL: %s)", r.Title, r.Link))
	}
	return strings.Join(lines, "\n")
}

func formatPAAQuestions(questions []models.PAAQuestion) string {
	lines := make([]string, 0, len(questions))
	for _, q := range questions {
		lines = append(lines, fmt.Sprintf("- %s", q.Question))
	}
	return strings.Join(lines, "\n")
}

func formatRelatedSearches(searches []models.RelatedSearch) string {
	lines := make([]string, 0, len(searches))
	for _, s := range searches {
		lines = append(lines, fmt.Sprintf("- %s", s.Query))
	}
	return strings.Join(lines, "\n")
}

// ProfileSummaries renders one summary block per profile: URL, word count,
// and the top five key topics. The research report reuses the same format.
func ProfileSummaries(profiles []models.PageProfile) string {
	summaries := make([]string, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, fmt.Sprintf(
			"URL: %s\nWord Count: %d\nKey Topics: %s",
			p.URL, p.Analysis.WordCount, strings.Join(p.TopTopics(5), ", "),
		))
	}
	return strings.Join(summaries, "\n\n")
}
