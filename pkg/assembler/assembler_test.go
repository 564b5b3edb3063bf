package assembler

import (
	"strings"
	"testing"

	"github.com/seoforge/seoforge/models"
)

func fixtureResults(t *testing.T) models.SearchResultSet {
	t.Helper()
	return models.SearchResultSet{
		OrganicResults: []models.OrganicResult{
			{Title: "Concrete Mix Basics", Link: "https://a.example/mix", Position: 1},
			{Title: "Mixing Ratios Guide", Link: "https://b.example/guide", Position: 2},
			{Title: "DIY Concrete", Link: "https://c.example/diy", Position: 3},
		},
		PAAQuestions: []models.PAAQuestion{
			{Question: "What is the strongest concrete mix ratio?"},
			{Question: "How much water per bag of cement?"},
		},
		RelatedSearches: []models.RelatedSearch{
			{Query: "concrete mix ratio by volume"},
		},
		SearchParameters: map[string]string{"q": "concrete mixing ratios"},
	}
}

func fixtureProfiles(t *testing.T) []models.PageProfile {
	t.Helper()
	return []models.PageProfile{
		{
			URL: "https://a.example/mix",
			Analysis: models.ContentAnalysis{
				WordCount: 500,
				KeyTopics: []string{"concrete", "mix", "cement", "sand", "water", "gravel"},
			},
		},
		{
			URL: "https://b.example/guide",
			Analysis: models.ContentAnalysis{
				WordCount: 800,
				KeyTopics: []string{"ratio", "strength"},
			},
		},
	}
}

func TestAssembleDeterministic(t *testing.T) {
	params := models.ContentParameters{
		Intent:            models.IntentInformational,
		SecondaryKeywords: []string{"cement ratio", "sand mix"},
	}
	results := fixtureResults(t)
	profiles := fixtureProfiles(t)

	first := Assemble(params, results, profiles, "deep thinking text", nil)
	for i := 0; i < 5; i++ {
		if got := Assemble(params, results, profiles, "deep thinking text", nil); got != first {
			t.Fatalf("assembly not byte-identical on run %d", i)
		}
	}
}

func TestAssembleSectionOrderAndCounts(t *testing.T) {
	params := models.ContentParameters{Intent: models.IntentInformational}
	context := Assemble(params, fixtureResults(t), fixtureProfiles(t), "research body", nil)

	sections := []string{
		"Search Query: concrete mixing ratios",
		"Content Parameters:",
		"--- Top Ranking Articles ---",
		"--- People Also Ask Questions ---",
		"--- Related Searches ---",
		"--- Competitor Content Analysis ---",
		"--- Deep Research Thinking Process ---",
		"--- Citation Content from Deep Research ---",
	}
	pos := -1
	for _, section := range sections {
		idx := strings.Index(context, section)
		if idx < 0 {
			t.Fatalf("section %q missing from context", section)
		}
		if idx <= pos {
			t.Fatalf("section %q out of order", section)
		}
		pos = idx
	}

	if got := strings.Count(context, "(URL: https://"); got != 3 {
		t.Errorf("top article lines = %d, want 3", got)
	}
	if !strings.Contains(context, "- What is the strongest concrete mix ratio?") ||
		!strings.Contains(context, "- How much water per bag of cement?") {
		t.Error("PAA questions missing")
	}
	if got := strings.Count(context, "- concrete mix ratio by volume"); got != 1 {
		t.Errorf("related search lines = %d, want 1", got)
	}
	if got := strings.Count(context, "Word Count:"); got != 2 {
		t.Errorf("competitor summary blocks = %d, want 2", got)
	}
	if !strings.Contains(context, "Word Count: 500") || !strings.Contains(context, "Word Count: 800") {
		t.Error("competitor word counts missing")
	}
}

func TestTopArticlesCappedAtFive(t *testing.T) {
	results := fixtureResults(t)
	for i := 0; i < 5; i++ {
		results.OrganicResults = append(results.OrganicResults, models.OrganicResult{
			Title: "Extra", Link: "https://extra.example",
		})
	}
	context := Assemble(models.ContentParameters{}, results, nil, "", nil)
	if got := strings.Count(context, "(URL: "); got != 5 {
		t.Errorf("top article lines = %d, want 5", got)
	}
}

func TestProfileSummariesTopFiveTopics(t *testing.T) {
	profiles := fixtureProfiles(t)
	summary := ProfileSummaries(profiles)

	if strings.Contains(summary, "gravel") {
		t.Error("summary should cap key topics at five")
	}
	if !strings.Contains(summary, "Key Topics: concrete, mix, cement, sand, water") {
		t.Errorf("unexpected topics line in %q", summary)
	}
	if !strings.Contains(summary, "Key Topics: ratio, strength") {
		t.Error("short topic lists should render as-is")
	}
}

func TestProfileSummariesEmpty(t *testing.T) {
	if got := ProfileSummaries(nil); got != "" {
		t.Errorf("ProfileSummaries(nil) = %q, want empty", got)
	}
}
