// Package analyzer derives lightweight per-page profiles from raw scraped
// content. Analysis is a total function: malformed or empty markup yields a
// zero-valued profile, never an error.
package analyzer

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/seoforge/seoforge/models"
)

var (
	// Runs of 10-30 word characters and spaces, case-folded before matching.
	phrasePattern = regexp.MustCompile(`\b[\w\s]{10,30}\b`)
	wordPattern   = regexp.MustCompile(`\b\w+\b`)

	// Readability wants a page URL for resolving relative links; scraped
	// content arrives without one.
	placeholderURL, _ = url.Parse("https://content.invalid/")
)

const rankLimit = 10

// Analyzer computes content profiles. Safe for concurrent use.
type Analyzer struct {
	detector lingua.LanguageDetector
}

// New builds an Analyzer with language detection over the languages the
// pipeline's prompts can reasonably handle.
func New() *Analyzer {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Portuguese,
		).
		Build()
	return &Analyzer{detector: detector}
}

// Profile pairs a URL with its raw content and derived analysis.
func (a *Analyzer) Profile(pageURL, rawContent string) models.PageProfile {
	return models.PageProfile{
		URL:        pageURL,
		RawContent: rawContent,
		Analysis:   a.Analyze(rawContent),
	}
}

// Analyze strips markup to plain text and derives word counts, frequent
// phrases, key topics, paragraph structure, and markup element counts.
func (a *Analyzer) Analyze(rawContent string) models.ContentAnalysis {
	if strings.TrimSpace(rawContent) == "" {
		return models.ContentAnalysis{}
	}

	text := plainText(rawContent)
	analysis := models.ContentAnalysis{
		WordCount:     len(strings.Fields(text)),
		CommonPhrases: commonPhrases(text),
		Structure:     contentStructure(text),
		KeyTopics:     keyTopics(text),
		Elements:      contentElements(rawContent),
	}
	if a.detector != nil {
		if lang, ok := a.detector.DetectLanguageOf(text); ok {
			analysis.Language = strings.ToLower(lang.IsoCode639_1().String())
		}
	}
	return analysis
}

// plainText extracts readable text: readability's main-content extraction
// first, a flat goquery text pass second, the raw content as a last resort.
func plainText(raw string) string {
	parser := readability.NewParser()
	if article, err := parser.Parse(strings.NewReader(raw), placeholderURL); err == nil {
		if strings.TrimSpace(article.TextContent) != "" {
			return article.TextContent
		}
	}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		if text := doc.Text(); strings.TrimSpace(text) != "" {
			return text
		}
	}
	return raw
}

func commonPhrases(text string) []string {
	phrases := phrasePattern.FindAllString(strings.ToLower(text), -1)
	return rankByFrequency(phrases, rankLimit)
}

func keyTopics(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	return rankByFrequency(words, rankLimit)
}

func contentStructure(text string) models.ContentStructure {
	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) == 0 {
		return models.ContentStructure{}
	}
	totalWords := 0
	for _, p := range paragraphs {
		totalWords += len(strings.Fields(p))
	}
	return models.ContentStructure{
		TotalParagraphs:    len(paragraphs),
		AvgParagraphLength: float64(totalWords) / float64(len(paragraphs)),
	}
}

// contentElements counts structural markup nodes in the original document.
// Non-HTML input (markdown, plain text) simply yields zero counts.
func contentElements(raw string) models.ContentElements {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return models.ContentElements{}
	}
	return models.ContentElements{
		Lists:    doc.Find("ul, ol").Length(),
		Tables:   doc.Find("table").Length(),
		Images:   doc.Find("img").Length(),
		Links:    doc.Find("a").Length(),
		Headings: doc.Find("h1, h2, h3, h4, h5, h6").Length(),
	}
}
