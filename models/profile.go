package models

// ContentStructure summarizes paragraph layout of a scraped page.
type ContentStructure struct {
	TotalParagraphs    int     `json:"total_paragraphs" yaml:"total_paragraphs"`
	AvgParagraphLength float64 `json:"avg_paragraph_length" yaml:"avg_paragraph_length"`
}

// ContentElements counts structural markup nodes in the original document.
type ContentElements struct {
	Lists    int `json:"lists" yaml:"lists"`
	Tables   int `json:"tables" yaml:"tables"`
	Images   int `json:"images" yaml:"images"`
	Links    int `json:"links" yaml:"links"`
	Headings int `json:"headings" yaml:"headings"`
}

// ContentAnalysis is the lightweight per-page profile derived from raw content.
// A zero value is a valid "nothing could be analyzed" result.
type ContentAnalysis struct {
	WordCount      int              `json:"word_count" yaml:"word_count"`
	CommonPhrases  []string         `json:"common_phrases" yaml:"common_phrases"`
	Structure      ContentStructure `json:"content_structure" yaml:"content_structure"`
	KeyTopics      []string         `json:"key_topics" yaml:"key_topics"`
	Elements       ContentElements  `json:"content_elements" yaml:"content_elements"`
	Language       string           `json:"language,omitempty" yaml:"language,omitempty"`
}

// PageProfile pairs a scraped URL with its raw content and derived analysis.
type PageProfile struct {
	URL        string          `json:"url" yaml:"url"`
	RawContent string          `json:"-" yaml:"-"`
	Analysis   ContentAnalysis `json:"analysis" yaml:"analysis"`
}

// TopTopics returns up to n key topics for summary lines.
func (p PageProfile) TopTopics(n int) []string {
	if len(p.Analysis.KeyTopics) < n {
		n = len(p.Analysis.KeyTopics)
	}
	return p.Analysis.KeyTopics[:n]
}
