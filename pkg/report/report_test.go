package report

import (
	"strings"
	"testing"
	"time"

	"github.com/seoforge/seoforge/models"
)

func fixedGenerator() *Generator {
	g := NewGenerator()
	g.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return g
}

func TestGenerateStructure(t *testing.T) {
	profiles := []models.PageProfile{
		{
			URL: "https://example.com/a",
			Analysis: models.ContentAnalysis{
				WordCount: 500,
				KeyTopics: []string{"roofing", "materials"},
			},
		},
	}

	out := fixedGenerator().Generate("the model reasoned about roofs", profiles)

	if !strings.HasPrefix(out, "=== Research Report ===\n\n") {
		t.Errorf("missing banner, got %q", out[:30])
	}
	thinkIdx := strings.Index(out, "Deep Research Thinking Process:\nthe model reasoned about roofs")
	summaryIdx := strings.Index(out, "--- Competitor Content Analysis Summary ---")
	if thinkIdx < 0 || summaryIdx < 0 || thinkIdx > summaryIdx {
		t.Errorf("sections missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "URL: https://example.com/a\nWord Count: 500") {
		t.Error("profile summary missing")
	}
	if !strings.HasSuffix(out, "Generated on: 2026-03-14 09:30:00\n") {
		t.Errorf("missing footer, got %q", out[len(out)-40:])
	}
}

func TestGenerateEmptyInputs(t *testing.T) {
	out := fixedGenerator().Generate("", nil)
	if !strings.Contains(out, "=== Research Report ===") {
		t.Error("banner missing for empty inputs")
	}
	if !strings.Contains(out, "Deep Research Thinking Process:") {
		t.Error("thinking header missing for empty inputs")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := fixedGenerator()
	profiles := []models.PageProfile{{URL: "https://x.test", Analysis: models.ContentAnalysis{WordCount: 10}}}
	first := g.Generate("t", profiles)
	for i := 0; i < 3; i++ {
		if got := g.Generate("t", profiles); got != first {
			t.Fatal("report output varies across identical calls")
		}
	}
}
