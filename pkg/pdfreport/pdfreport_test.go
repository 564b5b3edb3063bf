package pdfreport

import (
	"bytes"
	"testing"
	"time"
)

func fixedBuilder() *Builder {
	b := NewBuilder()
	b.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return b
}

func TestBuildProducesPDF(t *testing.T) {
	out, err := fixedBuilder().Build(Documents{
		Query:   "best roofing materials",
		Outline: "SEO Article Outline for: \"best roofing materials\"\n\n# Heading\nbody text",
		Report:  "=== Research Report ===\n\nfindings",
		Blog:    "# Great Roofs\n\n## Why\n\nParagraph.",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF, got %q", out[:8])
	}
	if len(out) < 1000 {
		t.Errorf("suspiciously small pdf: %d bytes", len(out))
	}
}

func TestBuildOmitsEmptyBlogSection(t *testing.T) {
	b := fixedBuilder()
	withBlog, err := b.Build(Documents{Query: "q", Outline: "o", Report: "r", Blog: "some article"})
	if err != nil {
		t.Fatalf("Build with blog: %v", err)
	}
	withoutBlog, err := b.Build(Documents{Query: "q", Outline: "o", Report: "r"})
	if err != nil {
		t.Fatalf("Build without blog: %v", err)
	}
	if len(withoutBlog) >= len(withBlog) {
		t.Errorf("pdf without blog (%d bytes) should be smaller than with blog (%d bytes)", len(withoutBlog), len(withBlog))
	}
}

func TestBuildSurvivesNonLatinText(t *testing.T) {
	out, err := fixedBuilder().Build(Documents{
		Query:   "日本語クエリ",
		Outline: "outline with emoji \U0001f600 and accents éàü",
		Report:  "отчёт",
		Blog:    "文章",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a pdf")
	}
}
