package generate

import (
	"context"
	"log/slog"

	"github.com/seoforge/seoforge/models"
	"github.com/seoforge/seoforge/pkg/assembler"
	"github.com/seoforge/seoforge/pkg/scrape"
)

const maxCompetitors = 5

// Searcher fetches search engine results for a query.
type Searcher interface {
	Search(ctx context.Context, query string) models.SearchResultSet
}

// Scraper fetches and profiles individual pages.
type Scraper interface {
	Enabled() bool
	ScrapeProfile(ctx context.Context, targetURL string, a scrape.Profiler) (models.PageProfile, error)
}

// Researcher runs the deep research model for a query.
type Researcher interface {
	DeepResearch(ctx context.Context, query string) models.ResearchOutput
}

// OutlineGenerator produces the outline document.
type OutlineGenerator interface {
	Generate(ctx context.Context, params models.ContentParameters, query, pipelineContext string) string
}

// ReportGenerator produces the research report document.
type ReportGenerator interface {
	Generate(thinking string, profiles []models.PageProfile) string
}

// BlogGenerator produces the article. It is the one stage that fails
// hard instead of degrading.
type BlogGenerator interface {
	Generate(ctx context.Context, outlineDoc, researchReport string) (string, error)
}

// Pipeline wires the stages of one content generation run.
type Pipeline struct {
	Searcher   Searcher
	Scraper    Scraper
	Researcher Researcher
	Analyzer   scrape.Profiler
	Outline    OutlineGenerator
	Report     ReportGenerator
	Blog       BlogGenerator
	Workers    int
	SkipBlog   bool
	Logger     *slog.Logger
}

// Outcome carries everything a run produced, including per-URL fetch
// outcomes for the run index.
type Outcome struct {
	Query    string
	Results  models.SearchResultSet
	Profiles []models.PageProfile
	Citation []models.PageProfile
	Fetches  []models.PageFetch
	Context  string
	Outline  string
	Report   string
	Blog     string
	BlogErr  error
}

// Run executes the pipeline for one query. Every stage before the blog
// degrades to empty output on failure; only blog generation reports an
// error, and even then the outline and report survive in the Outcome.
func (p *Pipeline) Run(ctx context.Context, query string, params models.ContentParameters) Outcome {
	params = params.WithAudienceDefaults(query)

	out := Outcome{Query: query}

	p.Logger.Info("fetching search results", "query", query)
	out.Results = p.Searcher.Search(ctx, query)

	competitorURLs := out.Results.CompetitorLinks(maxCompetitors)
	if p.Scraper.Enabled() {
		var fetches []models.PageFetch
		out.Profiles, fetches = p.scrapePages(ctx, competitorURLs, "competitor", p.Workers)
		out.Fetches = append(out.Fetches, fetches...)
	} else if len(competitorURLs) > 0 {
		p.Logger.Warn("scraping disabled, continuing without competitor content", "url_count", len(competitorURLs))
	}

	research := p.Researcher.DeepResearch(ctx, query)

	if p.Scraper.Enabled() && len(research.CitationURLs) > 0 {
		var fetches []models.PageFetch
		out.Citation, fetches = p.scrapePages(ctx, research.CitationURLs, "citation", p.Workers)
		out.Fetches = append(out.Fetches, fetches...)
	}

	out.Context = assembler.Assemble(params, out.Results, out.Profiles, research.ThinkingText, out.Citation)

	out.Outline = p.Outline.Generate(ctx, params, query, out.Context)
	out.Report = p.Report.Generate(research.ThinkingText, out.Profiles)

	if p.SkipBlog {
		p.Logger.Info("blog generation skipped")
		return out
	}

	out.Blog, out.BlogErr = p.Blog.Generate(ctx, out.Outline, out.Report)
	if out.BlogErr != nil {
		p.Logger.Error("blog generation failed", "error", out.BlogErr)
	}
	return out
}
