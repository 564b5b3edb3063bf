package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/seoforge/seoforge/models"
	"github.com/seoforge/seoforge/pkg/analyzer"
	"github.com/seoforge/seoforge/pkg/artifacts"
	"github.com/seoforge/seoforge/pkg/blog"
	"github.com/seoforge/seoforge/pkg/caching"
	"github.com/seoforge/seoforge/pkg/db"
	"github.com/seoforge/seoforge/pkg/outline"
	"github.com/seoforge/seoforge/pkg/pdfreport"
	"github.com/seoforge/seoforge/pkg/prompts"
	"github.com/seoforge/seoforge/pkg/report"
	"github.com/seoforge/seoforge/pkg/research"
	"github.com/seoforge/seoforge/pkg/scrape"
	"github.com/seoforge/seoforge/pkg/serp"
)

// GenerateAction runs the full content pipeline for one query.
func GenerateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	query := strings.TrimSpace(c.String("query"))
	if query == "" {
		return cli.Exit("Error: --query is required", 1)
	}

	intent, err := models.ParseIntent(c.String("intent"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("prompts-dir") {
		cfg.PromptsDir = c.String("prompts-dir")
	}

	for _, missing := range cfg.MissingCapabilities() {
		logger.Warn("capability disabled, no credential", "capability", missing)
	}

	params := models.ContentParameters{
		Intent:            intent,
		SecondaryKeywords: splitKeywords(c.String("keywords")),
		PrimaryAudience:   c.String("audience-primary"),
		SecondaryAudience: c.String("audience-secondary"),
		IndustryLevel:     c.String("industry-level"),
	}

	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	pipeline, err := buildPipeline(cfg, c.Bool("skip-blog"), maxAge, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(2)
	}

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		logger.Error("failed to initialize artifact store", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(cfg.OutputDir)
	if err != nil {
		logger.Error("failed to open run index", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runID := uuid.NewString()[:8]
	if err := database.InsertRun(models.Run{
		ID:                runID,
		Query:             query,
		Intent:            string(intent),
		SecondaryKeywords: strings.Join(params.SecondaryKeywords, ", "),
	}); err != nil {
		logger.Error("failed to record run", "error", err)
		os.Exit(2)
	}

	logger.Info("starting run", "run_id", runID, "query", query, "intent", intent)
	outcome := pipeline.Run(c.Context, query, params)

	status, err := persistOutcome(database, store, logger, runID, outcome)
	if err != nil {
		logger.Error("failed to persist run outputs", "error", err, "run_id", runID)
		os.Exit(2)
	}

	if outcome.BlogErr != nil {
		return cli.Exit(fmt.Sprintf("Error: blog generation failed: %v (outline and report were still written to %s)", outcome.BlogErr, cfg.OutputDir), 1)
	}

	fmt.Printf("Run %s %s. Artifacts in %s\n", runID, status, cfg.OutputDir)
	return nil
}

func buildPipeline(cfg models.Config, skipBlog bool, maxAge time.Duration, logger *slog.Logger) (*Pipeline, error) {
	set, err := prompts.Load(cfg.PromptsDir)
	if err != nil {
		return nil, err
	}

	scraper := scrape.NewClient(scrape.Config{APIKey: cfg.Credentials.Firecrawl}, logger)
	if maxAge > 0 {
		cache, err := caching.NewCache(filepath.Join(cfg.OutputDir, "cache"), maxAge)
		if err != nil {
			return nil, err
		}
		scraper = scraper.WithCache(cache)
	}

	var completer outline.Completer
	if cfg.Credentials.OpenAI != "" {
		completer = outline.NewOpenAICompleter(outline.Config{
			APIKey: cfg.Credentials.OpenAI,
			Model:  cfg.Models.Outline,
		})
	}

	var messenger blog.Messenger
	if cfg.Credentials.Anthropic != "" {
		messenger = blog.NewAnthropicMessenger(blog.Config{
			APIKey: cfg.Credentials.Anthropic,
			Model:  cfg.Models.Blog,
		})
	}

	return &Pipeline{
		Searcher:   serp.NewClient(serp.Config{APIKey: cfg.Credentials.SerpAPI}, logger),
		Scraper:    scraper,
		Researcher: research.NewClient(research.Config{APIKey: cfg.Credentials.Perplexity, Model: cfg.Models.Research}, logger),
		Analyzer:   analyzer.New(),
		Outline:    outline.NewGenerator(completer, set, logger),
		Report:     report.NewGenerator(),
		Blog:       blog.NewGenerator(messenger, set, "", logger),
		Workers:    cfg.WorkerCount,
		SkipBlog:   skipBlog,
		Logger:     logger,
	}, nil
}

// persistOutcome writes artifacts to disk and updates the run index.
// The blog file and its PDF section are only produced when blog
// generation succeeded.
func persistOutcome(database *db.DB, store *artifacts.Store, logger *slog.Logger, runID string, outcome Outcome) (string, error) {
	outlinePath, err := store.WriteOutline(runID, outcome.Outline)
	if err != nil {
		return "", err
	}
	reportPath, err := store.WriteReport(runID, outcome.Report)
	if err != nil {
		return "", err
	}

	blogPath := ""
	if outcome.Blog != "" {
		if blogPath, err = store.WriteBlog(runID, outcome.Blog); err != nil {
			return "", err
		}
	}

	pdfBytes, err := pdfreport.NewBuilder().Build(pdfreport.Documents{
		Query:   outcome.Query,
		Outline: outcome.Outline,
		Report:  outcome.Report,
		Blog:    outcome.Blog,
	})
	pdfPath := ""
	if err != nil {
		logger.Error("pdf generation failed", "error", err, "run_id", runID)
	} else if pdfPath, err = store.WritePDF(runID, pdfBytes); err != nil {
		return "", err
	}

	for _, fetch := range outcome.Fetches {
		fetch.RunID = runID
		if err := database.RecordPageFetch(fetch); err != nil {
			logger.Warn("failed to record page fetch", "error", err, "url", fetch.URL)
		}
	}

	competitors := 0
	for _, f := range outcome.Fetches {
		if f.Kind == "competitor" && f.OK {
			competitors++
		}
	}
	if err := database.UpdateRunCounts(runID, len(outcome.Results.OrganicResults), competitors, len(outcome.Citation)); err != nil {
		logger.Warn("failed to update run counts", "error", err)
	}

	status := db.StatusCompleted
	if outcome.BlogErr != nil {
		status = db.StatusFailed
	}
	if err := database.UpdateRunArtifacts(runID, outlinePath, reportPath, blogPath, pdfPath, status); err != nil {
		return "", err
	}
	return status, nil
}

func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
