// Package analyze implements the standalone content analysis command:
// profile one or more pages without running the full pipeline.
package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/seoforge/seoforge/models"
	"github.com/seoforge/seoforge/pkg/analyzer"
	"github.com/seoforge/seoforge/pkg/fetcher"
)

// pageReport is the YAML output shape for one analyzed page.
type pageReport struct {
	URL      string                   `yaml:"url"`
	Error    string                   `yaml:"error,omitempty"`
	Analysis *models.ContentAnalysis `yaml:"analysis,omitempty"`
}

// AnalyzeAction profiles pages given as URLs or local files and prints
// the analysis as YAML.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	urlsStr := c.String("urls")
	filesStr := c.String("files")
	if urlsStr == "" && filesStr == "" {
		return cli.Exit("Error: provide pages via --urls or --files", 1)
	}

	a := analyzer.New()
	f := fetcher.NewFetcher(30 * time.Second)
	reports := make([]pageReport, 0)

	for _, raw := range splitList(urlsStr) {
		logger.Info("analyzing URL", "url", raw)
		start := time.Now()
		html, err := f.GetHTML(c.Context, raw)
		if err != nil {
			logger.Error("fetch failed", "url", raw, "error", err)
			reports = append(reports, pageReport{URL: raw, Error: err.Error()})
			continue
		}
		profile := a.Profile(raw, html)
		logger.Info("analyzed", "url", raw, "word_count", profile.Analysis.WordCount, "took", time.Since(start))
		reports = append(reports, pageReport{URL: raw, Analysis: &profile.Analysis})
	}

	for _, path := range splitList(filesStr) {
		logger.Info("analyzing file", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read failed", "path", path, "error", err)
			reports = append(reports, pageReport{URL: path, Error: err.Error()})
			continue
		}
		profile := a.Profile(path, string(data))
		reports = append(reports, pageReport{URL: path, Analysis: &profile.Analysis})
	}

	out, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	fmt.Print(string(out))

	for _, r := range reports {
		if r.Error != "" {
			return cli.Exit("", 1)
		}
	}
	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
