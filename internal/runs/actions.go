// Package runs implements the run history command over the local run
// index.
package runs

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/seoforge/seoforge/models"
	"github.com/seoforge/seoforge/pkg/db"
)

// ListAction prints recent runs, newest first.
func ListAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}

	database, err := db.Open(cfg.OutputDir)
	if err != nil {
		logger.Error("failed to open run index", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		os.Exit(2)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCREATED\tSTATUS\tQUERY\tINTENT\tPAGES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.Status,
			run.Query,
			run.Intent,
			run.CompetitorPages,
			run.CitationPages)
	}
	return w.Flush()
}

// ShowAction prints the details of one run including its fetches.
func ShowAction(c *cli.Context) error {
	runID := c.Args().First()
	if runID == "" {
		return cli.Exit("Error: run ID argument required", 1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}

	database, err := db.Open(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer database.Close()

	run, err := database.GetRun(runID)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	fmt.Printf("Run:      %s\n", run.ID)
	fmt.Printf("Created:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Status:   %s\n", run.Status)
	fmt.Printf("Query:    %s\n", run.Query)
	fmt.Printf("Intent:   %s\n", run.Intent)
	if run.SecondaryKeywords != "" {
		fmt.Printf("Keywords: %s\n", run.SecondaryKeywords)
	}
	fmt.Printf("Results:  %d organic, %d competitor pages, %d citation pages\n",
		run.OrganicResults, run.CompetitorPages, run.CitationPages)
	artifacts := []struct {
		label string
		path  string
	}{
		{"Outline", run.OutlinePath},
		{"Report", run.ReportPath},
		{"Blog", run.BlogPath},
		{"PDF", run.PDFPath},
	}
	for _, a := range artifacts {
		if a.path != "" {
			fmt.Printf("%-9s %s\n", a.label+":", a.path)
		}
	}

	fetches, err := database.ListPageFetches(runID)
	if err != nil {
		return err
	}
	if len(fetches) > 0 {
		fmt.Println("\nPage fetches:")
		for _, f := range fetches {
			status := "ok"
			if !f.OK {
				status = "failed: " + f.Error
			}
			fmt.Printf("  [%s] %s (%d words) %s\n", f.Kind, f.URL, f.WordCount, status)
		}
	}
	return nil
}
