package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/seoforge/seoforge/internal/analyze"
	"github.com/seoforge/seoforge/internal/generate"
	"github.com/seoforge/seoforge/internal/runs"
)

func main() {
	commonFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "path to the yaml config file",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "directory for run artifacts and the run index",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
	}

	app := &cli.App{
		Name:  "seoforge",
		Usage: "SEO content pipeline: SERP analysis, competitor profiling, outline, research report and blog generation",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Run the full pipeline for a search query",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "search query to build content for",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "intent",
						Value: "informational",
						Usage: "article intent: informational, commercial, transactional or navigational",
					},
					&cli.StringFlag{
						Name:  "keywords",
						Usage: "comma-separated secondary keywords",
					},
					&cli.StringFlag{
						Name:  "audience-primary",
						Usage: "primary target audience (defaults to the query)",
					},
					&cli.StringFlag{
						Name:  "audience-secondary",
						Usage: "secondary target audience (defaults to the query)",
					},
					&cli.StringFlag{
						Name:  "industry-level",
						Usage: "industry expertise level of the audience (defaults to the query)",
					},
					&cli.BoolFlag{
						Name:  "skip-blog",
						Usage: "stop after the outline and research report",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "concurrent page scrape workers",
					},
					&cli.StringFlag{
						Name:  "prompts-dir",
						Usage: "directory with prompt template overrides",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "reuse cached page content younger than this",
					},
					&cli.BoolFlag{
						Name:  "force-fetch",
						Usage: "ignore cached page content",
					},
				}, commonFlags...),
				Action: generate.GenerateAction,
			},
			{
				Name:  "analyze",
				Usage: "Profile pages without running the pipeline",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated URLs to fetch and analyze",
					},
					&cli.StringFlag{
						Name:  "files",
						Usage: "comma-separated local HTML or markdown files to analyze",
					},
				}, commonFlags...),
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "runs",
				Usage: "Inspect past pipeline runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List recent runs",
						Flags: append([]cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum runs to show",
							},
						}, commonFlags...),
						Action: runs.ListAction,
					},
					{
						Name:      "show",
						Usage:     "Show one run with its page fetches",
						ArgsUsage: "<run-id>",
						Flags:     commonFlags,
						Action:    runs.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
