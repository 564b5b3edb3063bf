package generate

import (
	"context"
	"sync"

	"github.com/seoforge/seoforge/models"
)

type scrapeJob struct {
	index int
	url   string
}

type scrapeResult struct {
	index   int
	profile models.PageProfile
	fetch   models.PageFetch
	ok      bool
}

// scrapePages fetches and profiles urls concurrently, then re-collects
// results in input order so downstream context assembly is stable.
// It returns the successful profiles plus one fetch record per URL.
func (p *Pipeline) scrapePages(ctx context.Context, urls []string, kind string, workers int) ([]models.PageProfile, []models.PageFetch) {
	if len(urls) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(urls) {
		workers = len(urls)
	}

	p.Logger.Info("starting concurrent scrape phase", "kind", kind, "url_count", len(urls), "workers", workers)

	var wg sync.WaitGroup
	jobs := make(chan scrapeJob, len(urls))
	results := make(chan scrapeResult, len(urls))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go p.scrapeWorker(ctx, w, kind, &wg, jobs, results)
	}

	for i, u := range urls {
		jobs <- scrapeJob{index: i, url: u}
	}
	close(jobs)

	wg.Wait()
	close(results)

	ordered := make([]scrapeResult, len(urls))
	for r := range results {
		ordered[r.index] = r
	}

	profiles := make([]models.PageProfile, 0, len(urls))
	fetches := make([]models.PageFetch, 0, len(urls))
	for _, r := range ordered {
		fetches = append(fetches, r.fetch)
		if r.ok {
			profiles = append(profiles, r.profile)
		}
	}
	p.Logger.Info("scrape phase finished", "kind", kind, "succeeded", len(profiles), "failed", len(urls)-len(profiles))
	return profiles, fetches
}

func (p *Pipeline) scrapeWorker(ctx context.Context, id int, kind string, wg *sync.WaitGroup, jobs <-chan scrapeJob, results chan<- scrapeResult) {
	defer wg.Done()
	logger := p.Logger.With("worker", id, "kind", kind)

	for job := range jobs {
		logger.Debug("scraping page", "url", job.url)
		profile, err := p.Scraper.ScrapeProfile(ctx, job.url, p.Analyzer)
		fetch := models.PageFetch{URL: job.url, Kind: kind}
		if err != nil {
			logger.Warn("scrape failed", "url", job.url, "error", err)
			fetch.Error = err.Error()
			results <- scrapeResult{index: job.index, fetch: fetch}
			continue
		}
		fetch.OK = true
		fetch.WordCount = profile.Analysis.WordCount
		results <- scrapeResult{index: job.index, profile: profile, fetch: fetch, ok: true}
	}
}
