// Package scrape fetches page content through the scraping provider. One
// failing URL is local: the caller skips it and keeps going.
package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/seoforge/seoforge/models"
)

const DefaultBaseURL = "https://api.firecrawl.dev/v1/scrape"

// ErrNoAPIKey is returned when the scraping capability is not configured.
var ErrNoAPIKey = errors.New("scraping API key not set")

// Config configures the scraping client.
type Config struct {
	APIKey     string
	BaseURL    string
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// PageCache stores scraped content between runs. Satisfied by
// caching.Cache.
type PageCache interface {
	Get(url string) (string, bool)
	Set(url, content string) error
}

// Client talks to a Firecrawl-compatible scrape endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
	cache      PageCache
}

// WithCache sets a page cache consulted before the provider is called.
func (c *Client) WithCache(cache PageCache) *Client {
	c.cache = cache
	return c
}

// NewClient applies the fixed retry policy defaults: 3 attempts with a 5s
// pause, 60s per-call timeout.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Enabled reports whether the scraping capability is configured.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// Scrape requests markdown+html for one URL and returns whichever the
// provider produced, preferring html. Retries up to the configured bound;
// the final error means this single URL is skipped, not the batch.
func (c *Client) Scrape(ctx context.Context, targetURL string) (string, error) {
	if !c.Enabled() {
		return "", ErrNoAPIKey
	}

	if c.cache != nil {
		if content, ok := c.cache.Get(targetURL); ok {
			c.logger.Debug("scrape cache hit", "url", targetURL)
			return content, nil
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		content, err := c.scrapeOnce(ctx, targetURL)
		if err == nil {
			if c.cache != nil {
				if cerr := c.cache.Set(targetURL, content); cerr != nil {
					c.logger.Warn("failed to cache scraped page", "url", targetURL, "error", cerr)
				}
			}
			return content, nil
		}
		lastErr = err
		if attempt == c.cfg.MaxRetries {
			break
		}
		c.logger.Warn("scrape attempt failed, retrying", "url", targetURL, "attempt", attempt, "error", err)
		select {
		case <-time.After(c.cfg.RetryDelay):
		case <-ctx.Done():
			return "", fmt.Errorf("scrape canceled: %w", ctx.Err())
		}
	}
	return "", fmt.Errorf("scrape failed after %d attempts: %w", c.cfg.MaxRetries, lastErr)
}

// ScrapeProfile scrapes and analyzes one URL in a single call.
func (c *Client) ScrapeProfile(ctx context.Context, targetURL string, a Profiler) (models.PageProfile, error) {
	content, err := c.Scrape(ctx, targetURL)
	if err != nil {
		return models.PageProfile{}, err
	}
	return a.Profile(targetURL, content), nil
}

// Profiler turns raw content into a page profile. Satisfied by
// analyzer.Analyzer; declared here so tests can substitute a fake.
type Profiler interface {
	Profile(pageURL, rawContent string) models.PageProfile
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		HTML     string `json:"html"`
		Markdown string `json:"markdown"`
	} `json:"data"`
	Error string `json:"error"`
}

func (c *Client) scrapeOnce(ctx context.Context, targetURL string) (string, error) {
	payload, err := json.Marshal(scrapeRequest{
		URL:     targetURL,
		Formats: []string{"markdown", "html"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var parsed scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !parsed.Success {
		return "", fmt.Errorf("provider rejected scrape: %s", parsed.Error)
	}

	if parsed.Data.HTML != "" {
		return parsed.Data.HTML, nil
	}
	if parsed.Data.Markdown != "" {
		return parsed.Data.Markdown, nil
	}
	return "", errors.New("provider returned no content")
}
