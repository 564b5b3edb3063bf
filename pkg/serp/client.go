// Package serp queries the search-results provider. Failures degrade to an
// empty result set so a bad provider day never aborts a run.
package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/seoforge/seoforge/models"
)

const DefaultBaseURL = "https://serpapi.com/search"

// Config configures the search client.
type Config struct {
	APIKey     string
	BaseURL    string
	NumResults int
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// Client talks to a SerpAPI-compatible endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient applies the fixed retry policy defaults: 3 attempts, 2s pause,
// 30s per-call timeout, 10 results, English/US locale.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.NumResults <= 0 {
		cfg.NumResults = 10
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Search fetches one result page for query. On a missing key or after
// exhausting retries it logs and returns an empty set.
func (c *Client) Search(ctx context.Context, query string) models.SearchResultSet {
	empty := models.SearchResultSet{SearchParameters: map[string]string{"q": query}}

	if c.cfg.APIKey == "" {
		c.logger.Error("SERPAPI_KEY is not set, skipping search results")
		return empty
	}

	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		results, err := c.searchOnce(ctx, query)
		if err == nil {
			return results
		}
		if attempt == c.cfg.MaxRetries {
			c.logger.Error("search failed after retries", "query", query, "attempts", c.cfg.MaxRetries, "error", err)
			return empty
		}
		c.logger.Warn("search attempt failed, retrying", "query", query, "attempt", attempt, "error", err)
		select {
		case <-time.After(c.cfg.RetryDelay):
		case <-ctx.Done():
			c.logger.Error("search canceled", "query", query, "error", ctx.Err())
			return empty
		}
	}
	return empty
}

type searchResponse struct {
	OrganicResults []struct {
		Title         string `json:"title"`
		Link          string `json:"link"`
		Date          string `json:"date"`
		Snippet       string `json:"snippet"`
		Position      int    `json:"position"`
		DisplayedLink string `json:"displayed_link"`
	} `json:"organic_results"`
	RelatedQuestions []struct {
		Question string `json:"question"`
		Snippet  string `json:"snippet"`
		Title    string `json:"title"`
	} `json:"related_questions"`
	RelatedSearches []struct {
		Query string `json:"query"`
	} `json:"related_searches"`
	SearchParameters map[string]any `json:"search_parameters"`
}

func (c *Client) searchOnce(ctx context.Context, query string) (models.SearchResultSet, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.cfg.APIKey)
	params.Set("num", strconv.Itoa(c.cfg.NumResults))
	params.Set("hl", "en")
	params.Set("gl", "us")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.SearchResultSet{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SearchResultSet{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.SearchResultSet{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.SearchResultSet{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return toResultSet(parsed, query), nil
}

func toResultSet(parsed searchResponse, query string) models.SearchResultSet {
	set := models.SearchResultSet{
		SearchParameters: map[string]string{},
	}
	for _, r := range parsed.OrganicResults {
		set.OrganicResults = append(set.OrganicResults, models.OrganicResult{
			Title:         r.Title,
			Link:          r.Link,
			Date:          r.Date,
			Snippet:       r.Snippet,
			Position:      r.Position,
			DisplayedLink: r.DisplayedLink,
		})
	}
	for _, q := range parsed.RelatedQuestions {
		set.PAAQuestions = append(set.PAAQuestions, models.PAAQuestion{
			Question: q.Question,
			Snippet:  q.Snippet,
			Title:    q.Title,
		})
	}
	for _, s := range parsed.RelatedSearches {
		set.RelatedSearches = append(set.RelatedSearches, models.RelatedSearch{Query: s.Query})
	}
	for k, v := range parsed.SearchParameters {
		if s, ok := v.(string); ok {
			set.SearchParameters[k] = s
		}
	}
	if set.SearchParameters["q"] == "" {
		set.SearchParameters["q"] = query
	}
	return set
}
