package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scrapeBody(html, markdown string) map[string]any {
	return map[string]any{
		"success": true,
		"data":    map[string]any{"html": html, "markdown": markdown},
	}
}

func TestScrapePrefersHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		var req scrapeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Formats) != 2 || req.Formats[0] != "markdown" || req.Formats[1] != "html" {
			t.Errorf("formats = %v", req.Formats)
		}
		json.NewEncoder(w).Encode(scrapeBody("<p>html wins</p>", "md loses"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, RetryDelay: time.Millisecond}, testLogger())
	content, err := client.Scrape(context.Background(), "https://a.example")
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if content != "<p>html wins</p>" {
		t.Errorf("content = %q", content)
	}
}

func TestScrapeFallsBackToMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(scrapeBody("", "# markdown only"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, RetryDelay: time.Millisecond}, testLogger())
	content, err := client.Scrape(context.Background(), "https://a.example")
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if content != "# markdown only" {
		t.Errorf("content = %q", content)
	}
}

func TestScrapeRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(scrapeBody("<p>third time</p>", ""))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, RetryDelay: time.Millisecond}, testLogger())
	content, err := client.Scrape(context.Background(), "https://a.example")
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("attempts = %d, want 3", calls.Load())
	}
	if content != "<p>third time</p>" {
		t.Errorf("content = %q", content)
	}
}

func TestScrapeExhaustionReturnsError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, RetryDelay: time.Millisecond}, testLogger())
	_, err := client.Scrape(context.Background(), "https://a.example")
	if err == nil {
		t.Fatal("expected error after retry exhaustion")
	}
	if calls.Load() != 3 {
		t.Errorf("attempts = %d, want 3", calls.Load())
	}
}

func TestScrapeWithoutKey(t *testing.T) {
	client := NewClient(Config{RetryDelay: time.Millisecond}, testLogger())
	if client.Enabled() {
		t.Error("Enabled() should be false without key")
	}
	_, err := client.Scrape(context.Background(), "https://a.example")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestScrapeProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "blocked"})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, RetryDelay: time.Millisecond}, testLogger())
	_, err := client.Scrape(context.Background(), "https://a.example")
	if err == nil {
		t.Fatal("expected error for rejected scrape")
	}
}

type mapCache struct {
	entries map[string]string
}

func (m *mapCache) Get(url string) (string, bool) {
	v, ok := m.entries[url]
	return v, ok
}

func (m *mapCache) Set(url, content string) error {
	m.entries[url] = content
	return nil
}

func TestScrapeUsesCache(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]string{"html": "<p>fresh</p>"},
		})
	}))
	defer server.Close()

	cache := &mapCache{entries: map[string]string{}}
	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, RetryDelay: time.Millisecond}, testLogger()).WithCache(cache)

	first, err := client.Scrape(context.Background(), "https://a.example")
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	second, err := client.Scrape(context.Background(), "https://a.example")
	if err != nil {
		t.Fatalf("Scrape (cached): %v", err)
	}
	if first != second {
		t.Errorf("cached content differs: %q vs %q", first, second)
	}
	if calls.Load() != 1 {
		t.Errorf("provider calls = %d, want 1", calls.Load())
	}
	if cache.entries["https://a.example"] != "<p>fresh</p>" {
		t.Errorf("cache entry = %q", cache.entries["https://a.example"])
	}
}
