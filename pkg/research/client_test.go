package research

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seoforge/seoforge/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeepResearchParsesContentAndCitations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		var req researchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "sonar-deep-research" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Temperature != 0.7 || req.TopP != 1.0 || req.MaxTokens != 1024 {
			t.Errorf("sampling = %+v", req)
		}
		if !req.ReturnRelatedQuestions || req.Stream {
			t.Errorf("flags = %+v", req)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "<think>reasoning</think>findings"}},
			},
			"citations": []string{"https://cite1.example", "https://cite2.example"},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, testLogger())
	out := client.DeepResearch(context.Background(), "concrete mixing ratios")

	if out.ThinkingText != "<think>reasoning</think>findings" {
		t.Errorf("ThinkingText = %q", out.ThinkingText)
	}
	if len(out.CitationURLs) != 2 {
		t.Errorf("citations = %v", out.CitationURLs)
	}
}

func TestDeepResearchDegradesOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, testLogger())
	out := client.DeepResearch(context.Background(), "anything")
	if out.ThinkingText != models.NoResearchOutput {
		t.Errorf("ThinkingText = %q, want sentinel", out.ThinkingText)
	}
	if len(out.CitationURLs) != 0 {
		t.Errorf("citations = %v, want none", out.CitationURLs)
	}
}

func TestDeepResearchMissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the provider without a key")
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, testLogger())
	out := client.DeepResearch(context.Background(), "anything")
	if out.ThinkingText != models.NoResearchOutput {
		t.Errorf("ThinkingText = %q, want sentinel", out.ThinkingText)
	}
}

func TestDeepResearchEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}, "citations": []string{"https://c.example"}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, testLogger())
	out := client.DeepResearch(context.Background(), "anything")
	if out.ThinkingText != models.NoResearchOutput {
		t.Errorf("ThinkingText = %q, want sentinel", out.ThinkingText)
	}
	if len(out.CitationURLs) != 1 {
		t.Errorf("citations should still be carried: %v", out.CitationURLs)
	}
}
