// Package research requests a deep-research report from the research
// provider. The provider speaks the chat-completions wire format but adds a
// top-level citations list, so the client decodes the response itself.
package research

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/seoforge/seoforge/models"
)

const DefaultBaseURL = "https://api.perplexity.ai/chat/completions"

// Config configures the deep-research client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client performs deep-research calls.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient fills defaults: sonar-deep-research model, 5 minute timeout
// (deep research runs long).
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "sonar-deep-research"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type researchRequest struct {
	Model                  string        `json:"model"`
	Messages               []chatMessage `json:"messages"`
	Temperature            float64       `json:"temperature"`
	TopP                   float64       `json:"top_p"`
	MaxTokens              int           `json:"max_tokens"`
	ReturnRelatedQuestions bool          `json:"return_related_questions"`
	Stream                 bool          `json:"stream"`
}

type researchResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// DeepResearch sends the query as a single user message with the fixed
// sampling parameters. Any failure degrades to the sentinel output; the
// pipeline keeps running without research input.
func (c *Client) DeepResearch(ctx context.Context, query string) models.ResearchOutput {
	if c.cfg.APIKey == "" {
		c.logger.Error("PERPLEXITY_API_KEY is not set, skipping deep research")
		return models.EmptyResearchOutput()
	}

	payload, err := json.Marshal(researchRequest{
		Model:                  c.cfg.Model,
		Messages:               []chatMessage{{Role: "user", Content: query}},
		Temperature:            0.7,
		TopP:                   1.0,
		MaxTokens:              1024,
		ReturnRelatedQuestions: true,
		Stream:                 false,
	})
	if err != nil {
		c.logger.Error("failed to encode research request", "error", err)
		return models.EmptyResearchOutput()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("failed to create research request", "error", err)
		return models.EmptyResearchOutput()
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("deep research request failed", "query", query, "error", err)
		return models.EmptyResearchOutput()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("deep research error", "status", resp.StatusCode, "body", string(body))
		return models.EmptyResearchOutput()
	}

	var parsed researchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("failed to decode research response", "error", err)
		return models.EmptyResearchOutput()
	}

	out := models.ResearchOutput{CitationURLs: parsed.Citations}
	if len(parsed.Choices) > 0 && parsed.Choices[0].Message.Content != "" {
		out.ThinkingText = parsed.Choices[0].Message.Content
	} else {
		out.ThinkingText = models.NoResearchOutput
	}
	return out
}
