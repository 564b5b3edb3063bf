// Package blog generates the final article with an Anthropic model.
// Unlike the degradable pipeline stages, blog generation fails hard:
// the article is the product, and a silently empty one helps nobody.
package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/seoforge/seoforge/pkg/prompts"
)

// ErrNoAPIKey is returned when blog generation is requested without an
// Anthropic credential.
var ErrNoAPIKey = errors.New("blog: missing ANTHROPIC_API_KEY")

// Messenger produces one model response from a system prompt and user
// message.
type Messenger interface {
	Message(ctx context.Context, system, user string) (string, error)
}

// Config controls the Anthropic-backed messenger.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = "claude-3-7-sonnet-20250219"
	}
	if c.Timeout <= 0 {
		c.Timeout = 3 * time.Minute
	}
}

// AnthropicMessenger implements Messenger against the Anthropic API.
type AnthropicMessenger struct {
	client anthropic.Client
	cfg    Config
}

func NewAnthropicMessenger(cfg Config) *AnthropicMessenger {
	cfg.applyDefaults()
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &AnthropicMessenger{client: anthropic.NewClient(opts...), cfg: cfg}
}

func (m *AnthropicMessenger) Message(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	resp, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(m.cfg.Model),
		MaxTokens:   4096,
		Temperature: anthropic.Float(0.7),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("blog message: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("blog message: no text content in response")
	}
	return b.String(), nil
}

// Generator renders the blog prompt and runs the model.
type Generator struct {
	messenger Messenger
	set       *prompts.Set
	logger    *slog.Logger
	audience  string
}

// NewGenerator builds a Generator. A nil messenger means no credential
// was configured; Generate then returns ErrNoAPIKey.
func NewGenerator(messenger Messenger, set *prompts.Set, audience string, logger *slog.Logger) *Generator {
	return &Generator{messenger: messenger, set: set, audience: audience, logger: logger}
}

// Generate produces the blog article from the outline document and the
// research report. The report is cleaned into an excerpt first; an
// empty report simply omits the research section of the prompt.
func (g *Generator) Generate(ctx context.Context, outlineDoc, researchReport string) (string, error) {
	if g.messenger == nil {
		return "", ErrNoAPIKey
	}

	prompt, err := g.set.Blog(prompts.BlogData{
		Audience: g.audience,
		Outline:  outlineDoc,
		Excerpt:  CleanExcerpt(researchReport),
	})
	if err != nil {
		return "", err
	}

	g.logger.Info("generating blog content")
	article, err := g.messenger.Message(ctx, prompts.BlogSystem, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(article) == "" {
		return "", errors.New("blog: model returned empty article")
	}
	return article, nil
}
