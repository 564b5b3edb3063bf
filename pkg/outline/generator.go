// Package outline turns the assembled pipeline context into an SEO
// article outline using an OpenAI chat model.
package outline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/seoforge/seoforge/models"
	"github.com/seoforge/seoforge/pkg/prompts"
)

// Completer produces one chat completion from a system instruction and
// a user message.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config controls the OpenAI-backed completer.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o"
	}
	if c.Timeout <= 0 {
		c.Timeout = 2 * time.Minute
	}
}

// OpenAICompleter implements Completer against the OpenAI chat API.
type OpenAICompleter struct {
	client openai.Client
	cfg    Config
}

// NewOpenAICompleter builds a completer from cfg. The API key may be
// empty; callers gate on credentials before invoking Complete.
func NewOpenAICompleter(cfg Config) *OpenAICompleter {
	cfg.applyDefaults()
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAICompleter{client: openai.NewClient(opts...), cfg: cfg}
}

func (o *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature:         openai.Float(0.7),
		MaxCompletionTokens: openai.Int(3000),
	})
	if err != nil {
		return "", fmt.Errorf("outline completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("outline completion: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Generator renders the outline prompt and formats the model output
// into the final outline document.
type Generator struct {
	completer Completer
	set       *prompts.Set
	logger    *slog.Logger
	now       func() time.Time
}

func NewGenerator(completer Completer, set *prompts.Set, logger *slog.Logger) *Generator {
	return &Generator{completer: completer, set: set, logger: logger, now: time.Now}
}

// Generate produces the outline document for params and the assembled
// pipeline context. Model failures degrade to a document whose body is
// empty; the header and footer are always present.
func (g *Generator) Generate(ctx context.Context, params models.ContentParameters, query, pipelineContext string) string {
	body := ""
	instructions, err := g.set.Outline(prompts.OutlineData{
		Query:             query,
		PrimaryAudience:   params.PrimaryAudience,
		SecondaryAudience: params.SecondaryAudience,
		IndustryLevel:     params.IndustryLevel,
		SecondaryKeywords: joinKeywords(params.SecondaryKeywords),
		Intent:            string(params.Intent),
		Year:              g.now().Year(),
	})
	if err != nil {
		g.logger.Error("outline prompt render failed", "error", err)
	} else if g.completer == nil {
		g.logger.Warn("outline generation skipped, no model credentials")
	} else {
		body, err = g.completer.Complete(ctx, instructions, pipelineContext)
		if err != nil {
			g.logger.Error("outline generation failed", "error", err)
			body = ""
		}
	}
	return formatOutline(query, body, g.now())
}

func formatOutline(query, body string, ts time.Time) string {
	return fmt.Sprintf("SEO Article Outline for: %q\n\n%s\n\nGenerated on: %s\n",
		query, body, ts.Format("2006-01-02 15:04:05"))
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}
