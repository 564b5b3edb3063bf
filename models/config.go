package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credentials holds the API keys for the external providers. Any key may be
// absent; the run then proceeds without that capability.
type Credentials struct {
	SerpAPI    string `yaml:"serpapi_key"`
	Firecrawl  string `yaml:"firecrawl_key"`
	Perplexity string `yaml:"perplexity_key"`
	OpenAI     string `yaml:"openai_key"`
	Anthropic  string `yaml:"anthropic_key"`
}

// ModelConfig names the models used per stage.
type ModelConfig struct {
	Outline  string `yaml:"outline"`
	Research string `yaml:"research"`
	Blog     string `yaml:"blog"`
}

// Config is the file-backed runtime configuration. Credentials from the
// environment take precedence over the file so keys can stay out of it.
type Config struct {
	Credentials Credentials `yaml:"credentials"`
	Models      ModelConfig `yaml:"models"`
	OutputDir   string      `yaml:"output_dir"`
	WorkerCount int         `yaml:"workers"`
	PromptsDir  string      `yaml:"prompts_dir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Models: ModelConfig{
			Outline:  "gpt-4o",
			Research: "sonar-deep-research",
			Blog:     "claude-3-7-sonnet-20250219",
		},
		OutputDir:   "seoforge-results",
		WorkerCount: 4,
	}
}

// LoadConfig reads the yaml config at path (missing file is not an error) and
// overlays credential environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	overlayEnv(&cfg.Credentials.SerpAPI, "SERPAPI_KEY")
	overlayEnv(&cfg.Credentials.Firecrawl, "FIRECRAWL_API_KEY")
	overlayEnv(&cfg.Credentials.Perplexity, "PERPLEXITY_API_KEY")
	overlayEnv(&cfg.Credentials.OpenAI, "OPENAI_API_KEY")
	overlayEnv(&cfg.Credentials.Anthropic, "ANTHROPIC_API_KEY")

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "seoforge-results"
	}
	return cfg, nil
}

func overlayEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// MissingCapabilities lists human-readable capability names whose credential
// is absent. Used for operator-facing status output.
func (c Config) MissingCapabilities() []string {
	var missing []string
	if c.Credentials.SerpAPI == "" {
		missing = append(missing, "search results (SERPAPI_KEY)")
	}
	if c.Credentials.Firecrawl == "" {
		missing = append(missing, "page scraping (FIRECRAWL_API_KEY)")
	}
	if c.Credentials.Perplexity == "" {
		missing = append(missing, "deep research (PERPLEXITY_API_KEY)")
	}
	if c.Credentials.OpenAI == "" {
		missing = append(missing, "outline generation (OPENAI_API_KEY)")
	}
	if c.Credentials.Anthropic == "" {
		missing = append(missing, "blog generation (ANTHROPIC_API_KEY)")
	}
	return missing
}
