// Package prompts holds the prompt templates sent to the language models.
// The built-in templates are embedded; a directory of overrides can be
// supplied so prompts are tunable without rebuilding.
package prompts

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var builtin embed.FS

const (
	outlineFile = "outline.tmpl"
	blogFile    = "blog.tmpl"

	// BlogSystem is the system prompt for the blog model.
	BlogSystem = "You are an expert blog writer and SEO specialist. Your task is to generate high-quality, SEO-optimized blog content based on the given outline."

	// DefaultAudience is used when no audience override is configured.
	DefaultAudience = "people searching for this topic, practitioners in the industry, business owners and related personas who want to know more about the industry and its policies"
)

// OutlineData fills the outline instruction template.
type OutlineData struct {
	Query             string
	PrimaryAudience   string
	SecondaryAudience string
	IndustryLevel     string
	SecondaryKeywords string
	Intent            string
	Year              int
}

// BlogData fills the blog instruction template.
type BlogData struct {
	Audience string
	Outline  string
	Excerpt  string
}

// Set is a parsed pair of prompt templates.
type Set struct {
	outline *template.Template
	blog    *template.Template
}

// Load parses the built-in templates, preferring files of the same name
// under dir when dir is non-empty. A missing override file falls back to
// the embedded copy; a present but unparsable one is an error.
func Load(dir string) (*Set, error) {
	outline, err := loadOne(dir, outlineFile)
	if err != nil {
		return nil, err
	}
	blog, err := loadOne(dir, blogFile)
	if err != nil {
		return nil, err
	}
	return &Set{outline: outline, blog: blog}, nil
}

func loadOne(dir, name string) (*template.Template, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err == nil {
			t, perr := template.New(name).Parse(string(raw))
			if perr != nil {
				return nil, fmt.Errorf("parse prompt override %s: %w", path, perr)
			}
			return t, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read prompt override %s: %w", path, err)
		}
	}
	raw, err := builtin.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded prompt %s: %w", name, err)
	}
	t, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse embedded prompt %s: %w", name, err)
	}
	return t, nil
}

// Outline renders the outline instruction prompt.
func (s *Set) Outline(data OutlineData) (string, error) {
	return render(s.outline, data)
}

// Blog renders the blog instruction prompt. An empty Audience is
// replaced with DefaultAudience.
func (s *Set) Blog(data BlogData) (string, error) {
	if strings.TrimSpace(data.Audience) == "" {
		data.Audience = DefaultAudience
	}
	return render(s.blog, data)
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", t.Name(), err)
	}
	return b.String(), nil
}
