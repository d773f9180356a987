// Package pipeline turns an input source into a finished template: acquire
// the text (file or URL, stripping HTML when needed), run one extraction
// session over it, and render the result.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"stencil/internal/model"
	"stencil/internal/render"
	"stencil/internal/session"
)

// Pipeline drives extraction for the CLI
type Pipeline struct {
	fetcher  *Fetcher
	renderer *render.Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	return &Pipeline{
		fetcher:  NewFetcher(cfg.HTTP, cfg.Cache),
		renderer: render.NewRenderer(cfg.Output),
		config:   cfg,
	}
}

// ExtractSource extracts a template from a URL or file path
func (p *Pipeline) ExtractSource(ctx context.Context, source string) (*model.Template, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return p.ExtractURL(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return p.ExtractText(string(data))
}

// ExtractURL fetches a posting page and extracts a template from its visible
// text
func (p *Pipeline) ExtractURL(ctx context.Context, url string) (*model.Template, error) {
	fetched, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	text := fetched.Body
	if LooksLikeHTML(fetched.ContentType, text) {
		text, err = VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("strip HTML: %w", err)
		}
	}
	return p.ExtractText(text)
}

// ExtractText runs one extraction session over raw text
func (p *Pipeline) ExtractText(text string) (*model.Template, error) {
	if LooksLikeHTML("", text) {
		stripped, err := VisibleText(text)
		if err == nil {
			text = stripped
		}
	}
	tmpl, err := session.Run(p.config, strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return tmpl, nil
}

// RenderTemplate writes the template to the requested outputs and prints the
// summary
func (p *Pipeline) RenderTemplate(w io.Writer, t *model.Template, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(t, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(w, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(t, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(w, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}
	p.renderer.RenderSummary(w, t)
	return nil
}
