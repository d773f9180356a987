// Package render writes extraction results for humans and machines
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stencil/internal/model"
)

// Renderer writes templates to files and the terminal
type Renderer struct {
	highlightOpen  string
	highlightClose string
}

// NewRenderer creates a renderer using the configured highlight markers
func NewRenderer(cfg model.OutputConfig) *Renderer {
	return &Renderer{
		highlightOpen:  cfg.HighlightOpen,
		highlightClose: cfg.HighlightClose,
	}
}

// RenderJSON writes the template as indented JSON
func (r *Renderer) RenderJSON(t *model.Template, path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderYAML writes the template as YAML
func (r *Renderer) RenderYAML(t *model.Template, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write YAML: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(t *model.Template, path string) error {
	var b strings.Builder

	b.WriteString("# Extracted Template\n\n")
	if t.Name != "" {
		fmt.Fprintf(&b, "**Name:** %s\n\n", t.Name)
	}
	b.WriteString("```\n")
	b.WriteString(t.Text)
	b.WriteString("\n```\n\n")

	b.WriteString("## Variables\n\n")
	if len(t.Variables) == 0 {
		b.WriteString("None detected.\n")
	} else {
		b.WriteString("| Name | Value | Occurrences | Label | Origin |\n")
		b.WriteString("|------|-------|-------------|-------|--------|\n")
		for _, v := range t.Variables {
			fmt.Fprintf(&b, "| %s | %s | %d | %s | %s |\n",
				v.Name, mdEscape(v.Value), v.Occurrences, v.Label, v.Origin)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints the highlighted template and variable list
func (r *Renderer) RenderSummary(w io.Writer, t *model.Template) {
	fmt.Fprintln(w, Highlight(t.Text, r.highlightOpen, r.highlightClose))
	if len(t.Variables) == 0 {
		fmt.Fprintln(w, "\nNo variables detected.")
		return
	}
	fmt.Fprintf(w, "\nVariables (%d):\n", len(t.Variables))
	for _, v := range t.Variables {
		if v.Origin == model.OriginCustom {
			fmt.Fprintf(w, "  %-24s (custom)\n", v.Name)
			continue
		}
		fmt.Fprintf(w, "  %-24s = %q  ×%d  [%s]\n", v.Name, v.Value, v.Occurrences, v.Label)
	}
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
