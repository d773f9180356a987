package llm

import (
	"context"
	"fmt"
	"strings"

	"stencil/internal/model"
)

// Fill substitutes the given values into the template text and returns the
// result plus the names of variables that had neither a value supplied nor an
// original literal to fall back on. Custom variables have no stored value, so
// they stay unfilled unless the caller provides one.
func Fill(t *model.Template, values map[string]string) (string, []string) {
	text := t.Text
	var missing []string
	for _, v := range t.Variables {
		value, ok := values[v.Name]
		if !ok {
			value = v.Value
		}
		if value == "" {
			missing = append(missing, v.Name)
			continue
		}
		text = strings.ReplaceAll(text, v.Token(), value)
	}
	return text, missing
}

// ProposeValues asks the provider to suggest values for the named variables,
// given the template for context. The response is parsed as NAME: value
// lines; anything unparseable is ignored.
func ProposeValues(ctx context.Context, p Provider, t *model.Template, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	var b strings.Builder
	b.WriteString("The following text template uses bracketed placeholders:\n\n")
	b.WriteString(t.Text)
	b.WriteString("\n\nPropose a plausible value for each of these placeholders:\n")
	for _, name := range names {
		if v, ok := t.Lookup(name); ok && v.Description != "" {
			fmt.Fprintf(&b, "- %s (%s)\n", name, v.Description)
		} else {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	b.WriteString("\nAnswer with one line per placeholder in the exact form NAME: value, nothing else.")

	resp, err := p.Complete(ctx, CompleteRequest{
		System: "You fill placeholder variables in content templates. Answer only in the requested format.",
		Prompt: b.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("propose values: %w", err)
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	values := make(map[string]string)
	for _, line := range strings.Split(resp.Text, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.Trim(strings.TrimSpace(name), "-[] ")
		value = strings.TrimSpace(value)
		if wanted[name] && value != "" {
			values[name] = value
		}
	}
	return values, nil
}
