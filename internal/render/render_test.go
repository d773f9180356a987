package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stencil/internal/model"
)

func sampleTemplate() *model.Template {
	return &model.Template{
		Name:   "job-post",
		Source: "Join Acme Corp today.",
		Text:   "Join [COMPANY_NAME] today.",
		Variables: []model.Variable{
			{Name: "COMPANY_NAME", Value: "Acme Corp", Occurrences: 1, Label: "Company Name", Origin: model.OriginDetected},
			{Name: "HIRING_MANAGER", Label: "Custom", Origin: model.OriginCustom},
		},
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	r := NewRenderer(model.DefaultConfig().Output)
	path := filepath.Join(t.TempDir(), "out.json")

	if err := r.RenderJSON(sampleTemplate(), path); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got model.Template
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Text != "Join [COMPANY_NAME] today." {
		t.Errorf("text lost: %q", got.Text)
	}
	if len(got.Variables) != 2 || got.Variables[0].Value != "Acme Corp" {
		t.Errorf("variables lost: %+v", got.Variables)
	}
}

func TestRenderMarkdown(t *testing.T) {
	r := NewRenderer(model.DefaultConfig().Output)
	path := filepath.Join(t.TempDir(), "out.md")

	if err := r.RenderMarkdown(sampleTemplate(), path); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Join [COMPANY_NAME] today.", "| COMPANY_NAME | Acme Corp | 1 |", "HIRING_MANAGER"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	r := NewRenderer(model.DefaultConfig().Output)
	var buf bytes.Buffer

	r.RenderSummary(&buf, sampleTemplate())

	out := buf.String()
	if !strings.Contains(out, "«[COMPANY_NAME]»") {
		t.Errorf("token not highlighted:\n%s", out)
	}
	if !strings.Contains(out, "Variables (2):") {
		t.Errorf("variable count missing:\n%s", out)
	}
	if !strings.Contains(out, "(custom)") {
		t.Errorf("custom variable not marked:\n%s", out)
	}
}

func TestRenderSummary_NoVariables(t *testing.T) {
	r := NewRenderer(model.DefaultConfig().Output)
	var buf bytes.Buffer

	r.RenderSummary(&buf, &model.Template{Text: "nothing here"})

	if !strings.Contains(buf.String(), "No variables detected.") {
		t.Errorf("empty case not reported:\n%s", buf.String())
	}
}
