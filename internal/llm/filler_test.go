package llm

import (
	"context"
	"testing"

	"stencil/internal/model"
)

func fillTemplate() *model.Template {
	return &model.Template{
		Text: "Join [COMPANY_NAME] as a [ROLE]. Contact [HIRING_MANAGER].",
		Variables: []model.Variable{
			{Name: "COMPANY_NAME", Value: "Acme Corp", Occurrences: 1, Origin: model.OriginDetected},
			{Name: "ROLE", Value: "Software Engineer", Occurrences: 1, Origin: model.OriginDetected},
			{Name: "HIRING_MANAGER", Origin: model.OriginCustom},
		},
	}
}

func TestFill_SuppliedValuesWin(t *testing.T) {
	text, missing := Fill(fillTemplate(), map[string]string{
		"COMPANY_NAME":   "Globex Corporation",
		"HIRING_MANAGER": "Jordan Lee",
	})

	if text != "Join Globex Corporation as a Software Engineer. Contact Jordan Lee." {
		t.Errorf("unexpected fill: %q", text)
	}
	if len(missing) != 0 {
		t.Errorf("unexpected missing: %v", missing)
	}
}

func TestFill_FallsBackToOriginals(t *testing.T) {
	text, missing := Fill(fillTemplate(), nil)

	if text != "Join Acme Corp as a Software Engineer. Contact [HIRING_MANAGER]." {
		t.Errorf("unexpected fill: %q", text)
	}
	if len(missing) != 1 || missing[0] != "HIRING_MANAGER" {
		t.Errorf("expected HIRING_MANAGER missing, got %v", missing)
	}
}

type scriptedProvider struct {
	text    string
	lastReq CompleteRequest
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(ctx context.Context, req CompleteRequest) (*CompleteResponse, error) {
	p.lastReq = req
	return &CompleteResponse{Text: p.text}, nil
}

func TestProposeValues_ParsesResponse(t *testing.T) {
	p := &scriptedProvider{text: "HIRING_MANAGER: Jordan Lee\n- ROLE: Backend Engineer\nnothing parseable\nUNASKED: ignored\nCOMPANY_NAME:\n"}

	values, err := ProposeValues(context.Background(), p, fillTemplate(), []string{"HIRING_MANAGER", "ROLE", "COMPANY_NAME"})
	if err != nil {
		t.Fatalf("ProposeValues: %v", err)
	}

	if values["HIRING_MANAGER"] != "Jordan Lee" {
		t.Errorf("HIRING_MANAGER = %q", values["HIRING_MANAGER"])
	}
	if values["ROLE"] != "Backend Engineer" {
		t.Errorf("list-prefixed line not parsed: %q", values["ROLE"])
	}
	if _, ok := values["UNASKED"]; ok {
		t.Errorf("unrequested name accepted")
	}
	if _, ok := values["COMPANY_NAME"]; ok {
		t.Errorf("empty value accepted")
	}
}

func TestProposeValues_NoNames(t *testing.T) {
	p := &scriptedProvider{}
	values, err := ProposeValues(context.Background(), p, fillTemplate(), nil)
	if err != nil {
		t.Fatalf("ProposeValues: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected no values, got %v", values)
	}
	if p.lastReq.Prompt != "" {
		t.Errorf("provider called with no names requested")
	}
}
