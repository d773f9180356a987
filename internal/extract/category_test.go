package extract

import (
	"strings"
	"testing"

	"stencil/internal/model"
)

func newTestDetector() *Detector {
	return NewDetector(DefaultRules(), 30)
}

func TestDetector_AnchoredCompany(t *testing.T) {
	text := "Company: Acme Corp is hiring."

	updated, added := newTestDetector().Detect(text, nil)

	if len(added) != 1 {
		t.Fatalf("expected 1 variable, got %d: %+v", len(added), added)
	}
	v := added[0]
	if v.Name != "COMPANY_NAME" {
		t.Errorf("expected name COMPANY_NAME, got %s", v.Name)
	}
	if v.Value != "Acme Corp" {
		t.Errorf("expected value 'Acme Corp', got %q", v.Value)
	}
	if v.Occurrences != 1 {
		t.Errorf("expected 1 occurrence, got %d", v.Occurrences)
	}
	if v.Origin != model.OriginDetected {
		t.Errorf("expected detected origin, got %s", v.Origin)
	}
	if updated != "Company: [COMPANY_NAME] is hiring." {
		t.Errorf("unexpected template text: %q", updated)
	}
}

func TestDetector_TwoSalaries(t *testing.T) {
	text := "Salary: $80k-$100k/yr for senior hires. New grad salary $90k/yr."

	updated, added := newTestDetector().Detect(text, nil)

	if len(added) != 2 {
		t.Fatalf("expected 2 variables, got %d: %+v", len(added), added)
	}
	if added[0].Name != "SALARY_1" || added[0].Value != "$80k-$100k/yr" {
		t.Errorf("first salary: got %s=%q", added[0].Name, added[0].Value)
	}
	if added[1].Name != "SALARY_2" || added[1].Value != "$90k/yr" {
		t.Errorf("second salary: got %s=%q", added[1].Name, added[1].Value)
	}
	for _, v := range added {
		if v.Occurrences != 1 {
			t.Errorf("%s: expected 1 occurrence, got %d", v.Name, v.Occurrences)
		}
	}
	if !strings.Contains(updated, "[SALARY_1]") || !strings.Contains(updated, "[SALARY_2]") {
		t.Errorf("tokens missing from template: %q", updated)
	}
	if strings.Contains(updated, "[SALARY]") {
		t.Errorf("bare SALARY token left behind after rename: %q", updated)
	}
}

func TestDetector_ValueOutsideWindow(t *testing.T) {
	// The amount sits more than 30 chars past the anchor, so the rule must
	// not fabricate a value from the far end of the text
	text := "The salary will be announced at a much later stage in this process, specifically $95k/yr"

	updated, added := newTestDetector().Detect(text, nil)

	for _, v := range added {
		if strings.HasPrefix(v.Name, "SALARY") {
			t.Errorf("salary detected outside window: %+v", v)
		}
	}
	if strings.Contains(updated, "[SALARY") {
		t.Errorf("salary token in template: %q", updated)
	}
}

func TestDetector_NoAnchorNoMatch(t *testing.T) {
	text := "Nothing interesting here at all."

	updated, added := newTestDetector().Detect(text, nil)

	if len(added) != 0 {
		t.Errorf("expected no variables, got %+v", added)
	}
	if updated != text {
		t.Errorf("text changed without matches: %q", updated)
	}
}

func TestDetector_ValueAfterAnchorPreferred(t *testing.T) {
	text := "Company: Acme Corp. We partner with another company: Globex Inc."

	_, added := newTestDetector().Detect(text, nil)

	if len(added) != 2 {
		t.Fatalf("expected 2 variables, got %d: %+v", len(added), added)
	}
	if added[1].Value != "Globex Inc" {
		t.Errorf("expected second company 'Globex Inc', got %q", added[1].Value)
	}
	if added[0].Name != "COMPANY_NAME_1" || added[1].Name != "COMPANY_NAME_2" {
		t.Errorf("expected COMPANY_NAME_1/COMPANY_NAME_2, got %s/%s", added[0].Name, added[1].Name)
	}
}

func TestDetector_ExistingVariablesRespected(t *testing.T) {
	existing := []model.Variable{{
		Name:   "SALARY",
		Value:  "$90k/yr",
		Origin: model.OriginDetected,
	}}
	text := "Base salary $90k/yr plus equity. Contractor rate $70/hr."

	_, added := newTestDetector().Detect(text, existing)

	for _, v := range added {
		if v.Value == "$90k/yr" {
			t.Errorf("already-claimed value detected again: %+v", v)
		}
		if strings.HasPrefix(v.Name, "SALARY") && v.Name != "SALARY_2" {
			t.Errorf("expected next salary to be SALARY_2, got %s", v.Name)
		}
	}
}

func TestDetector_TokensAreOpaque(t *testing.T) {
	// A second run over tokenized text must not treat token contents as
	// fresh values
	text := "Company: Acme Corp is hiring."
	once, added := newTestDetector().Detect(text, nil)

	again, more := newTestDetector().Detect(once, added)
	if len(more) != 0 {
		t.Errorf("re-detection produced variables from tokens: %+v", more)
	}
	if again != once {
		t.Errorf("re-detection changed text: %q", again)
	}
}
