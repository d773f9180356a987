package registry

import (
	"errors"
	"testing"

	"stencil/internal/model"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hiring manager", "HIRING_MANAGER"},
		{"COMPANY_NAME", "COMPANY_NAME"},
		{"  team-size  ", "TEAM_SIZE"},
		{"v2 launch!", "V2_LAUNCH"},
		{"salary_", "SALARY"},
	}
	for _, c := range cases {
		got, err := Normalize(c.in)
		if err != nil {
			t.Errorf("Normalize(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "123abc", "!!!"} {
		if _, err := Normalize(in); !errors.Is(err, model.ErrInvalidName) {
			t.Errorf("Normalize(%q): expected ErrInvalidName, got %v", in, err)
		}
	}
}

func TestRegistry_AddCustom(t *testing.T) {
	r := New()

	v, err := r.AddCustom("hiring manager")
	if err != nil {
		t.Fatalf("AddCustom: %v", err)
	}
	if v.Name != "HIRING_MANAGER" {
		t.Errorf("expected HIRING_MANAGER, got %s", v.Name)
	}
	if v.Occurrences != 0 || v.Value != "" {
		t.Errorf("custom variable must start empty, got %+v", v)
	}
	if v.Origin != model.OriginCustom {
		t.Errorf("expected custom origin, got %s", v.Origin)
	}

	if _, err := r.AddCustom("Hiring-Manager"); !errors.Is(err, model.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName for normalized collision, got %v", err)
	}
}

func TestRegistry_AppendDuplicate(t *testing.T) {
	r := New()
	if err := r.Append(model.Variable{Name: "SALARY", Value: "$90k"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	err := r.Append(model.Variable{Name: "SALARY", Value: "$80k"})
	if !errors.Is(err, model.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("duplicate appended anyway, len = %d", r.Len())
	}
}

func TestRegistry_RemoveRestoresValue(t *testing.T) {
	r := New()
	v := model.Variable{Name: "COMPANY_NAME", Value: "Acme Corp", Occurrences: 2}
	if err := r.Append(v); err != nil {
		t.Fatalf("Append: %v", err)
	}
	text := "[COMPANY_NAME] is hiring. Join [COMPANY_NAME] today."

	restored, err := r.Remove("COMPANY_NAME", text)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if restored != "Acme Corp is hiring. Join Acme Corp today." {
		t.Errorf("value not restored: %q", restored)
	}
	if _, err := r.Get("COMPANY_NAME"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("variable still present after remove: %v", err)
	}
}

func TestRegistry_RemoveUnknown(t *testing.T) {
	r := New()
	text := "unchanged"
	got, err := r.Remove("MISSING", text)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if got != text {
		t.Errorf("text modified on failed remove: %q", got)
	}
}

func TestRegistry_Rename(t *testing.T) {
	r := New()
	if err := r.Append(model.Variable{Name: "LINK", Value: "https://x.test", Occurrences: 1}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	text := "Apply at [LINK]."

	updated, err := r.Rename("LINK", "apply url", text)
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if updated != "Apply at [APPLY_URL]." {
		t.Errorf("tokens not rewritten: %q", updated)
	}
	if _, err := r.Get("APPLY_URL"); err != nil {
		t.Errorf("renamed variable missing: %v", err)
	}
	if _, err := r.Get("LINK"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("old name still resolves")
	}
}

func TestRegistry_RenameCollision(t *testing.T) {
	r := New()
	if err := r.Append(
		model.Variable{Name: "LINK", Value: "https://x.test"},
		model.Variable{Name: "APPLY_URL", Value: "https://y.test"},
	); err != nil {
		t.Fatalf("Append: %v", err)
	}
	text := "Apply at [LINK] or [APPLY_URL]."

	got, err := r.Rename("LINK", "apply url", text)
	if !errors.Is(err, model.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	if got != text {
		t.Errorf("text modified on failed rename: %q", got)
	}
}

func TestRegistry_Recount(t *testing.T) {
	r := New()
	if err := r.Append(
		model.Variable{Name: "SALARY", Value: "$90k", Occurrences: 5},
		model.Variable{Name: "ROLE", Value: "Engineer", Occurrences: 0},
	); err != nil {
		t.Fatalf("Append: %v", err)
	}

	r.Recount("Pay is [SALARY] for a [ROLE]. Yes, [SALARY].")

	salary, _ := r.Get("SALARY")
	role, _ := r.Get("ROLE")
	if salary.Occurrences != 2 {
		t.Errorf("SALARY: expected 2, got %d", salary.Occurrences)
	}
	if role.Occurrences != 1 {
		t.Errorf("ROLE: expected 1, got %d", role.Occurrences)
	}
}

func TestRegistry_ListIsCopy(t *testing.T) {
	r := New()
	if err := r.Append(model.Variable{Name: "ROLE", Value: "Engineer"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	list := r.List()
	list[0].Name = "MUTATED"

	if v, _ := r.Get("ROLE"); v.Name != "ROLE" {
		t.Errorf("registry state leaked through List")
	}
}
