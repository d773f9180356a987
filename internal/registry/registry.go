// Package registry owns the set of active variables for one extraction
// session: unique naming, occurrence counts, and the forward and reverse
// text substitutions.
package registry

import (
	"fmt"
	"regexp"
	"strings"

	"stencil/internal/model"
)

var identRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Registry holds the ordered variable list: detected variables first, in
// discovery order, then custom ones in insertion order.
type Registry struct {
	vars []model.Variable
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Append adds already-built variables (from a detector stage), enforcing the
// unique-name invariant
func (r *Registry) Append(vars ...model.Variable) error {
	for _, v := range vars {
		if r.has(v.Name) {
			return fmt.Errorf("%w: %s", model.ErrDuplicateName, v.Name)
		}
		r.vars = append(r.vars, v)
	}
	return nil
}

// AddCustom creates a user-defined variable with zero occurrences and an
// empty value. The name is normalized to an uppercase underscore-joined
// identifier first.
func (r *Registry) AddCustom(name string) (model.Variable, error) {
	normalized, err := Normalize(name)
	if err != nil {
		return model.Variable{}, err
	}
	if r.has(normalized) {
		return model.Variable{}, fmt.Errorf("%w: %s", model.ErrDuplicateName, normalized)
	}
	v := model.Variable{
		Name:   normalized,
		Label:  "Custom",
		Origin: model.OriginCustom,
	}
	r.vars = append(r.vars, v)
	return v, nil
}

// Remove deletes the named variable and restores its literal value wherever
// its token appears in text. The reverse substitution is literal, not
// pattern-based, so unrelated bracketed text can never be touched.
func (r *Registry) Remove(name, text string) (string, error) {
	i := r.index(name)
	if i < 0 {
		return text, fmt.Errorf("%w: %s", model.ErrNotFound, name)
	}
	v := r.vars[i]
	if v.Occurrences > 0 {
		text = strings.ReplaceAll(text, v.Token(), v.Value)
	}
	r.vars = append(r.vars[:i], r.vars[i+1:]...)
	return text, nil
}

// Rename changes a variable's name and rewrites its tokens in text,
// preserving the unique-name invariant
func (r *Registry) Rename(oldName, newName, text string) (string, error) {
	i := r.index(oldName)
	if i < 0 {
		return text, fmt.Errorf("%w: %s", model.ErrNotFound, oldName)
	}
	normalized, err := Normalize(newName)
	if err != nil {
		return text, err
	}
	if normalized == oldName {
		return text, nil
	}
	if r.has(normalized) {
		return text, fmt.Errorf("%w: %s", model.ErrDuplicateName, normalized)
	}
	old := r.vars[i].Token()
	r.vars[i].Name = normalized
	return strings.ReplaceAll(text, old, r.vars[i].Token()), nil
}

// Get returns the named variable
func (r *Registry) Get(name string) (model.Variable, error) {
	if i := r.index(name); i >= 0 {
		return r.vars[i], nil
	}
	return model.Variable{}, fmt.Errorf("%w: %s", model.ErrNotFound, name)
}

// List returns a copy of the variable list
func (r *Registry) List() []model.Variable {
	out := make([]model.Variable, len(r.vars))
	copy(out, r.vars)
	return out
}

// Len returns the number of variables
func (r *Registry) Len() int {
	return len(r.vars)
}

// Clear removes every variable
func (r *Registry) Clear() {
	r.vars = nil
}

// Recount recomputes each variable's occurrence count from the template
// text, keeping the count and the tokens in agreement after edits
func (r *Registry) Recount(text string) {
	for i := range r.vars {
		r.vars[i].Occurrences = strings.Count(text, r.vars[i].Token())
	}
}

func (r *Registry) has(name string) bool {
	return r.index(name) >= 0
}

func (r *Registry) index(name string) int {
	for i, v := range r.vars {
		if v.Name == name {
			return i
		}
	}
	return -1
}

// Normalize converts free-form input into an uppercase underscore-joined
// identifier: "hiring manager" -> "HIRING_MANAGER"
func Normalize(name string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var b strings.Builder
	lastUnderscore := false
	for _, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '-' || r == '_' || r == '\t':
			if b.Len() > 0 && !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		default:
			// Drop punctuation and anything else
		}
	}
	candidate := strings.TrimSuffix(b.String(), "_")
	if !identRe.MatchString(candidate) {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidName, name)
	}
	return candidate, nil
}
