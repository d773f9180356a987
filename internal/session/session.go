// Package session orchestrates one extraction workflow: it owns the source
// and template text, runs the detector stages in fixed order, and exposes the
// add/remove/rename/reset operations on top of the variable registry.
package session

import (
	"fmt"

	"stencil/internal/extract"
	"stencil/internal/model"
	"stencil/internal/registry"
)

// State tracks where a session is in the extract workflow
type State string

const (
	StateEmpty     State = "empty"     // No text entered
	StateReady     State = "ready"     // Text entered, not yet extracted
	StateExtracted State = "extracted" // Pipeline has run
	StateEditing   State = "editing"   // User is adding/removing variables
)

// Session owns the working text and variable list for one extraction. It is
// not safe for concurrent use; give each request its own instance.
type Session struct {
	cfg       *model.Config
	source    string
	text      string
	state     State
	reg       *registry.Registry
	detector  *extract.Detector
	gazetteer *extract.Gazetteer
	repeats   *extract.RepeatDetector
}

// New creates an empty session with the given configuration
func New(cfg *model.Config) *Session {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	return &Session{
		cfg:       cfg,
		state:     StateEmpty,
		reg:       registry.New(),
		detector:  extract.NewDetector(extract.DefaultRules(), cfg.Extraction.WindowWidth),
		gazetteer: extract.NewGazetteer(cfg.Gazetteer),
		repeats:   extract.NewRepeatDetector(cfg.Extraction),
	}
}

// Run is the one-shot entry point: enter the source text, run the pipeline,
// and return the resulting template
func Run(cfg *model.Config, source string) (*model.Template, error) {
	s := New(cfg)
	if err := s.EnterText(source); err != nil {
		return nil, err
	}
	return s.Extract()
}

// State returns the current workflow state
func (s *Session) State() State { return s.state }

// Source returns the original, unmodified input
func (s *Session) Source() string { return s.source }

// TemplateText returns the current working text
func (s *Session) TemplateText() string { return s.text }

// Variables returns a copy of the current variable list
func (s *Session) Variables() []model.Variable { return s.reg.List() }

// EnterText sets the source text. Allowed until extraction has run; once
// extracted, Reset first.
func (s *Session) EnterText(source string) error {
	if s.state != StateEmpty && s.state != StateReady {
		return fmt.Errorf("enter text: %w", model.ErrAlreadyExtracted)
	}
	s.source = source
	s.text = source
	if source == "" {
		s.state = StateEmpty
		return nil
	}
	s.state = StateReady
	return nil
}

// Extract runs the pipeline once: category rules, then the gazetteer
// fallback, then the repeated-phrase detector, each stage seeing the text the
// previous one produced. Re-running on already-tokenized text is rejected.
func (s *Session) Extract() (*model.Template, error) {
	switch s.state {
	case StateEmpty:
		return nil, fmt.Errorf("extract: %w", model.ErrNoText)
	case StateExtracted, StateEditing:
		return nil, fmt.Errorf("extract: %w", model.ErrAlreadyExtracted)
	}

	text := s.source
	stages := []func(string, []model.Variable) (string, []model.Variable){
		s.detector.Detect,
		s.gazetteer.Detect,
		s.repeats.Detect,
	}
	for _, stage := range stages {
		updated, added := stage(text, s.reg.List())
		if err := s.reg.Append(added...); err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		text = updated
	}
	s.reg.Recount(text)

	s.text = text
	s.state = StateExtracted
	return s.Template(), nil
}

// AddCustomVariable adds a user-named variable with zero occurrences
func (s *Session) AddCustomVariable(name string) (model.Variable, error) {
	if s.state == StateEmpty {
		return model.Variable{}, fmt.Errorf("add variable: %w", model.ErrNoText)
	}
	v, err := s.reg.AddCustom(name)
	if err != nil {
		return model.Variable{}, err
	}
	s.edit()
	return v, nil
}

// RemoveVariable restores the variable's literal value wherever its token
// appears, then deletes it. This is the exact inverse of the detection
// replacement.
func (s *Session) RemoveVariable(name string) (string, error) {
	text, err := s.reg.Remove(name, s.text)
	if err != nil {
		return s.text, err
	}
	s.text = text
	s.edit()
	return s.text, nil
}

// RenameVariable renames a variable and rewrites its tokens in the template
func (s *Session) RenameVariable(oldName, newName string) (model.Variable, error) {
	text, err := s.reg.Rename(oldName, newName, s.text)
	if err != nil {
		return model.Variable{}, err
	}
	s.text = text
	s.edit()
	v, err := s.reg.Get(oldName)
	if err == nil {
		return v, nil // Name normalized to itself
	}
	normalized, _ := registry.Normalize(newName)
	return s.reg.Get(normalized)
}

// Reset clears the source, template, and all variables
func (s *Session) Reset() {
	s.source = ""
	s.text = ""
	s.reg.Clear()
	s.state = StateEmpty
}

// Template returns the current result as handed to consumers
func (s *Session) Template() *model.Template {
	return &model.Template{
		Source:    s.source,
		Text:      s.text,
		Variables: s.reg.List(),
	}
}

func (s *Session) edit() {
	if s.state == StateExtracted || s.state == StateEditing {
		s.state = StateEditing
	}
}
