package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"stencil/internal/model"
)

// TemplateStore is the persistence boundary for finished templates. The
// extraction engine never touches it; the host hands over the final
// {templateText, variables} pair together with a name.
type TemplateStore interface {
	Save(name string, t *model.Template) error
	Load(name string) (*model.Template, error)
	List() ([]string, error)
	Delete(name string) error
}

// FileStore keeps each template as one YAML file in a directory
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir. An empty dir resolves to
// ~/.stencil/templates.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}
		dir = filepath.Join(home, ".stencil", "templates")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create template directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the template under the given name
func (s *FileStore) Save(name string, t *model.Template) error {
	if err := validName(name); err != nil {
		return err
	}
	saved := *t
	saved.Name = name
	data, err := yaml.Marshal(&saved)
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// Load reads the named template
func (s *FileStore) Load(name string) (*model.Template, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("template %q: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("read template: %w", err)
	}
	var t model.Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse template %q: %w", name, err)
	}
	return &t, nil
}

// List returns the saved template names, sorted
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named template
func (s *FileStore) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template %q: %w", name, model.ErrNotFound)
		}
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// validName rejects names that would escape the store directory
func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("invalid template name %q", name)
	}
	return nil
}
