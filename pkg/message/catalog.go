package message

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	FieldPlaceholder = "{field}"
	ParamPlaceholder = "{param}"
)

//go:embed en.yaml
var defaultTemplates []byte

// Catalog maps message keys to templates. It is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]string
}

// New creates a catalog holding a copy of templates.
func New(templates map[string]string) *Catalog {
	c := &Catalog{templates: make(map[string]string, len(templates))}
	maps.Copy(c.templates, templates)
	return c
}

// Default creates a catalog with the built-in English templates.
func Default() *Catalog {
	var templates map[string]string
	if err := yaml.Unmarshal(defaultTemplates, &templates); err != nil {
		panic(fmt.Errorf("message: embedded templates are broken: %w", err))
	}
	return New(templates)
}

// Register adds or replaces the template for key.
func (c *Catalog) Register(key, template string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}

	c.mu.Lock()
	c.templates[key] = template
	c.mu.Unlock()
	return nil
}

// Merge registers every entry of templates, replacing existing keys.
func (c *Catalog) Merge(templates map[string]string) error {
	for key := range templates {
		if strings.TrimSpace(key) == "" {
			return ErrInvalidKey
		}
	}

	c.mu.Lock()
	maps.Copy(c.templates, templates)
	c.mu.Unlock()
	return nil
}

// Template returns the raw template for key.
func (c *Catalog) Template(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tmpl, ok := c.templates[key]
	return tmpl, ok
}

func (c *Catalog) Has(key string) bool {
	_, ok := c.Template(key)
	return ok
}

// Keys returns all registered keys in sorted order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.templates))
}

// Render looks up key and substitutes the field name and parameter.
func (c *Catalog) Render(key, field, param string) (string, error) {
	tmpl, ok := c.Template(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingTemplate, key)
	}
	return Substitute(tmpl, field, param), nil
}

// Substitute replaces every {field} and {param} placeholder in tmpl.
func Substitute(tmpl, field, param string) string {
	return strings.NewReplacer(FieldPlaceholder, field, ParamPlaceholder, param).Replace(tmpl)
}
