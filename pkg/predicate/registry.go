package predicate

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/validit/pkg/rule"
)

// Func is the simple predicate signature used for custom predicates.
// It must not mutate value.
type Func func(ctx context.Context, field string, value any, param rule.Param) bool

// Outcome is the result of a prepared check. On failure Key names the message
// template to render and Param is the text substituted for {param}.
type Outcome struct {
	OK    bool
	Key   string
	Param string
}

func Pass() Outcome {
	return Outcome{OK: true}
}

func Fail(key, param string) Outcome {
	return Outcome{Key: key, Param: param}
}

// Check is a predicate bound to its parameter.
type Check func(ctx context.Context, field string, value any) Outcome

// Factory prepares a Check for a parameter. A returned error means the rule is
// misconfigured, not that a value is invalid.
type Factory func(param rule.Param) (Check, error)

// Definition describes a registered predicate.
type Definition struct {
	Name string
	// Messages lists every message key the predicate may report.
	Messages []string
	Factory  Factory
}

// Prepare runs the factory and tags configuration errors with the predicate name.
func (d Definition) Prepare(param rule.Param) (Check, error) {
	check, err := d.Factory(param)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParam, d.Name, err)
	}
	return check, nil
}

// Registry maps predicate names to definitions. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a simple predicate. Its failures render the message registered
// under the same name with the raw parameter.
func (r *Registry) Register(name string, fn Func) error {
	if fn == nil {
		return ErrNilPredicate
	}

	return r.RegisterFactory(name, func(param rule.Param) (Check, error) {
		return func(ctx context.Context, field string, value any) Outcome {
			if fn(ctx, field, value, param) {
				return Pass()
			}
			return Fail(name, param.Raw)
		}, nil
	})
}

// RegisterFactory adds a predicate that prepares its parameter up front.
// When messages is empty the predicate is assumed to report only its own name.
func (r *Registry) RegisterFactory(name string, factory Factory, messages ...string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if factory == nil {
		return ErrNilPredicate
	}
	if len(messages) == 0 {
		messages = []string{name}
	}

	r.mu.Lock()
	r.defs[name] = Definition{Name: name, Messages: messages, Factory: factory}
	r.mu.Unlock()
	return nil
}

// Resolve returns the definition registered under name.
func (r *Registry) Resolve(name string) (Definition, error) {
	r.mu.RLock()
	def, ok := r.defs[name]
	r.mu.RUnlock()

	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return def, nil
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[name]
	return ok
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.defs, name)
	r.mu.Unlock()
}

// Names returns registered predicate names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.defs))
}
