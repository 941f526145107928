package validit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/validit/pkg/logger"
	"github.com/dmitrymomot/validit/pkg/message"
	"github.com/dmitrymomot/validit/pkg/predicate"
	"github.com/dmitrymomot/validit/pkg/rule"
)

// InvalidFieldKey is the message key recorded for fields missing from the record.
const InvalidFieldKey = "invalid"

// Engine evaluates rule sets against records. It keeps no per-call state and
// is safe for concurrent use.
type Engine struct {
	registry  *predicate.Registry
	catalog   *message.Catalog
	logger    *slog.Logger
	parseOpts []rule.Option
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the built-in predicate registry.
func WithRegistry(r *predicate.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithCatalog replaces the default English message catalog.
func WithCatalog(c *message.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSkipEmptyRules drops empty tokens in rule chains instead of rejecting them.
func WithSkipEmptyRules() Option {
	return func(e *Engine) {
		e.parseOpts = append(e.parseOpts, rule.SkipEmpty())
	}
}

// New creates an engine with the built-in predicates and English messages.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: predicate.Builtin(),
		catalog:  message.Default(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Registry() *predicate.Registry { return e.registry }
func (e *Engine) Catalog() *message.Catalog     { return e.catalog }

// RegisterPredicate adds a custom predicate. Remember to register a message
// under the same name.
func (e *Engine) RegisterPredicate(name string, fn predicate.Func) error {
	return e.registry.Register(name, fn)
}

// RegisterMessage adds or replaces a message template.
func (e *Engine) RegisterMessage(name, template string) error {
	return e.catalog.Register(name, template)
}

// Validate compiles rules and runs them against record. Configuration problems
// are returned as *ConfigError; failed checks only ever show up in the Result.
func (e *Engine) Validate(ctx context.Context, record Record, rules RuleSet) (Result, error) {
	plan, err := e.Compile(rules)
	if err != nil {
		return Result{}, err
	}
	return plan.Run(ctx, record)
}

// Compile parses every chain, resolves every predicate, prepares every
// parameter and checks that every message the predicates may report exists.
// All problems are reported together.
func (e *Engine) Compile(rules RuleSet) (*Plan, error) {
	var problems []error
	plan := &Plan{
		fields:  make([]fieldPlan, 0, len(rules)),
		catalog: e.catalog,
		logger:  e.logger,
	}

	if len(rules) > 0 && !e.catalog.Has(InvalidFieldKey) {
		problems = append(problems, fmt.Errorf("%w: %q", message.ErrMissingTemplate, InvalidFieldKey))
	}

	for _, fr := range rules {
		chain, err := rule.Parse(fr.Chain, e.parseOpts...)
		if err != nil {
			problems = append(problems, fmt.Errorf("field %q: %w", fr.Field, err))
			continue
		}

		fp := fieldPlan{field: fr.Field, steps: make([]step, 0, len(chain))}
		for _, inv := range chain {
			def, err := e.registry.Resolve(inv.Name)
			if err != nil {
				problems = append(problems, fmt.Errorf("field %q: %w", fr.Field, err))
				continue
			}

			check, err := def.Prepare(inv.Param)
			if err != nil {
				problems = append(problems, fmt.Errorf("field %q: %w", fr.Field, err))
				continue
			}

			for _, key := range def.Messages {
				if !e.catalog.Has(key) {
					problems = append(problems, fmt.Errorf("field %q: rule %q: %w: %q",
						fr.Field, inv.Name, message.ErrMissingTemplate, key))
				}
			}

			fp.steps = append(fp.steps, step{invocation: inv, check: check})
		}
		plan.fields = append(plan.fields, fp)
	}

	if err := configError(problems...); err != nil {
		e.logger.Warn("rule set rejected", logger.Error(err))
		return nil, err
	}
	return plan, nil
}
