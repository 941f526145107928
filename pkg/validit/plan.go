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

type step struct {
	invocation rule.Invocation
	check      predicate.Check
}

type fieldPlan struct {
	field string
	steps []step
}

// Plan is a compiled rule set. It can be run any number of times, concurrently.
type Plan struct {
	fields  []fieldPlan
	catalog *message.Catalog
	logger  *slog.Logger
}

// Fields returns the planned field names in evaluation order.
func (p *Plan) Fields() []string {
	fields := make([]string, len(p.fields))
	for i, fp := range p.fields {
		fields[i] = fp.field
	}
	return fields
}

// Run evaluates the plan against record. Every check of every field runs, in
// order, whatever happened before. A field missing from record is reported with
// the "invalid" message and its checks still run against a nil value.
//
// The only error Run returns is a *ConfigError for a message key a predicate
// reported but the catalog does not hold.
func (p *Plan) Run(ctx context.Context, record Record) (Result, error) {
	var failures Failures

	for _, fp := range p.fields {
		value, present := record.Lookup(fp.field)
		if !present {
			msg, err := p.catalog.Render(InvalidFieldKey, fp.field, "")
			if err != nil {
				return Result{}, configError(fmt.Errorf("field %q: %w", fp.field, err))
			}
			failures = append(failures, Failure{
				Field:   fp.field,
				Rule:    InvalidFieldKey,
				Key:     InvalidFieldKey,
				Message: msg,
			})
			p.logger.DebugContext(ctx, "field missing from record", logger.Field(fp.field))
		}

		for _, s := range fp.steps {
			out := s.check(ctx, fp.field, value)
			if out.OK {
				continue
			}

			key := out.Key
			if key == "" {
				key = s.invocation.Name
			}

			msg, err := p.catalog.Render(key, fp.field, out.Param)
			if err != nil {
				p.logger.WarnContext(ctx, "message template missing",
					logger.Field(fp.field), logger.Rule(s.invocation.Name), logger.MessageKey(key))
				return Result{}, configError(fmt.Errorf("field %q: rule %q: %w", fp.field, s.invocation.Name, err))
			}

			failures = append(failures, Failure{
				Field:   fp.field,
				Rule:    s.invocation.Name,
				Key:     key,
				Param:   out.Param,
				Message: msg,
			})
			p.logger.DebugContext(ctx, "rule failed",
				logger.Field(fp.field), logger.Rule(s.invocation.Name), logger.MessageKey(key))
		}
	}

	p.logger.DebugContext(ctx, "validation completed",
		logger.Fields(len(p.fields)), logger.Failures(len(failures)))

	return newResult(failures), nil
}
