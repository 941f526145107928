package validit

import (
	"context"
	"sync"
)

var defaultEngine = sync.OnceValue(func() *Engine { return New() })

// Default returns the shared engine used by the package-level Validate.
func Default() *Engine {
	return defaultEngine()
}

// Validate runs rules against record on the default engine.
func Validate(ctx context.Context, record Record, rules RuleSet) (Result, error) {
	return defaultEngine().Validate(ctx, record, rules)
}
