package predicate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validit/pkg/predicate"
	"github.com/dmitrymomot/validit/pkg/rule"
)

// check resolves name from a hermetic builtin registry and runs it once.
func check(t *testing.T, token string, value any) predicate.Outcome {
	t.Helper()

	inv, err := rule.ParseInvocation(token)
	require.NoError(t, err)

	def, err := predicate.Builtin(predicate.WithoutNetwork()).Resolve(inv.Name)
	require.NoError(t, err)

	c, err := def.Prepare(inv.Param)
	require.NoError(t, err)

	return c(context.Background(), "field", value)
}

// prepareErr returns the configuration error produced for token.
func prepareErr(t *testing.T, token string) error {
	t.Helper()

	inv, err := rule.ParseInvocation(token)
	require.NoError(t, err)

	def, err := predicate.Builtin(predicate.WithoutNetwork()).Resolve(inv.Name)
	require.NoError(t, err)

	_, err = def.Prepare(inv.Param)
	return err
}
