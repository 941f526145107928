package validit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validit/pkg/validit"
)

func TestFailures_Error(t *testing.T) {
	t.Run("returns default message when empty", func(t *testing.T) {
		var f validit.Failures
		assert.Equal(t, "validation failed", f.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		f := validit.Failures{
			{Field: "email", Message: "email is required"},
			{Field: "age", Message: "age must be at least 18"},
		}
		assert.Equal(t, "validation failed: email: email is required; age: age must be at least 18", f.Error())
	})
}

func TestFailures_Lookup(t *testing.T) {
	f := validit.Failures{
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "missing digit"},
	}

	assert.True(t, f.Has("password"))
	assert.False(t, f.Has("username"))
	assert.Equal(t, []string{"too short", "missing digit"}, f.Get("password"))
	assert.Nil(t, f.Get("username"))
	assert.Equal(t, []string{"password", "email"}, f.Fields())
}

func TestResult_Err(t *testing.T) {
	t.Run("nil for valid result", func(t *testing.T) {
		assert.NoError(t, validit.Result{Valid: true}.Err())
	})

	t.Run("wraps failures", func(t *testing.T) {
		res := validit.Result{
			Errors:   []string{"age must be at least 18"},
			Failures: validit.Failures{{Field: "age", Message: "age must be at least 18"}},
		}
		err := fmt.Errorf("signup: %w", res.Err())

		assert.True(t, validit.IsValidationError(err))
		assert.Equal(t, res.Failures, validit.ExtractFailures(err))
		assert.False(t, validit.IsConfigError(err))
	})

	t.Run("extract from unrelated errors", func(t *testing.T) {
		assert.Nil(t, validit.ExtractFailures(nil))
		assert.Nil(t, validit.ExtractFailures(errors.New("boom")))
		assert.False(t, validit.IsValidationError(errors.New("boom")))
	})
}
